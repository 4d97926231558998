package memory

import (
	"context"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/google/uuid"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	defer r.store.lock(ctx)()

	if r.conflicts(customer) {
		return domain.Customer{}, &domain.ConflictError{Message: "a customer with these details already exists"}
	}

	now := r.store.now()
	customer.ID = uuid.NewString()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	r.store.customers[customer.ID] = customer
	return customer, nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, username string) (domain.Customer, error) {
	defer r.store.lock(ctx)()

	for _, customer := range r.store.customers {
		if customer.Username == username {
			return customer, nil
		}
	}
	return domain.Customer{}, domain.ErrRecordNotFound
}

func (r *CustomerRepository) ExistsConflicting(ctx context.Context, customer domain.Customer) (bool, error) {
	defer r.store.lock(ctx)()

	return r.conflicts(customer), nil
}

func (r *CustomerRepository) conflicts(customer domain.Customer) bool {
	for _, existing := range r.store.customers {
		if existing.Username == customer.Username ||
			existing.Email == customer.Email ||
			existing.AccountNumber == customer.AccountNumber ||
			existing.IDNumber == customer.IDNumber {
			return true
		}
	}
	return false
}
