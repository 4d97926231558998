package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
)

type PaymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	defer r.store.lock(ctx)()

	if _, exists := r.store.payments[payment.ID]; exists {
		return domain.Payment{}, fmt.Errorf("insert payment: duplicate id %s", payment.ID)
	}
	r.store.payments[payment.ID] = payment
	return payment, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (domain.Payment, error) {
	defer r.store.lock(ctx)()

	payment, ok := r.store.payments[id]
	if !ok {
		return domain.Payment{}, domain.ErrRecordNotFound
	}
	return payment, nil
}

func (r *PaymentRepository) FindMany(ctx context.Context, filter domain.PaymentFilter, order domain.PaymentSort) ([]domain.Payment, error) {
	defer r.store.lock(ctx)()

	payments := make([]domain.Payment, 0)
	for _, payment := range r.store.payments {
		if filter.Matches(payment) {
			payments = append(payments, payment)
		}
	}

	if order == domain.SortCreatedDesc {
		sort.Slice(payments, func(i, j int) bool {
			if payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
				return payments[i].ID > payments[j].ID
			}
			return payments[i].CreatedAt.After(payments[j].CreatedAt)
		})
	}
	return payments, nil
}

func (r *PaymentRepository) UpdateOne(ctx context.Context, id string, patch domain.PaymentPatch, cond domain.PaymentFilter) (bool, error) {
	defer r.store.lock(ctx)()

	payment, ok := r.store.payments[id]
	if !ok || !cond.Matches(payment) {
		return false, nil
	}
	r.store.payments[id] = patch.Apply(payment)
	return true, nil
}

func (r *PaymentRepository) UpdateMany(ctx context.Context, ids []string, patch domain.PaymentPatch, cond domain.PaymentFilter) (int64, error) {
	defer r.store.lock(ctx)()

	var matched int64
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		payment, ok := r.store.payments[id]
		if !ok || !cond.Matches(payment) {
			continue
		}
		r.store.payments[id] = patch.Apply(payment)
		matched++
	}
	return matched, nil
}
