package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	logger.Info("customer repository create", logger.Fields{
		"username": customer.Username,
	})

	const query = `
INSERT INTO customers (
	first_name,
	last_name,
	email,
	username,
	password_hash,
	account_number,
	id_number
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, first_name, last_name, email, username, password_hash, account_number, id_number, created_at, updated_at`

	var created domain.Customer
	if err := scanCustomer(executorFrom(ctx, r.db).QueryRowContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Username,
		customer.PasswordHash,
		customer.AccountNumber,
		customer.IDNumber,
	), &created); err != nil {
		if hasCode(err, uniqueViolation) {
			return domain.Customer{}, &domain.ConflictError{Message: "a customer with these details already exists"}
		}
		logger.Error("customer repository create failed", err, logger.Fields{"username": customer.Username})
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	logger.Info("customer repository create success", logger.Fields{"customerId": created.ID})
	return created, nil
}

func (r *CustomerRepository) FindByUsername(ctx context.Context, username string) (domain.Customer, error) {
	const query = `
SELECT id, first_name, last_name, email, username, password_hash, account_number, id_number, created_at, updated_at
FROM customers
WHERE username = $1`

	var customer domain.Customer
	if err := scanCustomer(executorFrom(ctx, r.db).QueryRowContext(ctx, query, username), &customer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("customer repository record not found", logger.Fields{"username": username})
			return domain.Customer{}, domain.ErrRecordNotFound
		}
		logger.Error("customer repository find by username failed", err, logger.Fields{"username": username})
		return domain.Customer{}, fmt.Errorf("find customer by username: %w", err)
	}

	return customer, nil
}

func (r *CustomerRepository) ExistsConflicting(ctx context.Context, customer domain.Customer) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM customers
	WHERE username = $1
	   OR email = $2
	   OR account_number = $3
	   OR id_number = $4
)`

	var exists bool
	if err := executorFrom(ctx, r.db).QueryRowContext(
		ctx,
		query,
		customer.Username,
		customer.Email,
		customer.AccountNumber,
		customer.IDNumber,
	).Scan(&exists); err != nil {
		logger.Error("customer repository exists conflicting failed", err, logger.Fields{"username": customer.Username})
		return false, fmt.Errorf("check customer uniqueness: %w", err)
	}

	return exists, nil
}

func scanCustomer(row rowScanner, customer *domain.Customer) error {
	return row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Username,
		&customer.PasswordHash,
		&customer.AccountNumber,
		&customer.IDNumber,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
}
