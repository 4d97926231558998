package domain

import "context"

type CustomerRepository interface {
	Create(ctx context.Context, customer Customer) (Customer, error)
	FindByUsername(ctx context.Context, username string) (Customer, error)
	ExistsConflicting(ctx context.Context, customer Customer) (bool, error)
}
