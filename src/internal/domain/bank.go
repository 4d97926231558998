package domain

import "context"

// Bank is a correspondent bank customers can address payments to.
type Bank struct {
	Name      string
	SwiftCode string
	Country   string
}

type BankDirectory interface {
	All(ctx context.Context) ([]Bank, error)
}
