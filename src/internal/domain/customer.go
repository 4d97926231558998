package domain

import "time"

type Customer struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Username      string
	PasswordHash  string
	AccountNumber string
	IDNumber      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
