package domain

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	// FindAccount returns the employee without its action log.
	FindAccount(ctx context.Context, employeeID string) (Employee, error)
	FindByUsername(ctx context.Context, username string) (Employee, error)
	AppendAuditEntries(ctx context.Context, employeeID string, entries ...AuditEntry) error
	SetActive(ctx context.Context, employeeID string, active bool) error
	TouchLastLogin(ctx context.Context, employeeID string, at time.Time) error
}
