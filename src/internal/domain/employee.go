package domain

import "time"

type AuditAction string

const (
	AuditActionVerify      AuditAction = "VERIFY"
	AuditActionReject      AuditAction = "REJECT"
	AuditActionSwiftSubmit AuditAction = "SWIFT_SUBMIT"
)

type AuditEntry struct {
	Action    AuditAction
	PaymentID string
	Timestamp time.Time
}

type Employee struct {
	ID           string
	EmployeeID   string
	Username     string
	PasswordHash string
	Role         Role
	Active       bool
	LastLogin    *time.Time
	ActionLog    []AuditEntry
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
