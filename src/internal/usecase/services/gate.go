package services

import (
	"context"
	"errors"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/access"
)

// gate resolves a principal into an authorization decision for one operation.
// Employees are re-read on every call so that deactivation and role changes
// apply to assertions that are still unexpired.
type gate struct {
	employees domain.EmployeeRepository
}

func (g gate) customer(principal domain.Principal, op access.Operation) error {
	if !principal.IsCustomer() {
		return &domain.AuthError{Reason: "customer authentication required"}
	}
	if !access.Allowed(domain.RoleCustomer, op) {
		return &domain.ForbiddenError{Role: domain.RoleCustomer, Operation: string(op)}
	}
	return nil
}

func (g gate) employee(ctx context.Context, principal domain.Principal, op access.Operation) (domain.Employee, error) {
	if !principal.IsEmployee() {
		return domain.Employee{}, &domain.AuthError{Reason: "employee authentication required"}
	}

	employee, err := g.employees.FindAccount(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Employee{}, &domain.AuthError{Reason: "unknown employee"}
		}
		return domain.Employee{}, storeError("find employee", err)
	}

	role := access.EffectiveRole(employee)
	if role == domain.RoleNone {
		return domain.Employee{}, &domain.AuthError{Reason: "employee account is inactive"}
	}
	if !access.Allowed(role, op) {
		return domain.Employee{}, &domain.ForbiddenError{Role: role, Operation: string(op)}
	}
	return employee, nil
}
