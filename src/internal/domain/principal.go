package domain

import "strings"

type Role string

const (
	RoleNone       Role = ""
	RoleCustomer   Role = "customer"
	RoleVerifier   Role = "verifier"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

func ParseEmployeeRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleVerifier:
		return RoleVerifier, true
	case RoleSupervisor:
		return RoleSupervisor, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return RoleNone, false
	}
}

type PrincipalKind string

const (
	PrincipalCustomer PrincipalKind = "customer"
	PrincipalEmployee PrincipalKind = "employee"
)

// Principal is the authenticated caller. ID is the customer id for customers and
// the business-facing employee id for employees.
type Principal struct {
	ID   string
	Kind PrincipalKind
	Role Role
}

func (p Principal) IsCustomer() bool {
	return p.Kind == PrincipalCustomer && p.ID != ""
}

func (p Principal) IsEmployee() bool {
	return p.Kind == PrincipalEmployee && p.ID != ""
}
