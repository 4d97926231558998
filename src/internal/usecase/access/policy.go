package access

import "github.com/api-sage/swift-payment-portal/src/internal/domain"

type Operation string

const (
	CreatePayment      Operation = "createPayment"
	ListOwnPayments    Operation = "listOwnPayments"
	ListPendingReviews Operation = "listPendingReviews"
	ReviewPayment      Operation = "reviewPayment"
	SubmitBatch        Operation = "submitBatch"
	ExportReport       Operation = "exportReport"
)

var policy = map[Operation]map[domain.Role]bool{
	CreatePayment:      {domain.RoleCustomer: true},
	ListOwnPayments:    {domain.RoleCustomer: true},
	ListPendingReviews: {domain.RoleVerifier: true, domain.RoleSupervisor: true, domain.RoleAdmin: true},
	ReviewPayment:      {domain.RoleVerifier: true, domain.RoleSupervisor: true, domain.RoleAdmin: true},
	SubmitBatch:        {domain.RoleSupervisor: true, domain.RoleAdmin: true},
	ExportReport:       {domain.RoleSupervisor: true, domain.RoleAdmin: true},
}

// Allowed is total: unknown operations and the empty role are always denied.
func Allowed(role domain.Role, op Operation) bool {
	if role == domain.RoleNone {
		return false
	}
	return policy[op][role]
}

func EffectiveRole(employee domain.Employee) domain.Role {
	if !employee.Active {
		return domain.RoleNone
	}
	return employee.Role
}
