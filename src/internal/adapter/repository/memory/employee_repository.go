package memory

import (
	"context"
	"slices"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/google/uuid"
)

type EmployeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	defer r.store.lock(ctx)()

	for _, existing := range r.store.employees {
		if existing.EmployeeID == employee.EmployeeID || existing.Username == employee.Username {
			return domain.Employee{}, &domain.ConflictError{Message: "employee id or username already exists"}
		}
	}

	now := r.store.now()
	employee.ID = uuid.NewString()
	employee.ActionLog = nil
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.store.employees[employee.EmployeeID] = employee
	return employee, nil
}

func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (domain.Employee, error) {
	defer r.store.lock(ctx)()

	employee, ok := r.store.employees[employeeID]
	if !ok {
		return domain.Employee{}, domain.ErrRecordNotFound
	}
	return cloneEmployee(employee), nil
}

func (r *EmployeeRepository) FindAccount(ctx context.Context, employeeID string) (domain.Employee, error) {
	defer r.store.lock(ctx)()

	employee, ok := r.store.employees[employeeID]
	if !ok {
		return domain.Employee{}, domain.ErrRecordNotFound
	}
	employee.ActionLog = nil
	return employee, nil
}

func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (domain.Employee, error) {
	defer r.store.lock(ctx)()

	for _, employee := range r.store.employees {
		if employee.Username == username {
			return cloneEmployee(employee), nil
		}
	}
	return domain.Employee{}, domain.ErrRecordNotFound
}

func (r *EmployeeRepository) AppendAuditEntries(ctx context.Context, employeeID string, entries ...domain.AuditEntry) error {
	defer r.store.lock(ctx)()

	employee, ok := r.store.employees[employeeID]
	if !ok {
		return domain.ErrRecordNotFound
	}
	employee.ActionLog = append(slices.Clone(employee.ActionLog), entries...)
	r.store.employees[employeeID] = employee
	return nil
}

func (r *EmployeeRepository) SetActive(ctx context.Context, employeeID string, active bool) error {
	defer r.store.lock(ctx)()

	employee, ok := r.store.employees[employeeID]
	if !ok {
		return domain.ErrRecordNotFound
	}
	employee.Active = active
	employee.UpdatedAt = r.store.now()
	r.store.employees[employeeID] = employee
	return nil
}

func (r *EmployeeRepository) TouchLastLogin(ctx context.Context, employeeID string, at time.Time) error {
	defer r.store.lock(ctx)()

	employee, ok := r.store.employees[employeeID]
	if !ok {
		return domain.ErrRecordNotFound
	}
	employee.LastLogin = &at
	employee.UpdatedAt = at
	r.store.employees[employeeID] = employee
	return nil
}

func cloneEmployee(employee domain.Employee) domain.Employee {
	employee.ActionLog = slices.Clone(employee.ActionLog)
	return employee
}
