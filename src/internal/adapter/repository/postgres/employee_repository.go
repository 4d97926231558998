package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	logger.Info("employee repository create", logger.Fields{
		"employeeId": employee.EmployeeID,
		"username":   employee.Username,
		"role":       employee.Role,
	})

	const query = `
INSERT INTO employees (
	employee_id,
	username,
	password_hash,
	role,
	active
) VALUES ($1, $2, $3, $4, $5)
RETURNING id, employee_id, username, password_hash, role, active, last_login, created_at, updated_at`

	var created domain.Employee
	if err := scanEmployee(executorFrom(ctx, r.db).QueryRowContext(
		ctx,
		query,
		employee.EmployeeID,
		employee.Username,
		employee.PasswordHash,
		employee.Role,
		employee.Active,
	), &created); err != nil {
		if hasCode(err, uniqueViolation) {
			return domain.Employee{}, &domain.ConflictError{Message: "employee id or username already exists"}
		}
		logger.Error("employee repository create failed", err, logger.Fields{"employeeId": employee.EmployeeID})
		return domain.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	logger.Info("employee repository create success", logger.Fields{"employeeId": created.EmployeeID})
	return created, nil
}

func (r *EmployeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (domain.Employee, error) {
	return r.findOne(ctx, "employee_id", employeeID, true)
}

func (r *EmployeeRepository) FindAccount(ctx context.Context, employeeID string) (domain.Employee, error) {
	return r.findOne(ctx, "employee_id", employeeID, false)
}

func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (domain.Employee, error) {
	return r.findOne(ctx, "username", username, true)
}

func (r *EmployeeRepository) findOne(ctx context.Context, column, value string, withLog bool) (domain.Employee, error) {
	query := `
SELECT id, employee_id, username, password_hash, role, active, last_login, created_at, updated_at
FROM employees
WHERE ` + column + ` = $1`

	exec := executorFrom(ctx, r.db)

	var employee domain.Employee
	if err := scanEmployee(exec.QueryRowContext(ctx, query, value), &employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("employee repository record not found", logger.Fields{column: value})
			return domain.Employee{}, domain.ErrRecordNotFound
		}
		logger.Error("employee repository find failed", err, logger.Fields{column: value})
		return domain.Employee{}, fmt.Errorf("find employee by %s: %w", column, err)
	}
	if !withLog {
		return employee, nil
	}

	actions, err := r.actionLog(ctx, exec, employee.EmployeeID)
	if err != nil {
		return domain.Employee{}, err
	}
	employee.ActionLog = actions

	return employee, nil
}

func (r *EmployeeRepository) actionLog(ctx context.Context, exec executor, employeeID string) ([]domain.AuditEntry, error) {
	const query = `
SELECT action, payment_id, occurred_at
FROM employee_actions
WHERE employee_id = $1
ORDER BY id`

	rows, err := exec.QueryContext(ctx, query, employeeID)
	if err != nil {
		logger.Error("employee repository action log failed", err, logger.Fields{"employeeId": employeeID})
		return nil, fmt.Errorf("load employee actions: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0)
	for rows.Next() {
		var entry domain.AuditEntry
		if err := rows.Scan(&entry.Action, &entry.PaymentID, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan employee action: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employee actions: %w", err)
	}

	return entries, nil
}

func (r *EmployeeRepository) AppendAuditEntries(ctx context.Context, employeeID string, entries ...domain.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	values := make([]string, 0, len(entries))
	args := []any{employeeID}
	for _, entry := range entries {
		args = append(args, entry.Action, entry.PaymentID, entry.Timestamp)
		n := len(args)
		values = append(values, fmt.Sprintf("($1, $%d, $%d, $%d)", n-2, n-1, n))
	}

	query := `
INSERT INTO employee_actions (employee_id, action, payment_id, occurred_at)
VALUES ` + strings.Join(values, ",\n       ")

	if _, err := executorFrom(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if hasCode(err, foreignKeyViolation) {
			return domain.ErrRecordNotFound
		}
		logger.Error("employee repository append audit entries failed", err, logger.Fields{
			"employeeId": employeeID,
			"entries":    len(entries),
		})
		return fmt.Errorf("append employee actions: %w", err)
	}

	return nil
}

func (r *EmployeeRepository) SetActive(ctx context.Context, employeeID string, active bool) error {
	const query = `
UPDATE employees
SET active = $2,
    updated_at = NOW()
WHERE employee_id = $1`

	return r.updateRequired(ctx, "set active", query, employeeID, active)
}

func (r *EmployeeRepository) TouchLastLogin(ctx context.Context, employeeID string, at time.Time) error {
	const query = `
UPDATE employees
SET last_login = $2,
    updated_at = $2
WHERE employee_id = $1`

	return r.updateRequired(ctx, "touch last login", query, employeeID, at)
}

func (r *EmployeeRepository) updateRequired(ctx context.Context, op, query, employeeID string, value any) error {
	affected, err := execRowsAffected(ctx, executorFrom(ctx, r.db), query, employeeID, value)
	if err != nil {
		logger.Error("employee repository "+op+" failed", err, logger.Fields{"employeeId": employeeID})
		return fmt.Errorf("employee %s: %w", op, err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func scanEmployee(row rowScanner, employee *domain.Employee) error {
	var lastLogin sql.NullTime
	if err := row.Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.Username,
		&employee.PasswordHash,
		&employee.Role,
		&employee.Active,
		&lastLogin,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return err
	}

	employee.LastLogin = nil
	if lastLogin.Valid {
		value := lastLogin.Time
		employee.LastLogin = &value
	}
	return nil
}
