package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/lib/pq"
)

func TestEmployeeRepositoryCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO employees").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewEmployeeRepository(db)
	_, err = repo.Create(context.Background(), domain.Employee{EmployeeID: "EMP001", Username: "admin01", Role: domain.RoleAdmin, Active: true})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestEmployeeRepositoryFindByUsernameLoadsActionLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM employees\s+WHERE username = \$1`).
		WithArgs("verifier1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "username", "password_hash", "role", "active", "last_login", "created_at", "updated_at"}).
			AddRow("e-1", "EMP001", "verifier1", "hash", "verifier", true, nil, now, now))
	mock.ExpectQuery("FROM employee_actions").
		WithArgs("EMP001").
		WillReturnRows(sqlmock.NewRows([]string{"action", "payment_id", "occurred_at"}).
			AddRow("VERIFY", "p1", now))

	repo := NewEmployeeRepository(db)
	employee, err := repo.FindByUsername(context.Background(), "verifier1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if employee.Role != domain.RoleVerifier {
		t.Fatalf("expected verifier role, got %q", employee.Role)
	}
	if len(employee.ActionLog) != 1 || employee.ActionLog[0].Action != domain.AuditActionVerify {
		t.Fatalf("unexpected action log %+v", employee.ActionLog)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryFindAccountSkipsActionLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM employees\s+WHERE employee_id = \$1`).
		WithArgs("EMP002").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "username", "password_hash", "role", "active", "last_login", "created_at", "updated_at"}).
			AddRow("e-2", "EMP002", "supervisor1", "hash", "supervisor", false, nil, now, now))

	repo := NewEmployeeRepository(db)
	employee, err := repo.FindAccount(context.Background(), "EMP002")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if employee.Role != domain.RoleSupervisor || employee.Active {
		t.Fatalf("unexpected employee %+v", employee)
	}
	if employee.ActionLog != nil {
		t.Fatalf("expected no action log, got %+v", employee.ActionLog)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryAppendAuditEntriesSingleStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO employee_actions .*\(\$1, \$2, \$3, \$4\),\s+\(\$1, \$5, \$6, \$7\)`).
		WithArgs("EMP002", "SWIFT_SUBMIT", "p1", at, "SWIFT_SUBMIT", "p2", at).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewEmployeeRepository(db)
	err = repo.AppendAuditEntries(context.Background(), "EMP002",
		domain.AuditEntry{Action: domain.AuditActionSwiftSubmit, PaymentID: "p1", Timestamp: at},
		domain.AuditEntry{Action: domain.AuditActionSwiftSubmit, PaymentID: "p2", Timestamp: at},
	)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositorySetActiveUnknownEmployee(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE employees").
		WithArgs("EMP404", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewEmployeeRepository(db)
	if err := repo.SetActive(context.Background(), "EMP404", false); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
