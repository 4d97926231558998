package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/identity"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/swift-payment-portal/src/internal/bootstrap"
	"github.com/api-sage/swift-payment-portal/src/internal/config"
)

func memoryDeps() Deps {
	store := memory.NewStore()
	return Deps{
		LoadConfig: func() (config.Config, error) {
			return config.Config{StorageBackend: config.BackendMemory}, nil
		},
		Open: func(context.Context, config.Config, bool) (bootstrap.Storage, error) {
			return bootstrap.Storage{
				Payments:   memory.NewPaymentRepository(store),
				Employees:  memory.NewEmployeeRepository(store),
				Customers:  memory.NewCustomerRepository(store),
				Transactor: memory.NewTransactor(store),
			}, nil
		},
		Passwords: identity.NewBcryptVerifier(4),
	}
}

func run(t *testing.T, deps Deps, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(deps)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEmployeeCreateAndShow(t *testing.T) {
	deps := memoryDeps()

	out, err := run(t, deps, "Str0ngPassw0rd\n",
		"employee", "create", "--employee-id", "emp-001", "--username", "jdoe", "--role", "supervisor", "--password-stdin")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var created models.EmployeeResponse
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("expected json output, got %q: %v", out, err)
	}
	if created.EmployeeID != "EMP-001" || created.Role != "supervisor" || !created.Active {
		t.Fatalf("unexpected employee: %+v", created)
	}

	out, err = run(t, deps, "", "employee", "show", "emp-001")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, `"username": "jdoe"`) {
		t.Fatalf("expected username in output, got %q", out)
	}
}

func TestEmployeeCreateRequiresPassword(t *testing.T) {
	_, err := run(t, memoryDeps(), "", "employee", "create", "--employee-id", "EMP-002", "--username", "asmith")
	if err == nil {
		t.Fatal("expected error without password")
	}
}

func TestEmployeeCreateRejectsUnknownRole(t *testing.T) {
	_, err := run(t, memoryDeps(), "",
		"employee", "create", "--employee-id", "EMP-003", "--username", "bjones", "--role", "janitor", "--password", "Str0ngPassw0rd")
	if err == nil || !strings.Contains(err.Error(), "role") {
		t.Fatalf("expected role validation error, got %v", err)
	}
}

func TestEmployeeDeactivateAndActivate(t *testing.T) {
	deps := memoryDeps()
	if _, err := run(t, deps, "",
		"employee", "create", "--employee-id", "EMP-004", "--username", "cdoe", "--password", "Str0ngPassw0rd"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	out, err := run(t, deps, "", "employee", "deactivate", "EMP-004")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, `"active": false`) {
		t.Fatalf("expected inactive employee, got %q", out)
	}

	out, err = run(t, deps, "", "employee", "activate", "EMP-004")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, `"active": true`) {
		t.Fatalf("expected active employee, got %q", out)
	}
}

func TestEmployeeShowUnknown(t *testing.T) {
	_, err := run(t, memoryDeps(), "", "employee", "show", "EMP-404")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestMigrateRequiresPostgres(t *testing.T) {
	_, err := run(t, memoryDeps(), "", "migrate")
	if err == nil || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestOpenStorageError(t *testing.T) {
	deps := memoryDeps()
	deps.Open = func(context.Context, config.Config, bool) (bootstrap.Storage, error) {
		return bootstrap.Storage{}, errors.New("connection refused")
	}
	_, err := run(t, deps, "", "employee", "show", "EMP-001")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected open error, got %v", err)
	}
}
