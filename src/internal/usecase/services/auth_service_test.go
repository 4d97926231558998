package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/identity"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/services"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	employees *memory.EmployeeRepository
	passwords *identity.BcryptVerifier
	service   *services.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	store := memory.NewStore()
	passwords := identity.NewBcryptVerifier(bcrypt.MinCost)
	employees := memory.NewEmployeeRepository(store)
	svc := services.NewAuthService(
		memory.NewCustomerRepository(store),
		employees,
		passwords,
		identity.NewJWTService("test-secret", identity.NewMemoryRevocationList()),
		services.TokenTTLs{Customer: time.Hour, Employee: 8 * time.Hour},
	)
	return &authFixture{employees: employees, passwords: passwords, service: svc}
}

func (f *authFixture) seedEmployee(t *testing.T, employeeID, username, password string, role domain.Role, active bool) {
	t.Helper()

	hash, err := f.passwords.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := f.employees.Create(context.Background(), domain.Employee{
		EmployeeID:   employeeID,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Active:       active,
	}); err != nil {
		t.Fatalf("seed employee: %v", err)
	}
}

func registration() models.RegisterCustomerRequest {
	return models.RegisterCustomerRequest{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "Jane@Example.com",
		Username:      "jane01",
		Password:      "secret123",
		AccountNumber: "1234567890",
		IDNumber:      "9001015009087",
	}
}

func TestAuthServiceRegisterAndLoginCustomer(t *testing.T) {
	f := newAuthFixture(t)

	registered, err := f.service.RegisterCustomer(context.Background(), registration())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	resp, err := f.service.LoginCustomer(context.Background(), models.LoginRequest{Username: "jane01", Password: "secret123"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.Token == "" || resp.Data.Role != string(domain.RoleCustomer) {
		t.Fatalf("unexpected login response %+v", resp.Data)
	}

	assertion, err := f.service.Authenticate(context.Background(), resp.Data.Token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if assertion.Principal.ID != registered.Data.ID || !assertion.Principal.IsCustomer() {
		t.Fatalf("unexpected principal %+v", assertion.Principal)
	}
	if ttl := assertion.ExpiresAt.Sub(assertion.IssuedAt); ttl != time.Hour {
		t.Fatalf("expected 1h customer assertion, got %s", ttl)
	}
}

func TestAuthServiceRegisterRejectsDuplicatesAndInvalidInput(t *testing.T) {
	f := newAuthFixture(t)

	if _, err := f.service.RegisterCustomer(context.Background(), registration()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	duplicate := registration()
	duplicate.Username = "jane02"
	if _, err := f.service.RegisterCustomer(context.Background(), duplicate); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for reused email, got %v", err)
	}

	invalid := registration()
	invalid.Password = "short1"
	if _, err := f.service.RegisterCustomer(context.Background(), invalid); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthServiceLoginCustomerWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	if _, err := f.service.RegisterCustomer(context.Background(), registration()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := f.service.LoginCustomer(context.Background(), models.LoginRequest{Username: "jane01", Password: "wrong1234"}); !domain.IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if _, err := f.service.LoginCustomer(context.Background(), models.LoginRequest{Username: "nobody", Password: "secret123"}); !domain.IsAuth(err) {
		t.Fatalf("expected auth error for unknown user, got %v", err)
	}
}

func TestAuthServiceLoginEmployee(t *testing.T) {
	f := newAuthFixture(t)
	f.seedEmployee(t, "EMP-S1", "supervisor1", "secret123", domain.RoleSupervisor, true)
	f.seedEmployee(t, "EMP-X1", "inactive1", "secret123", domain.RoleAdmin, false)

	resp, err := f.service.LoginEmployee(context.Background(), models.LoginRequest{Username: "supervisor1", Password: "secret123"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data.EmployeeID != "EMP-S1" || resp.Data.Role != string(domain.RoleSupervisor) {
		t.Fatalf("unexpected login response %+v", resp.Data)
	}

	assertion, err := f.service.Authenticate(context.Background(), resp.Data.Token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !assertion.Principal.IsEmployee() || assertion.Principal.ID != "EMP-S1" {
		t.Fatalf("unexpected principal %+v", assertion.Principal)
	}
	if ttl := assertion.ExpiresAt.Sub(assertion.IssuedAt); ttl != 8*time.Hour {
		t.Fatalf("expected 8h employee assertion, got %s", ttl)
	}

	employee, _ := f.employees.FindByEmployeeID(context.Background(), "EMP-S1")
	if employee.LastLogin == nil {
		t.Fatalf("expected last login to be recorded")
	}

	if _, err := f.service.LoginEmployee(context.Background(), models.LoginRequest{Username: "inactive1", Password: "secret123"}); !domain.IsAuth(err) {
		t.Fatalf("expected auth error for inactive employee, got %v", err)
	}
}

func TestAuthServiceLogoutRevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	if _, err := f.service.RegisterCustomer(context.Background(), registration()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	resp, err := f.service.LoginCustomer(context.Background(), models.LoginRequest{Username: "jane01", Password: "secret123"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	assertion, err := f.service.Authenticate(context.Background(), resp.Data.Token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.service.Logout(context.Background(), assertion); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, err := f.service.Authenticate(context.Background(), resp.Data.Token); !domain.IsAuth(err) {
		t.Fatalf("expected revoked token to fail authentication, got %v", err)
	}
}

func TestAuthServiceAuthenticateRejectsGarbage(t *testing.T) {
	f := newAuthFixture(t)

	for _, token := range []string{"", "not-a-token"} {
		if _, err := f.service.Authenticate(context.Background(), token); !domain.IsAuth(err) {
			t.Fatalf("token %q: expected auth error, got %v", token, err)
		}
	}
}
