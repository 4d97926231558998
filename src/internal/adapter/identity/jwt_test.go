package identity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/identity"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
)

func TestJWTServiceIssueAndValidate(t *testing.T) {
	service := identity.NewJWTService("test-secret", nil)
	principal := domain.Principal{ID: "EMP001", Kind: domain.PrincipalEmployee, Role: domain.RoleSupervisor}

	token, issued, err := service.Issue(context.Background(), principal, 8*time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got, err := service.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.Principal != principal {
		t.Fatalf("expected principal %+v, got %+v", principal, got.Principal)
	}
	if got.ID != issued.ID {
		t.Fatalf("expected assertion id %s, got %s", issued.ID, got.ID)
	}
}

func TestJWTServiceRejectsExpiredAssertion(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	service := identity.NewJWTService("test-secret", nil, identity.WithClock(clock))

	token, _, err := service.Issue(context.Background(), domain.Principal{ID: "c1", Kind: domain.PrincipalCustomer, Role: domain.RoleCustomer}, time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := service.Validate(context.Background(), token); !errors.Is(err, domain.ErrInvalidAssertion) {
		t.Fatalf("expected ErrInvalidAssertion, got %v", err)
	}
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	issuer := identity.NewJWTService("secret-a", nil)
	validator := identity.NewJWTService("secret-b", nil)

	token, _, err := issuer.Issue(context.Background(), domain.Principal{ID: "c1", Kind: domain.PrincipalCustomer, Role: domain.RoleCustomer}, time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := validator.Validate(context.Background(), token); !errors.Is(err, domain.ErrInvalidAssertion) {
		t.Fatalf("expected ErrInvalidAssertion, got %v", err)
	}
}

func TestJWTServiceRevokedAssertionIsInvalid(t *testing.T) {
	service := identity.NewJWTService("test-secret", identity.NewMemoryRevocationList())

	token, assertion, err := service.Issue(context.Background(), domain.Principal{ID: "c1", Kind: domain.PrincipalCustomer, Role: domain.RoleCustomer}, time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := service.Revoke(context.Background(), assertion); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := service.Validate(context.Background(), token); !errors.Is(err, domain.ErrInvalidAssertion) {
		t.Fatalf("expected ErrInvalidAssertion, got %v", err)
	}
}
