package identity_test

import (
	"testing"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/identity"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	verifier := identity.NewBcryptVerifier(bcrypt.MinCost)

	hash, err := verifier.Hash("secret123")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	ok, err := verifier.Verify(hash, "secret123")
	if err != nil || !ok {
		t.Fatalf("expected matching secret, got ok=%v err=%v", ok, err)
	}

	ok, err = verifier.Verify(hash, "secret124")
	if err != nil || ok {
		t.Fatalf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}
