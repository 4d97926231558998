package domain

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidAssertion = errors.New("invalid or expired assertion")

type PasswordVerifier interface {
	Hash(secret string) (string, error)
	Verify(hash string, secret string) (bool, error)
}

type Assertion struct {
	ID        string
	Principal Principal
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type AssertionService interface {
	Issue(ctx context.Context, principal Principal, ttl time.Duration) (string, Assertion, error)
	Validate(ctx context.Context, token string) (Assertion, error)
	Revoke(ctx context.Context, assertion Assertion) error
}
