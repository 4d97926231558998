package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "swift-payment-portal"

type claims struct {
	Kind domain.PrincipalKind `json:"kind"`
	Role domain.Role          `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret      []byte
	revocations RevocationList
	now         func() time.Time
}

type JWTOption func(*JWTService)

func WithClock(now func() time.Time) JWTOption {
	return func(s *JWTService) {
		s.now = now
	}
}

func NewJWTService(secret string, revocations RevocationList, opts ...JWTOption) *JWTService {
	if revocations == nil {
		revocations = NewMemoryRevocationList()
	}
	s := &JWTService{
		secret:      []byte(secret),
		revocations: revocations,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *JWTService) Issue(_ context.Context, principal domain.Principal, ttl time.Duration) (string, domain.Assertion, error) {
	issuedAt := s.now().UTC().Truncate(time.Second)
	assertion := domain.Assertion{
		ID:        uuid.NewString(),
		Principal: principal,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Kind: principal.Kind,
		Role: principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        assertion.ID,
			Subject:   principal.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(assertion.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(assertion.ExpiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.Assertion{}, fmt.Errorf("sign assertion: %w", err)
	}
	return signed, assertion, nil
}

func (s *JWTService) Validate(ctx context.Context, token string) (domain.Assertion, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Assertion{}, fmt.Errorf("%w: %v", domain.ErrInvalidAssertion, err)
	}
	if parsed.ID == "" || parsed.Subject == "" {
		return domain.Assertion{}, domain.ErrInvalidAssertion
	}

	revoked, err := s.revocations.IsRevoked(ctx, parsed.ID)
	if err != nil {
		return domain.Assertion{}, fmt.Errorf("check assertion revocation: %w", err)
	}
	if revoked {
		return domain.Assertion{}, domain.ErrInvalidAssertion
	}

	assertion := domain.Assertion{
		ID: parsed.ID,
		Principal: domain.Principal{
			ID:   parsed.Subject,
			Kind: parsed.Kind,
			Role: parsed.Role,
		},
		ExpiresAt: parsed.ExpiresAt.Time,
	}
	if parsed.IssuedAt != nil {
		assertion.IssuedAt = parsed.IssuedAt.Time
	}
	return assertion, nil
}

func (s *JWTService) Revoke(ctx context.Context, assertion domain.Assertion) error {
	if assertion.ID == "" {
		return errors.New("revoke assertion: missing id")
	}
	if !s.now().Before(assertion.ExpiresAt) {
		return nil
	}
	if err := s.revocations.Revoke(ctx, assertion.ID, assertion.ExpiresAt); err != nil {
		return fmt.Errorf("revoke assertion: %w", err)
	}
	return nil
}
