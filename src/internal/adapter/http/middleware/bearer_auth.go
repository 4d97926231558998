package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Assertion, error)
}

type assertionKey struct{}

// BearerAuth validates the Authorization bearer token and stores the resolved
// assertion on the request context.
func BearerAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Info("bearer auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "missing",
				})
				writeUnauthorized(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			assertion, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				status := http.StatusUnauthorized
				message := "invalid or expired token"
				if domain.IsRetryable(err) {
					status = http.StatusServiceUnavailable
					message = "Unable to process request right now"
					w.Header().Set("Retry-After", "5")
				}
				logger.Info("bearer auth middleware rejected request", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"status": status,
				})
				writeUnauthorized(w, status, message)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAssertion(r.Context(), assertion)))
		})
	}
}

func WithAssertion(ctx context.Context, assertion domain.Assertion) context.Context {
	return context.WithValue(ctx, assertionKey{}, assertion)
}

func AssertionFrom(ctx context.Context) (domain.Assertion, bool) {
	assertion, ok := ctx.Value(assertionKey{}).(domain.Assertion)
	return assertion, ok
}

// PrincipalFrom returns the zero Principal for unauthenticated requests, which
// every access check rejects.
func PrincipalFrom(ctx context.Context) domain.Principal {
	assertion, _ := AssertionFrom(ctx)
	return assertion.Principal
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="swift-payment-portal"`)
	}
	w.WriteHeader(status)
	response := commons.ErrorResponse[struct{}]("unauthorized", message)
	if status != http.StatusUnauthorized {
		response = commons.RetryableErrorResponse[struct{}]("service temporarily unavailable", message)
	}
	_ = json.NewEncoder(w).Encode(response)
}
