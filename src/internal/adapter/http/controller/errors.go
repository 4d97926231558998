package controller

import (
	"net/http"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
)

const retryAfterSeconds = "5"

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsAuth(err):
		return http.StatusUnauthorized
	case domain.IsForbidden(err):
		return http.StatusForbidden
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsAlreadyFinalized(err), domain.IsConflict(err):
		return http.StatusConflict
	case domain.IsPartialEligibility(err):
		return http.StatusUnprocessableEntity
	case domain.IsStoreUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeFailure writes a service response produced alongside err.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, payload any) int {
	status := statusFor(err)
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	if status >= http.StatusInternalServerError {
		logError(r, err, nil)
	}
	writeJSON(w, status, payload)
	return status
}
