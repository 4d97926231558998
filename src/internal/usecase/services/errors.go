package services

import (
	"errors"

	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
)

// storeError keeps domain errors intact and hides every other storage failure
// behind a retryable StoreUnavailableError.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsDomainError(err) {
		return err
	}
	return &domain.StoreUnavailableError{Op: op, Err: err}
}

func notFound(resource, id string, op string, err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return &domain.NotFoundError{Resource: resource, ID: id}
	}
	return storeError(op, err)
}

func errorResponse[T any](err error) commons.Response[T] {
	var (
		validation  *domain.ValidationError
		validations domain.ValidationErrors
		partial     *domain.PartialEligibilityError
	)

	switch {
	case errors.As(err, &validations):
		return commons.ErrorResponse[T]("validation failed", validations.Messages()...)
	case errors.As(err, &validation):
		return commons.ErrorResponse[T]("validation failed", validation.Error())
	case domain.IsAuth(err):
		return commons.ErrorResponse[T]("unauthorized", err.Error())
	case domain.IsForbidden(err):
		return commons.ErrorResponse[T]("forbidden", err.Error())
	case domain.IsNotFound(err):
		return commons.ErrorResponse[T]("not found", err.Error())
	case domain.IsAlreadyFinalized(err):
		return commons.ErrorResponse[T]("payment already finalized", err.Error())
	case errors.As(err, &partial):
		return commons.ErrorResponse[T]("some payments are not eligible for submission", partial.Ineligible...)
	case domain.IsConflict(err):
		return commons.ErrorResponse[T]("conflict", err.Error())
	case domain.IsRetryable(err):
		return commons.RetryableErrorResponse[T]("service temporarily unavailable", "Unable to process request right now")
	default:
		return commons.ErrorResponse[T]("internal error", "Unable to process request right now")
	}
}
