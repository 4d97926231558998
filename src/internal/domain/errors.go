package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRecordNotFound = errors.New("Record not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field failure found by one validator run.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

func (e ValidationErrors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, err := range e {
		out = append(out, err.Error())
	}
	return out
}

func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "authentication required"
	}
	return e.Reason
}

type ForbiddenError struct {
	Role      Role
	Operation string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("role %q is not permitted to %s", e.Role, e.Operation)
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

type AlreadyFinalizedError struct {
	PaymentID string
	Status    PaymentStatus
}

func (e *AlreadyFinalizedError) Error() string {
	return fmt.Sprintf("payment %s is already %s", e.PaymentID, strings.ToLower(string(e.Status)))
}

type PartialEligibilityError struct {
	Requested  int
	Eligible   int
	Ineligible []string
}

func (e *PartialEligibilityError) Error() string {
	return fmt.Sprintf("%d of %d payments are not eligible for submission", e.Requested-e.Eligible, e.Requested)
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreUnavailableError wraps storage failures. Its message never carries the
// underlying driver error, which stays reachable through Unwrap for logging.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return "payment store is temporarily unavailable"
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var single *ValidationError
	var many ValidationErrors
	return errors.As(err, &single) || errors.As(err, &many)
}

func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target *ForbiddenError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAlreadyFinalized(err error) bool {
	var target *AlreadyFinalizedError
	return errors.As(err, &target)
}

func IsPartialEligibility(err error) bool {
	var target *PartialEligibilityError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsStoreUnavailable(err error) bool {
	var target *StoreUnavailableError
	return errors.As(err, &target)
}

// IsRetryable reports whether the caller may retry the same request unchanged.
func IsRetryable(err error) bool {
	return IsStoreUnavailable(err)
}

// IsDomainError reports whether err already belongs to the public taxonomy.
func IsDomainError(err error) bool {
	return IsValidation(err) || IsAuth(err) || IsForbidden(err) || IsNotFound(err) ||
		IsAlreadyFinalized(err) || IsPartialEligibility(err) || IsConflict(err) || IsStoreUnavailable(err)
}
