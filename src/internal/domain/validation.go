package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxReviewNotesLength = 500

// MaxBatchSize bounds one SWIFT submission batch.
const MaxBatchSize = 500

var (
	recipientTextPattern    = regexp.MustCompile(`^[a-zA-Z ]{2,50}$`)
	recipientAccountPattern = regexp.MustCompile(`^\d{10,20}$`)
	swiftCodePattern        = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

	personNamePattern    = regexp.MustCompile(`^[a-zA-Z]{2,30}$`)
	emailPattern         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern      = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)
	passwordPattern      = regexp.MustCompile(`^[a-zA-Z0-9]{8,}$`)
	letterPattern        = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern         = regexp.MustCompile(`\d`)
	accountNumberPattern = regexp.MustCompile(`^\d{10,12}$`)
	idNumberPattern      = regexp.MustCompile(`^\d{13}$`)

	minimumAmount = decimal.New(1, -2)
)

// NormalizePaymentDetails trims text fields and strips whitespace from the
// account number. It does not validate.
func NormalizePaymentDetails(d PaymentDetails) PaymentDetails {
	d.RecipientName = strings.TrimSpace(d.RecipientName)
	d.RecipientBank = strings.TrimSpace(d.RecipientBank)
	d.RecipientAccountNo = strings.Join(strings.Fields(d.RecipientAccountNo), "")
	d.SwiftCode = strings.TrimSpace(d.SwiftCode)
	return d
}

func ValidatePaymentDetails(d PaymentDetails) error {
	var errs ValidationErrors

	if !recipientTextPattern.MatchString(d.RecipientName) {
		errs = append(errs, &ValidationError{Field: "recipientName", Message: "must be 2-50 letters or spaces"})
	}
	if !recipientTextPattern.MatchString(d.RecipientBank) {
		errs = append(errs, &ValidationError{Field: "recipientBank", Message: "must be 2-50 letters or spaces"})
	}
	if !recipientAccountPattern.MatchString(d.RecipientAccountNo) {
		errs = append(errs, &ValidationError{Field: "recipientAccountNo", Message: "must be 10-20 digits"})
	}
	if err := ValidateAmount(d.Amount); err != nil {
		errs = append(errs, err.(*ValidationError))
	}
	if !swiftCodePattern.MatchString(d.SwiftCode) {
		errs = append(errs, &ValidationError{Field: "swiftCode", Message: "must be a valid 8 or 11 character SWIFT/BIC code"})
	}

	return errs.OrNil()
}

func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThan(minimumAmount) {
		return &ValidationError{Field: "amount", Message: "must be at least 0.01"}
	}
	if !amount.Equal(amount.Round(2)) {
		return &ValidationError{Field: "amount", Message: "must have at most 2 decimal places"}
	}
	return nil
}

func ValidateReviewNotes(notes *string) error {
	if notes == nil {
		return nil
	}
	if utf8.RuneCountInString(*notes) > MaxReviewNotesLength {
		return &ValidationError{Field: "notes", Message: "must be at most 500 characters"}
	}
	return nil
}

// CanonicalPaymentID parses any spelling uuid.Parse accepts (dashed, undashed,
// braced, urn) and returns the lowercase dashed form stores key payments by.
func CanonicalPaymentID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", &ValidationError{Field: "paymentId", Message: "must be a valid id"}
	}
	return parsed.String(), nil
}

func NormalizeCustomer(c Customer) Customer {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Username = strings.TrimSpace(c.Username)
	c.AccountNumber = strings.TrimSpace(c.AccountNumber)
	c.IDNumber = strings.TrimSpace(c.IDNumber)
	return c
}

// ValidateCustomerRegistration checks a normalized customer and the plain
// password chosen at registration.
func ValidateCustomerRegistration(c Customer, password string) error {
	var errs ValidationErrors

	if !personNamePattern.MatchString(c.FirstName) {
		errs = append(errs, &ValidationError{Field: "firstName", Message: "must be 2-30 letters"})
	}
	if !personNamePattern.MatchString(c.LastName) {
		errs = append(errs, &ValidationError{Field: "lastName", Message: "must be 2-30 letters"})
	}
	if !emailPattern.MatchString(c.Email) {
		errs = append(errs, &ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !usernamePattern.MatchString(c.Username) {
		errs = append(errs, &ValidationError{Field: "username", Message: "must be 4-20 letters or digits"})
	}
	if err := ValidatePassword(password); err != nil {
		errs = append(errs, err.(*ValidationError))
	}
	if !accountNumberPattern.MatchString(c.AccountNumber) {
		errs = append(errs, &ValidationError{Field: "accountNumber", Message: "must be 10-12 digits"})
	}
	if !idNumberPattern.MatchString(c.IDNumber) {
		errs = append(errs, &ValidationError{Field: "idNumber", Message: "must be exactly 13 digits"})
	}

	return errs.OrNil()
}

func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return &ValidationError{Field: "username", Message: "must be 4-20 letters or digits"}
	}
	return nil
}

func ValidatePassword(password string) error {
	if !passwordPattern.MatchString(password) || !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return &ValidationError{Field: "password", Message: "must be at least 8 letters and digits with at least one of each"}
	}
	return nil
}
