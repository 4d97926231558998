package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPendingReview PaymentStatus = "PENDING_REVIEW"
	PaymentStatusVerified      PaymentStatus = "VERIFIED"
	PaymentStatusRejected      PaymentStatus = "REJECTED"
	PaymentStatusSubmitted     PaymentStatus = "SUBMITTED"
)

type PaymentDetails struct {
	RecipientName      string
	RecipientBank      string
	RecipientAccountNo string
	Amount             decimal.Decimal
	SwiftCode          string
}

type Payment struct {
	ID         string
	CustomerID string
	PaymentDetails

	Verified          *bool
	VerifiedBy        *string
	VerificationNotes *string
	VerificationDate  *time.Time

	Submitted      bool
	SubmittedBy    *string
	SubmissionDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Payment) Status() PaymentStatus {
	switch {
	case p.Submitted:
		return PaymentStatusSubmitted
	case p.Verified == nil:
		return PaymentStatusPendingReview
	case *p.Verified:
		return PaymentStatusVerified
	default:
		return PaymentStatusRejected
	}
}

// Finalized reports whether no further review may be applied. Rejected payments
// are terminal; approved payments stay reviewable until they are submitted.
func (p Payment) Finalized() bool {
	return p.Submitted || (p.Verified != nil && !*p.Verified)
}

// Verification sets the verification fields as one unit so that VerifiedBy and
// VerificationDate are never written independently.
type Verification struct {
	Approved bool
	By       string
	Notes    *string
	At       time.Time
}

type Submission struct {
	By string
	At time.Time
}

type PaymentPatch struct {
	Verification *Verification
	Submission   *Submission
}

// Apply returns a copy of p with the patch applied.
func (patch PaymentPatch) Apply(p Payment) Payment {
	if v := patch.Verification; v != nil {
		approved := v.Approved
		by := v.By
		at := v.At
		p.Verified = &approved
		p.VerifiedBy = &by
		p.VerificationNotes = v.Notes
		p.VerificationDate = &at
		p.UpdatedAt = at
	}
	if s := patch.Submission; s != nil {
		by := s.By
		at := s.At
		p.Submitted = true
		p.SubmittedBy = &by
		p.SubmissionDate = &at
		p.UpdatedAt = at
	}
	return p
}
