package models

import (
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	RecipientName      string          `json:"recipientName"`
	RecipientBank      string          `json:"recipientBank"`
	RecipientAccountNo string          `json:"recipientAccountNo"`
	Amount             decimal.Decimal `json:"amount"`
	SwiftCode          string          `json:"swiftCode"`
}

func (r CreatePaymentRequest) Details() domain.PaymentDetails {
	return domain.PaymentDetails{
		RecipientName:      r.RecipientName,
		RecipientBank:      r.RecipientBank,
		RecipientAccountNo: r.RecipientAccountNo,
		Amount:             r.Amount,
		SwiftCode:          r.SwiftCode,
	}
}

type PaymentResponse struct {
	ID                 string  `json:"id"`
	CustomerID         string  `json:"customerId"`
	RecipientName      string  `json:"recipientName"`
	RecipientBank      string  `json:"recipientBank"`
	RecipientAccountNo string  `json:"recipientAccountNo"`
	Amount             string  `json:"amount"`
	SwiftCode          string  `json:"swiftCode"`
	Status             string  `json:"status"`
	Verified           *bool   `json:"verified"`
	VerifiedBy         *string `json:"verifiedBy,omitempty"`
	VerificationNotes  *string `json:"verificationNotes,omitempty"`
	VerificationDate   *string `json:"verificationDate,omitempty"`
	Submitted          bool    `json:"submitted"`
	SubmittedBy        *string `json:"submittedBy,omitempty"`
	SubmissionDate     *string `json:"submissionDate,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

func NewPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		CustomerID:         p.CustomerID,
		RecipientName:      p.RecipientName,
		RecipientBank:      p.RecipientBank,
		RecipientAccountNo: p.RecipientAccountNo,
		Amount:             p.Amount.StringFixed(2),
		SwiftCode:          p.SwiftCode,
		Status:             string(p.Status()),
		Verified:           p.Verified,
		VerifiedBy:         p.VerifiedBy,
		VerificationNotes:  p.VerificationNotes,
		VerificationDate:   formatTime(p.VerificationDate),
		Submitted:          p.Submitted,
		SubmittedBy:        p.SubmittedBy,
		SubmissionDate:     formatTime(p.SubmissionDate),
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.Format(time.RFC3339),
	}
}

func NewPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p))
	}
	return out
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
