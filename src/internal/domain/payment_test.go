package domain_test

import (
	"testing"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
)

func TestPaymentStatus(t *testing.T) {
	approved := true
	rejected := false

	cases := []struct {
		name    string
		payment domain.Payment
		want    domain.PaymentStatus
	}{
		{"pending", domain.Payment{}, domain.PaymentStatusPendingReview},
		{"verified", domain.Payment{Verified: &approved}, domain.PaymentStatusVerified},
		{"rejected", domain.Payment{Verified: &rejected}, domain.PaymentStatusRejected},
		{"submitted", domain.Payment{Verified: &approved, Submitted: true}, domain.PaymentStatusSubmitted},
	}

	for _, tc := range cases {
		if got := tc.payment.Status(); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestPaymentPatchSetsVerifierAndDateTogether(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	patch := domain.PaymentPatch{Verification: &domain.Verification{Approved: true, By: "EMP001", At: at}}

	got := patch.Apply(domain.Payment{ID: "p1"})
	if got.VerifiedBy == nil || got.VerificationDate == nil {
		t.Fatalf("expected verifiedBy and verificationDate to be set")
	}
	if *got.VerifiedBy != "EMP001" || !got.VerificationDate.Equal(at) {
		t.Fatalf("unexpected verification fields: %v %v", *got.VerifiedBy, *got.VerificationDate)
	}
	if got.Status() != domain.PaymentStatusVerified {
		t.Fatalf("expected verified status, got %s", got.Status())
	}
}

func TestPaymentFilterMatches(t *testing.T) {
	approved := true
	notSubmitted := false
	eligible := domain.PaymentFilter{
		IDs:          []string{"a", "b"},
		Verification: domain.VerificationApproved,
		Submitted:    &notSubmitted,
	}

	if !eligible.Matches(domain.Payment{ID: "a", Verified: &approved}) {
		t.Fatalf("expected approved unsubmitted payment to match")
	}
	if eligible.Matches(domain.Payment{ID: "c", Verified: &approved}) {
		t.Fatalf("expected payment outside id set not to match")
	}
	if eligible.Matches(domain.Payment{ID: "a"}) {
		t.Fatalf("expected pending payment not to match")
	}
	if eligible.Matches(domain.Payment{ID: "b", Verified: &approved, Submitted: true}) {
		t.Fatalf("expected submitted payment not to match")
	}
}
