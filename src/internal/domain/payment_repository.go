package domain

import "context"

type VerificationFilter int

const (
	VerificationAny VerificationFilter = iota
	VerificationUnset
	VerificationApproved
	VerificationRejected
	VerificationNotRejected
)

func (f VerificationFilter) Matches(verified *bool) bool {
	switch f {
	case VerificationUnset:
		return verified == nil
	case VerificationApproved:
		return verified != nil && *verified
	case VerificationRejected:
		return verified != nil && !*verified
	case VerificationNotRejected:
		return verified == nil || *verified
	default:
		return true
	}
}

// PaymentFilter selects payments for queries and doubles as the precondition of
// conditional updates. Zero values match everything.
type PaymentFilter struct {
	IDs          []string
	CustomerID   string
	Verification VerificationFilter
	Submitted    *bool
}

func (f PaymentFilter) Matches(p Payment) bool {
	if len(f.IDs) > 0 {
		found := false
		for _, id := range f.IDs {
			if id == p.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.CustomerID != "" && f.CustomerID != p.CustomerID {
		return false
	}
	if !f.Verification.Matches(p.Verified) {
		return false
	}
	if f.Submitted != nil && *f.Submitted != p.Submitted {
		return false
	}
	return true
}

type PaymentSort int

const (
	SortNone PaymentSort = iota
	SortCreatedDesc
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment Payment) (Payment, error)
	FindByID(ctx context.Context, id string) (Payment, error)
	FindMany(ctx context.Context, filter PaymentFilter, sort PaymentSort) ([]Payment, error)
	UpdateOne(ctx context.Context, id string, patch PaymentPatch, cond PaymentFilter) (bool, error)
	UpdateMany(ctx context.Context, ids []string, patch PaymentPatch, cond PaymentFilter) (int64, error)
}
