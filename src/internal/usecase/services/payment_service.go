package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/access"
	"github.com/google/uuid"
)

type PaymentService struct {
	payments   domain.PaymentRepository
	employees  domain.EmployeeRepository
	transactor domain.Transactor
	gate       gate
	now        func() time.Time
}

func NewPaymentService(payments domain.PaymentRepository, employees domain.EmployeeRepository, transactor domain.Transactor) *PaymentService {
	return &PaymentService{
		payments:   payments,
		employees:  employees,
		transactor: transactor,
		gate:       gate{employees: employees},
		now:        time.Now,
	}
}

func (s *PaymentService) WithClock(now func() time.Time) *PaymentService {
	s.now = now
	return s
}

func (s *PaymentService) CreatePayment(ctx context.Context, principal domain.Principal, req models.CreatePaymentRequest) (commons.Response[models.PaymentResponse], error) {
	logger.Info("payment service create payment request", logger.Fields{
		"customerId": principal.ID,
		"payload":    logger.SanitizePayload(req),
	})

	if err := s.gate.customer(principal, access.CreatePayment); err != nil {
		logger.Error("payment service create payment unauthorized", err, nil)
		return errorResponse[models.PaymentResponse](err), err
	}

	details := domain.NormalizePaymentDetails(req.Details())
	if err := domain.ValidatePaymentDetails(details); err != nil {
		logger.Error("payment service create payment validation failed", err, logger.Fields{
			"customerId": principal.ID,
		})
		return errorResponse[models.PaymentResponse](err), err
	}

	now := s.now().UTC()
	payment := domain.Payment{
		ID:             uuid.NewString(),
		CustomerID:     principal.ID,
		PaymentDetails: details,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.payments.Insert(ctx, payment)
	if err != nil {
		err = storeError("insert payment", err)
		logger.Error("payment service create payment repository failed", err, logger.Fields{
			"paymentId":  payment.ID,
			"customerId": principal.ID,
		})
		return errorResponse[models.PaymentResponse](err), err
	}

	logger.Info("payment service create payment success", logger.Fields{
		"paymentId":  created.ID,
		"customerId": created.CustomerID,
		"amount":     created.Amount.StringFixed(2),
	})

	return commons.SuccessResponse("payment created successfully", models.NewPaymentResponse(created)), nil
}

func (s *PaymentService) ListOwnPayments(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error) {
	logger.Info("payment service list own payments request", logger.Fields{
		"customerId": principal.ID,
	})

	if err := s.gate.customer(principal, access.ListOwnPayments); err != nil {
		logger.Error("payment service list own payments unauthorized", err, nil)
		return errorResponse[[]models.PaymentResponse](err), err
	}

	payments, err := s.payments.FindMany(ctx, domain.PaymentFilter{CustomerID: principal.ID}, domain.SortCreatedDesc)
	if err != nil {
		err = storeError("find customer payments", err)
		logger.Error("payment service list own payments failed", err, logger.Fields{
			"customerId": principal.ID,
		})
		return errorResponse[[]models.PaymentResponse](err), err
	}

	logger.Info("payment service list own payments success", logger.Fields{
		"customerId": principal.ID,
		"count":      len(payments),
	})

	return commons.SuccessResponse("payments fetched successfully", models.NewPaymentResponses(payments)), nil
}

func (s *PaymentService) ListPendingReviews(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error) {
	logger.Info("payment service list pending reviews request", logger.Fields{
		"employeeId": principal.ID,
	})

	if _, err := s.gate.employee(ctx, principal, access.ListPendingReviews); err != nil {
		logger.Error("payment service list pending reviews unauthorized", err, logger.Fields{
			"employeeId": principal.ID,
		})
		return errorResponse[[]models.PaymentResponse](err), err
	}

	notSubmitted := false
	payments, err := s.payments.FindMany(ctx, domain.PaymentFilter{
		Verification: domain.VerificationUnset,
		Submitted:    &notSubmitted,
	}, domain.SortCreatedDesc)
	if err != nil {
		err = storeError("find pending payments", err)
		logger.Error("payment service list pending reviews failed", err, nil)
		return errorResponse[[]models.PaymentResponse](err), err
	}

	logger.Info("payment service list pending reviews success", logger.Fields{
		"employeeId": principal.ID,
		"count":      len(payments),
	})

	return commons.SuccessResponse("pending transactions fetched successfully", models.NewPaymentResponses(payments)), nil
}

// ReviewPayment approves or rejects a payment that is neither submitted nor
// rejected. An approved payment may be reviewed again until it is submitted.
func (s *PaymentService) ReviewPayment(ctx context.Context, principal domain.Principal, req models.ReviewPaymentRequest) (commons.Response[models.PaymentResponse], error) {
	logger.Info("payment service review payment request", logger.Fields{
		"employeeId": principal.ID,
		"payload":    logger.SanitizePayload(req),
	})

	employee, err := s.gate.employee(ctx, principal, access.ReviewPayment)
	if err != nil {
		logger.Error("payment service review payment unauthorized", err, logger.Fields{
			"employeeId": principal.ID,
		})
		return errorResponse[models.PaymentResponse](err), err
	}

	paymentID, approve, notes, err := reviewInput(req)
	if err != nil {
		logger.Error("payment service review payment validation failed", err, nil)
		return errorResponse[models.PaymentResponse](err), err
	}

	var reviewed domain.Payment
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		now := s.now().UTC()
		notSubmitted := false

		matched, err := s.payments.UpdateOne(ctx, paymentID, domain.PaymentPatch{
			Verification: &domain.Verification{
				Approved: approve,
				By:       employee.EmployeeID,
				Notes:    notes,
				At:       now,
			},
		}, domain.PaymentFilter{
			Verification: domain.VerificationNotRejected,
			Submitted:    &notSubmitted,
		})
		if err != nil {
			return storeError("update payment verification", err)
		}

		if !matched {
			current, err := s.payments.FindByID(ctx, paymentID)
			if err != nil {
				return notFound("payment", paymentID, "find payment", err)
			}
			return &domain.AlreadyFinalizedError{PaymentID: paymentID, Status: current.Status()}
		}

		action := domain.AuditActionReject
		if approve {
			action = domain.AuditActionVerify
		}
		if err := s.employees.AppendAuditEntries(ctx, employee.EmployeeID, domain.AuditEntry{
			Action:    action,
			PaymentID: paymentID,
			Timestamp: now,
		}); err != nil {
			return storeError("append audit entry", err)
		}

		reviewed, err = s.payments.FindByID(ctx, paymentID)
		if err != nil {
			return storeError("reload payment", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("payment service review payment failed", err, logger.Fields{
			"employeeId": employee.EmployeeID,
			"paymentId":  paymentID,
		})
		return errorResponse[models.PaymentResponse](err), err
	}

	logger.Info("payment service review payment success", logger.Fields{
		"employeeId": employee.EmployeeID,
		"paymentId":  paymentID,
		"status":     reviewed.Status(),
	})

	message := "transaction rejected successfully"
	if approve {
		message = "transaction verified successfully"
	}
	return commons.SuccessResponse(message, models.NewPaymentResponse(reviewed)), nil
}

// SubmitBatch submits every requested payment or none of them.
func (s *PaymentService) SubmitBatch(ctx context.Context, principal domain.Principal, req models.SubmitBatchRequest) (commons.Response[models.SubmitBatchResponse], error) {
	logger.Info("payment service submit batch request", logger.Fields{
		"employeeId": principal.ID,
		"count":      len(req.TransactionIDs),
	})

	employee, err := s.gate.employee(ctx, principal, access.SubmitBatch)
	if err != nil {
		logger.Error("payment service submit batch unauthorized", err, logger.Fields{
			"employeeId": principal.ID,
		})
		return errorResponse[models.SubmitBatchResponse](err), err
	}

	ids, err := distinctPaymentIDs(req.TransactionIDs)
	if err != nil {
		logger.Error("payment service submit batch validation failed", err, nil)
		return errorResponse[models.SubmitBatchResponse](err), err
	}

	var submittedAt time.Time
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		notSubmitted := false
		eligibleFilter := domain.PaymentFilter{
			IDs:          ids,
			Verification: domain.VerificationApproved,
			Submitted:    &notSubmitted,
		}

		eligible, err := s.payments.FindMany(ctx, eligibleFilter, domain.SortNone)
		if err != nil {
			return storeError("find eligible payments", err)
		}
		if len(eligible) != len(ids) {
			return &domain.PartialEligibilityError{
				Requested:  len(ids),
				Eligible:   len(eligible),
				Ineligible: missingIDs(ids, eligible),
			}
		}

		submittedAt = s.now().UTC().Truncate(time.Microsecond)
		matched, err := s.payments.UpdateMany(ctx, ids, domain.PaymentPatch{
			Submission: &domain.Submission{By: employee.EmployeeID, At: submittedAt},
		}, domain.PaymentFilter{
			Verification: domain.VerificationApproved,
			Submitted:    &notSubmitted,
		})
		if err != nil {
			return storeError("submit payments", err)
		}
		if matched != int64(len(ids)) {
			current, err := s.payments.FindMany(ctx, domain.PaymentFilter{IDs: ids}, domain.SortNone)
			if err != nil {
				return storeError("find batch payments", err)
			}
			return &domain.PartialEligibilityError{
				Requested:  len(ids),
				Eligible:   int(matched),
				Ineligible: missingIDs(ids, submittedInBatch(current, employee.EmployeeID, submittedAt)),
			}
		}

		entries := make([]domain.AuditEntry, 0, len(ids))
		for _, id := range ids {
			entries = append(entries, domain.AuditEntry{
				Action:    domain.AuditActionSwiftSubmit,
				PaymentID: id,
				Timestamp: submittedAt,
			})
		}
		if err := s.employees.AppendAuditEntries(ctx, employee.EmployeeID, entries...); err != nil {
			return storeError("append audit entries", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("payment service submit batch failed", err, logger.Fields{
			"employeeId": employee.EmployeeID,
			"requested":  len(ids),
		})
		return errorResponse[models.SubmitBatchResponse](err), err
	}

	logger.Info("payment service submit batch success", logger.Fields{
		"employeeId": employee.EmployeeID,
		"submitted":  len(ids),
	})

	return commons.SuccessResponse("transactions submitted to SWIFT successfully", models.SubmitBatchResponse{
		SubmittedCount: len(ids),
		TransactionIDs: ids,
		SubmittedAt:    submittedAt.Format(time.RFC3339),
	}), nil
}

func reviewInput(req models.ReviewPaymentRequest) (string, bool, *string, error) {
	var errs domain.ValidationErrors

	paymentID, err := domain.CanonicalPaymentID(req.TransactionID)
	if err != nil {
		errs = append(errs, err.(*domain.ValidationError))
	}
	if req.Verified == nil {
		errs = append(errs, &domain.ValidationError{Field: "verified", Message: "is required"})
	}

	var notes *string
	if req.VerificationNotes != nil {
		if trimmed := strings.TrimSpace(*req.VerificationNotes); trimmed != "" {
			notes = &trimmed
		}
	}
	if err := domain.ValidateReviewNotes(notes); err != nil {
		errs = append(errs, err.(*domain.ValidationError))
	}

	if err := errs.OrNil(); err != nil {
		return "", false, nil, err
	}
	return paymentID, *req.Verified, notes, nil
}

func distinctPaymentIDs(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, &domain.ValidationError{Field: "transactionIds", Message: "must contain at least one id"}
	}

	seen := make(map[string]struct{}, len(raw))
	ids := make([]string, 0, len(raw))
	for _, value := range raw {
		id, err := domain.CanonicalPaymentID(value)
		if err != nil {
			return nil, &domain.ValidationError{Field: "transactionIds", Message: "contains an invalid id"}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) > domain.MaxBatchSize {
		return nil, &domain.ValidationError{
			Field:   "transactionIds",
			Message: fmt.Sprintf("must contain at most %d ids", domain.MaxBatchSize),
		}
	}
	return ids, nil
}

// submittedInBatch keeps the payments this batch's update reached.
func submittedInBatch(payments []domain.Payment, employeeID string, at time.Time) []domain.Payment {
	out := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Submitted && p.SubmittedBy != nil && *p.SubmittedBy == employeeID &&
			p.SubmissionDate != nil && p.SubmissionDate.Equal(at) {
			out = append(out, p)
		}
	}
	return out
}

func missingIDs(requested []string, found []domain.Payment) []string {
	present := make(map[string]struct{}, len(found))
	for _, payment := range found {
		present[payment.ID] = struct{}{}
	}

	missing := make([]string, 0)
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
