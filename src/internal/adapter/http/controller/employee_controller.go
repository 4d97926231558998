package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/services"
	"github.com/go-chi/chi/v5"
)

type ReviewService interface {
	ListPendingReviews(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error)
	ReviewPayment(ctx context.Context, principal domain.Principal, req models.ReviewPaymentRequest) (commons.Response[models.PaymentResponse], error)
	SubmitBatch(ctx context.Context, principal domain.Principal, req models.SubmitBatchRequest) (commons.Response[models.SubmitBatchResponse], error)
}

type ReportService interface {
	ExportPayments(ctx context.Context, principal domain.Principal, status string) (services.ReportFile, error)
}

type EmployeeController struct {
	reviews ReviewService
	reports ReportService
}

func NewEmployeeController(reviews ReviewService, reports ReportService) *EmployeeController {
	return &EmployeeController{reviews: reviews, reports: reports}
}

func (c *EmployeeController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/employee", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/transactions", c.listPendingReviews)
		r.Put("/verify-transaction", c.reviewPayment)
		r.Post("/submit-swift", c.submitBatch)
		if c.reports != nil {
			r.Get("/reports/payments", c.exportPayments)
		}
	})
}

func (c *EmployeeController) listPendingReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.reviews.ListPendingReviews(r.Context(), middleware.PrincipalFrom(r.Context()))
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *EmployeeController) reviewPayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ReviewPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logRequest(r, nil)
		response := commons.ErrorResponse[models.PaymentResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.reviews.ReviewPayment(r.Context(), middleware.PrincipalFrom(r.Context()), req)
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *EmployeeController) submitBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SubmitBatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logRequest(r, nil)
		response := commons.ErrorResponse[models.SubmitBatchResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.reviews.SubmitBatch(r.Context(), middleware.PrincipalFrom(r.Context()), req)
	if err != nil {
		var partial *domain.PartialEligibilityError
		if errors.As(err, &partial) {
			details := commons.Response[models.PartialEligibilityDetails]{
				Success: false,
				Message: response.Message,
				Data: &models.PartialEligibilityDetails{
					Requested:  partial.Requested,
					Eligible:   partial.Eligible,
					Ineligible: partial.Ineligible,
				},
				Errors: response.Errors,
			}
			status := writeFailure(w, r, err, details)
			logResponse(r, status, details, start)
			return
		}
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *EmployeeController) exportPayments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	file, err := c.reports.ExportPayments(r.Context(), middleware.PrincipalFrom(r.Context()), r.URL.Query().Get("status"))
	if err != nil {
		response := reportErrorResponse(err)
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("X-Report-Rows", strconv.Itoa(file.Rows))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		logError(r, err, nil)
	}
	logResponse(r, http.StatusOK, map[string]any{"file": file.Name, "rows": file.Rows}, start)
}

func reportErrorResponse(err error) commons.Response[struct{}] {
	switch statusFor(err) {
	case http.StatusBadRequest:
		return commons.ErrorResponse[struct{}]("validation failed", err.Error())
	case http.StatusUnauthorized:
		return commons.ErrorResponse[struct{}]("unauthorized", err.Error())
	case http.StatusForbidden:
		return commons.ErrorResponse[struct{}]("forbidden", err.Error())
	case http.StatusServiceUnavailable:
		return commons.RetryableErrorResponse[struct{}]("service temporarily unavailable", "Unable to process request right now")
	default:
		return commons.ErrorResponse[struct{}]("internal error", "Unable to process request right now")
	}
}
