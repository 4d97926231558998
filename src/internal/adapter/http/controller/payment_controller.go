package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CustomerPaymentService interface {
	CreatePayment(ctx context.Context, principal domain.Principal, req models.CreatePaymentRequest) (commons.Response[models.PaymentResponse], error)
	ListOwnPayments(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error)
}

type PaymentController struct {
	service CustomerPaymentService
}

func NewPaymentController(service CustomerPaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/api/payments", c.createPayment)
		r.Get("/api/payments", c.listOwnPayments)
	})
}

func (c *PaymentController) createPayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreatePaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logRequest(r, nil)
		response := commons.ErrorResponse[models.PaymentResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.CreatePayment(r.Context(), middleware.PrincipalFrom(r.Context()), req)
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *PaymentController) listOwnPayments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListOwnPayments(r.Context(), middleware.PrincipalFrom(r.Context()))
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
