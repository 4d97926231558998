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

type BankService interface {
	ListBanks(ctx context.Context, principal domain.Principal) (commons.Response[[]models.BankResponse], error)
}

type BankController struct {
	service BankService
}

func NewBankController(service BankService) *BankController {
	return &BankController{service: service}
}

func (c *BankController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/api/banks", c.listBanks)
	})
}

func (c *BankController) listBanks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListBanks(r.Context(), middleware.PrincipalFrom(r.Context()))
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
