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

type AuthService interface {
	RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error)
	LoginCustomer(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	LoginEmployee(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	Logout(ctx context.Context, assertion domain.Assertion) (commons.Response[models.LogoutResponse], error)
}

type AuthController struct {
	service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/api/auth/customers/register", c.registerCustomer)
	r.Post("/api/auth/customers/login", c.loginCustomer)
	r.Post("/api/auth/employees/login", c.loginEmployee)

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/api/auth/logout", c.logout)
	})
}

func (c *AuthController) registerCustomer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterCustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logRequest(r, nil)
		response := commons.ErrorResponse[models.RegisterCustomerResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterCustomer(r.Context(), req)
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AuthController) loginCustomer(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, c.service.LoginCustomer)
}

func (c *AuthController) loginEmployee(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, c.service.LoginEmployee)
}

func (c *AuthController) login(
	w http.ResponseWriter,
	r *http.Request,
	login func(context.Context, models.LoginRequest) (commons.Response[models.LoginResponse], error),
) {
	start := time.Now()

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logRequest(r, nil)
		response := commons.ErrorResponse[models.LoginResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := login(r.Context(), req)
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AuthController) logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	assertion, ok := middleware.AssertionFrom(r.Context())
	if !ok {
		response := commons.ErrorResponse[models.LogoutResponse]("unauthorized", "missing bearer token")
		writeJSON(w, http.StatusUnauthorized, response)
		logResponse(r, http.StatusUnauthorized, response, start)
		return
	}

	response, err := c.service.Logout(r.Context(), assertion)
	if err != nil {
		status := writeFailure(w, r, err, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}
