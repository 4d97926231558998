package controller

import (
	"context"
	"net/http"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/services"
	"github.com/go-chi/chi/v5"
)

type authServiceStub struct {
	registerFn      func(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error)
	loginCustomerFn func(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	loginEmployeeFn func(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error)
	logoutFn        func(ctx context.Context, assertion domain.Assertion) (commons.Response[models.LogoutResponse], error)
}

func (s authServiceStub) RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error) {
	return s.registerFn(ctx, req)
}

func (s authServiceStub) LoginCustomer(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	return s.loginCustomerFn(ctx, req)
}

func (s authServiceStub) LoginEmployee(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	return s.loginEmployeeFn(ctx, req)
}

func (s authServiceStub) Logout(ctx context.Context, assertion domain.Assertion) (commons.Response[models.LogoutResponse], error) {
	return s.logoutFn(ctx, assertion)
}

type paymentServiceStub struct {
	createFn  func(ctx context.Context, principal domain.Principal, req models.CreatePaymentRequest) (commons.Response[models.PaymentResponse], error)
	listOwnFn func(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error)
}

func (s paymentServiceStub) CreatePayment(ctx context.Context, principal domain.Principal, req models.CreatePaymentRequest) (commons.Response[models.PaymentResponse], error) {
	return s.createFn(ctx, principal, req)
}

func (s paymentServiceStub) ListOwnPayments(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error) {
	return s.listOwnFn(ctx, principal)
}

type reviewServiceStub struct {
	listPendingFn func(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error)
	reviewFn      func(ctx context.Context, principal domain.Principal, req models.ReviewPaymentRequest) (commons.Response[models.PaymentResponse], error)
	submitFn      func(ctx context.Context, principal domain.Principal, req models.SubmitBatchRequest) (commons.Response[models.SubmitBatchResponse], error)
}

func (s reviewServiceStub) ListPendingReviews(ctx context.Context, principal domain.Principal) (commons.Response[[]models.PaymentResponse], error) {
	return s.listPendingFn(ctx, principal)
}

func (s reviewServiceStub) ReviewPayment(ctx context.Context, principal domain.Principal, req models.ReviewPaymentRequest) (commons.Response[models.PaymentResponse], error) {
	return s.reviewFn(ctx, principal, req)
}

func (s reviewServiceStub) SubmitBatch(ctx context.Context, principal domain.Principal, req models.SubmitBatchRequest) (commons.Response[models.SubmitBatchResponse], error) {
	return s.submitFn(ctx, principal, req)
}

type reportServiceStub struct {
	exportFn func(ctx context.Context, principal domain.Principal, status string) (services.ReportFile, error)
}

func (s reportServiceStub) ExportPayments(ctx context.Context, principal domain.Principal, status string) (services.ReportFile, error) {
	return s.exportFn(ctx, principal, status)
}

// withPrincipal stands in for the bearer middleware.
func withPrincipal(principal domain.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithAssertion(r.Context(), domain.Assertion{ID: "assertion-1", Principal: principal})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type registrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

func newTestRouter(c registrar, principal domain.Principal) *chi.Mux {
	r := chi.NewRouter()
	c.RegisterRoutes(r, withPrincipal(principal))
	return r
}

var (
	customerPrincipal   = domain.Principal{ID: "cust-1", Kind: domain.PrincipalCustomer, Role: domain.RoleCustomer}
	supervisorPrincipal = domain.Principal{ID: "SUP-1", Kind: domain.PrincipalEmployee, Role: domain.RoleSupervisor}
)
