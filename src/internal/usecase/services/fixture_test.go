package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

var (
	customerA = domain.Principal{ID: "11111111-1111-4111-8111-111111111111", Kind: domain.PrincipalCustomer, Role: domain.RoleCustomer}
	customerB = domain.Principal{ID: "22222222-2222-4222-8222-222222222222", Kind: domain.PrincipalCustomer, Role: domain.RoleCustomer}

	verifier   = domain.Principal{ID: "EMP-V1", Kind: domain.PrincipalEmployee, Role: domain.RoleVerifier}
	supervisor = domain.Principal{ID: "EMP-S1", Kind: domain.PrincipalEmployee, Role: domain.RoleSupervisor}
	admin      = domain.Principal{ID: "EMP-A1", Kind: domain.PrincipalEmployee, Role: domain.RoleAdmin}
	inactive   = domain.Principal{ID: "EMP-X1", Kind: domain.PrincipalEmployee, Role: domain.RoleAdmin}
)

// steppingClock advances by one second on every reading.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fixture struct {
	store      *memory.Store
	payments   *memory.PaymentRepository
	employees  *memory.EmployeeRepository
	transactor *memory.Transactor
	clock      *steppingClock
	service    *services.PaymentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	f := &fixture{
		store:      store,
		payments:   memory.NewPaymentRepository(store),
		employees:  memory.NewEmployeeRepository(store),
		transactor: memory.NewTransactor(store),
		clock:      newSteppingClock(),
	}

	seed := []domain.Employee{
		{EmployeeID: verifier.ID, Username: "verifier1", Role: domain.RoleVerifier, Active: true},
		{EmployeeID: supervisor.ID, Username: "supervisor1", Role: domain.RoleSupervisor, Active: true},
		{EmployeeID: admin.ID, Username: "admin1", Role: domain.RoleAdmin, Active: true},
		{EmployeeID: inactive.ID, Username: "inactive1", Role: domain.RoleAdmin, Active: false},
	}
	for _, employee := range seed {
		if _, err := f.employees.Create(context.Background(), employee); err != nil {
			t.Fatalf("seed employee %s: %v", employee.EmployeeID, err)
		}
	}

	f.service = services.NewPaymentService(f.payments, f.employees, f.transactor).WithClock(f.clock.Now)
	return f
}

func validPaymentRequest() models.CreatePaymentRequest {
	return models.CreatePaymentRequest{
		RecipientName:      "Jane Doe",
		RecipientBank:      "First Bank",
		RecipientAccountNo: "1234567890",
		Amount:             decimal.RequireFromString("250.75"),
		SwiftCode:          "ABCDUS33",
	}
}

func (f *fixture) createPayment(t *testing.T, principal domain.Principal) string {
	t.Helper()

	resp, err := f.service.CreatePayment(context.Background(), principal, validPaymentRequest())
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	return resp.Data.ID
}

func (f *fixture) review(t *testing.T, principal domain.Principal, id string, approve bool) {
	t.Helper()

	if _, err := f.service.ReviewPayment(context.Background(), principal, models.ReviewPaymentRequest{
		TransactionID: id,
		Verified:      &approve,
	}); err != nil {
		t.Fatalf("review payment %s: %v", id, err)
	}
}

func (f *fixture) payment(t *testing.T, id string) domain.Payment {
	t.Helper()

	payment, err := f.payments.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find payment %s: %v", id, err)
	}
	return payment
}

func (f *fixture) auditLog(t *testing.T, employeeID string) []domain.AuditEntry {
	t.Helper()

	employee, err := f.employees.FindByEmployeeID(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("find employee %s: %v", employeeID, err)
	}
	return employee.ActionLog
}

type employeeRepoStub struct {
	domain.EmployeeRepository
	appendFn func(ctx context.Context, employeeID string, entries ...domain.AuditEntry) error
	findFn   func(ctx context.Context, employeeID string) (domain.Employee, error)
}

func (s employeeRepoStub) FindByEmployeeID(ctx context.Context, employeeID string) (domain.Employee, error) {
	if s.findFn != nil {
		return s.findFn(ctx, employeeID)
	}
	return s.EmployeeRepository.FindByEmployeeID(ctx, employeeID)
}

func (s employeeRepoStub) AppendAuditEntries(ctx context.Context, employeeID string, entries ...domain.AuditEntry) error {
	if s.appendFn != nil {
		return s.appendFn(ctx, employeeID, entries...)
	}
	return s.EmployeeRepository.AppendAuditEntries(ctx, employeeID, entries...)
}

type paymentRepoStub struct {
	domain.PaymentRepository
	findManyFn func(ctx context.Context, filter domain.PaymentFilter, sort domain.PaymentSort) ([]domain.Payment, error)
	insertFn   func(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	updateFn   func(ctx context.Context, ids []string, patch domain.PaymentPatch, cond domain.PaymentFilter) (int64, error)
}

func (s paymentRepoStub) FindMany(ctx context.Context, filter domain.PaymentFilter, sort domain.PaymentSort) ([]domain.Payment, error) {
	if s.findManyFn != nil {
		return s.findManyFn(ctx, filter, sort)
	}
	return s.PaymentRepository.FindMany(ctx, filter, sort)
}

func (s paymentRepoStub) Insert(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if s.insertFn != nil {
		return s.insertFn(ctx, payment)
	}
	return s.PaymentRepository.Insert(ctx, payment)
}

func (s paymentRepoStub) UpdateMany(ctx context.Context, ids []string, patch domain.PaymentPatch, cond domain.PaymentFilter) (int64, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, ids, patch, cond)
	}
	return s.PaymentRepository.UpdateMany(ctx, ids, patch, cond)
}
