package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

const invalidCredentials = "invalid username or password"

type TokenTTLs struct {
	Customer time.Duration
	Employee time.Duration
}

type AuthService struct {
	customers  domain.CustomerRepository
	employees  domain.EmployeeRepository
	passwords  domain.PasswordVerifier
	assertions domain.AssertionService
	ttl        TokenTTLs
	now        func() time.Time
}

func NewAuthService(
	customers domain.CustomerRepository,
	employees domain.EmployeeRepository,
	passwords domain.PasswordVerifier,
	assertions domain.AssertionService,
	ttl TokenTTLs,
) *AuthService {
	if ttl.Customer <= 0 {
		ttl.Customer = time.Hour
	}
	if ttl.Employee <= 0 {
		ttl.Employee = 8 * time.Hour
	}
	return &AuthService{
		customers:  customers,
		employees:  employees,
		passwords:  passwords,
		assertions: assertions,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *AuthService) RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error) {
	logger.Info("auth service register customer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	customer := domain.NormalizeCustomer(domain.Customer{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Username:      req.Username,
		AccountNumber: req.AccountNumber,
		IDNumber:      req.IDNumber,
	})
	if err := domain.ValidateCustomerRegistration(customer, req.Password); err != nil {
		logger.Error("auth service register customer validation failed", err, nil)
		return errorResponse[models.RegisterCustomerResponse](err), err
	}

	exists, err := s.customers.ExistsConflicting(ctx, customer)
	if err != nil {
		err = storeError("check customer uniqueness", err)
		logger.Error("auth service register customer lookup failed", err, nil)
		return errorResponse[models.RegisterCustomerResponse](err), err
	}
	if exists {
		err := &domain.ConflictError{Message: "a customer with these details already exists"}
		logger.Info("auth service register customer conflict", logger.Fields{"username": customer.Username})
		return errorResponse[models.RegisterCustomerResponse](err), err
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		err = storeError("hash password", err)
		logger.Error("auth service register customer hash failed", err, nil)
		return errorResponse[models.RegisterCustomerResponse](err), err
	}
	customer.PasswordHash = hash

	created, err := s.customers.Create(ctx, customer)
	if err != nil {
		err = storeError("create customer", err)
		logger.Error("auth service register customer repository failed", err, logger.Fields{
			"username": customer.Username,
		})
		return errorResponse[models.RegisterCustomerResponse](err), err
	}

	logger.Info("auth service register customer success", logger.Fields{
		"customerId": created.ID,
		"username":   created.Username,
	})

	return commons.SuccessResponse("customer registered successfully", models.RegisterCustomerResponse{
		ID:        created.ID,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		Username:  created.Username,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}), nil
}

func (s *AuthService) LoginCustomer(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	username := strings.TrimSpace(req.Username)
	logger.Info("auth service customer login request", logger.Fields{"username": username})

	if err := loginFormat(username, req.Password); err != nil {
		return errorResponse[models.LoginResponse](err), err
	}

	customer, err := s.customers.FindByUsername(ctx, username)
	if err != nil {
		err = credentialLookupError("find customer", err)
		logger.Error("auth service customer login lookup failed", err, logger.Fields{"username": username})
		return errorResponse[models.LoginResponse](err), err
	}

	if err := s.checkPassword(customer.PasswordHash, req.Password); err != nil {
		logger.Info("auth service customer login rejected", logger.Fields{"username": username})
		return errorResponse[models.LoginResponse](err), err
	}

	principal := domain.Principal{ID: customer.ID, Kind: domain.PrincipalCustomer, Role: domain.RoleCustomer}
	response, err := s.issue(ctx, principal, s.ttl.Customer)
	if err != nil {
		logger.Error("auth service customer login issue failed", err, logger.Fields{"customerId": customer.ID})
		return errorResponse[models.LoginResponse](err), err
	}

	logger.Info("auth service customer login success", logger.Fields{"customerId": customer.ID})
	return commons.SuccessResponse("login successful", response), nil
}

func (s *AuthService) LoginEmployee(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	username := strings.TrimSpace(req.Username)
	logger.Info("auth service employee login request", logger.Fields{"username": username})

	if err := loginFormat(username, req.Password); err != nil {
		return errorResponse[models.LoginResponse](err), err
	}

	employee, err := s.employees.FindByUsername(ctx, username)
	if err != nil {
		err = credentialLookupError("find employee", err)
		logger.Error("auth service employee login lookup failed", err, logger.Fields{"username": username})
		return errorResponse[models.LoginResponse](err), err
	}
	if !employee.Active {
		err := &domain.AuthError{Reason: invalidCredentials}
		logger.Info("auth service employee login inactive", logger.Fields{"employeeId": employee.EmployeeID})
		return errorResponse[models.LoginResponse](err), err
	}

	if err := s.checkPassword(employee.PasswordHash, req.Password); err != nil {
		logger.Info("auth service employee login rejected", logger.Fields{"employeeId": employee.EmployeeID})
		return errorResponse[models.LoginResponse](err), err
	}

	if err := s.employees.TouchLastLogin(ctx, employee.EmployeeID, s.now().UTC()); err != nil {
		err = storeError("touch last login", err)
		logger.Error("auth service employee login touch failed", err, logger.Fields{"employeeId": employee.EmployeeID})
		return errorResponse[models.LoginResponse](err), err
	}

	principal := domain.Principal{ID: employee.EmployeeID, Kind: domain.PrincipalEmployee, Role: employee.Role}
	response, err := s.issue(ctx, principal, s.ttl.Employee)
	if err != nil {
		logger.Error("auth service employee login issue failed", err, logger.Fields{"employeeId": employee.EmployeeID})
		return errorResponse[models.LoginResponse](err), err
	}
	response.EmployeeID = employee.EmployeeID

	logger.Info("auth service employee login success", logger.Fields{
		"employeeId": employee.EmployeeID,
		"role":       employee.Role,
	})
	return commons.SuccessResponse("login successful", response), nil
}

// Authenticate resolves a bearer token into its assertion. Any token problem
// is reported as an AuthError.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Assertion, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Assertion{}, &domain.AuthError{}
	}

	assertion, err := s.assertions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAssertion) {
			return domain.Assertion{}, &domain.AuthError{Reason: "invalid or expired token"}
		}
		return domain.Assertion{}, storeError("validate assertion", err)
	}
	return assertion, nil
}

func (s *AuthService) Logout(ctx context.Context, assertion domain.Assertion) (commons.Response[models.LogoutResponse], error) {
	logger.Info("auth service logout request", logger.Fields{
		"principalId": assertion.Principal.ID,
		"kind":        assertion.Principal.Kind,
	})

	if err := s.assertions.Revoke(ctx, assertion); err != nil {
		err = storeError("revoke assertion", err)
		logger.Error("auth service logout failed", err, nil)
		return errorResponse[models.LogoutResponse](err), err
	}

	logger.Info("auth service logout success", logger.Fields{"principalId": assertion.Principal.ID})
	return commons.SuccessResponse("logged out successfully", models.LogoutResponse{Revoked: true}), nil
}

func (s *AuthService) issue(ctx context.Context, principal domain.Principal, ttl time.Duration) (models.LoginResponse, error) {
	token, assertion, err := s.assertions.Issue(ctx, principal, ttl)
	if err != nil {
		return models.LoginResponse{}, storeError("issue assertion", err)
	}
	return models.LoginResponse{
		Token:     token,
		ExpiresAt: assertion.ExpiresAt.Format(time.RFC3339),
		Role:      string(principal.Role),
	}, nil
}

func (s *AuthService) checkPassword(hash, password string) error {
	ok, err := s.passwords.Verify(hash, password)
	if err != nil {
		return storeError("verify password", err)
	}
	if !ok {
		return &domain.AuthError{Reason: invalidCredentials}
	}
	return nil
}

func loginFormat(username, password string) error {
	if domain.ValidateUsername(username) != nil || len(password) < 8 {
		return &domain.ValidationError{Message: "invalid username or password format"}
	}
	return nil
}

func credentialLookupError(op string, err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return &domain.AuthError{Reason: invalidCredentials}
	}
	return storeError(op, err)
}
