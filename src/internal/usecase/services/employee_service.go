package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/http/models"
	"github.com/api-sage/swift-payment-portal/src/internal/commons"
	"github.com/api-sage/swift-payment-portal/src/internal/domain"
	"github.com/api-sage/swift-payment-portal/src/internal/logger"
)

var employeeIDPattern = regexp.MustCompile(`^[A-Z0-9-]{3,20}$`)

// EmployeeService provisions staff accounts. It is driven from portalctl and
// has no HTTP surface.
type EmployeeService struct {
	employees domain.EmployeeRepository
	passwords domain.PasswordVerifier
}

func NewEmployeeService(employees domain.EmployeeRepository, passwords domain.PasswordVerifier) *EmployeeService {
	return &EmployeeService{employees: employees, passwords: passwords}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (commons.Response[models.EmployeeResponse], error) {
	logger.Info("employee service create employee request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	employee, err := s.newEmployee(req)
	if err != nil {
		logger.Error("employee service create employee validation failed", err, nil)
		return errorResponse[models.EmployeeResponse](err), err
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		err = storeError("hash password", err)
		logger.Error("employee service create employee hash failed", err, nil)
		return errorResponse[models.EmployeeResponse](err), err
	}
	employee.PasswordHash = hash

	created, err := s.employees.Create(ctx, employee)
	if err != nil {
		err = storeError("create employee", err)
		logger.Error("employee service create employee repository failed", err, logger.Fields{
			"employeeId": employee.EmployeeID,
		})
		return errorResponse[models.EmployeeResponse](err), err
	}

	logger.Info("employee service create employee success", logger.Fields{
		"employeeId": created.EmployeeID,
		"role":       created.Role,
	})

	return commons.SuccessResponse("employee created successfully", newEmployeeResponse(created)), nil
}

func (s *EmployeeService) SetActive(ctx context.Context, employeeID string, active bool) (commons.Response[models.EmployeeResponse], error) {
	employeeID = strings.ToUpper(strings.TrimSpace(employeeID))
	logger.Info("employee service set active request", logger.Fields{
		"employeeId": employeeID,
		"active":     active,
	})

	if err := s.employees.SetActive(ctx, employeeID, active); err != nil {
		err = notFound("employee", employeeID, "set employee active", err)
		logger.Error("employee service set active failed", err, logger.Fields{"employeeId": employeeID})
		return errorResponse[models.EmployeeResponse](err), err
	}

	return s.GetEmployee(ctx, employeeID)
}

func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID string) (commons.Response[models.EmployeeResponse], error) {
	employeeID = strings.ToUpper(strings.TrimSpace(employeeID))

	employee, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		err = notFound("employee", employeeID, "find employee", err)
		logger.Error("employee service get employee failed", err, logger.Fields{"employeeId": employeeID})
		return errorResponse[models.EmployeeResponse](err), err
	}

	return commons.SuccessResponse("employee fetched successfully", newEmployeeResponse(employee)), nil
}

func (s *EmployeeService) newEmployee(req models.CreateEmployeeRequest) (domain.Employee, error) {
	var errs domain.ValidationErrors

	employeeID := strings.ToUpper(strings.TrimSpace(req.EmployeeID))
	if !employeeIDPattern.MatchString(employeeID) {
		errs = append(errs, &domain.ValidationError{Field: "employeeId", Message: "must be 3-20 letters, digits or dashes"})
	}
	username := strings.TrimSpace(req.Username)
	if err := domain.ValidateUsername(username); err != nil {
		errs = append(errs, err.(*domain.ValidationError))
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		errs = append(errs, err.(*domain.ValidationError))
	}
	role, ok := domain.ParseEmployeeRole(req.Role)
	if !ok {
		errs = append(errs, &domain.ValidationError{Field: "role", Message: "must be verifier, supervisor or admin"})
	}

	if err := errs.OrNil(); err != nil {
		return domain.Employee{}, err
	}
	return domain.Employee{
		EmployeeID: employeeID,
		Username:   username,
		Role:       role,
		Active:     true,
	}, nil
}

func newEmployeeResponse(employee domain.Employee) models.EmployeeResponse {
	response := models.EmployeeResponse{
		ID:         employee.ID,
		EmployeeID: employee.EmployeeID,
		Username:   employee.Username,
		Role:       string(employee.Role),
		Active:     employee.Active,
		Actions:    len(employee.ActionLog),
		CreatedAt:  employee.CreatedAt.Format(time.RFC3339),
	}
	if employee.LastLogin != nil {
		lastLogin := employee.LastLogin.Format(time.RFC3339)
		response.LastLogin = &lastLogin
	}
	return response
}
