package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

// listLimit caps how many employees a single listing returns.
const listLimit = 1000

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// CreateEmployee implements employee.EmployeeService.
// The existence checks only produce a friendly 409; the unique indexes are
// what rejects a concurrent duplicate, and that surfaces as an internal error.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee_id: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.EmployeeIDExistsError(req.EmployeeID)
	}

	// Emails are unique per normalized address.
	email := req.Email
	if normalized, ok := validator.NormalizeEmail(email); ok {
		email = normalized
	}

	exists, err = s.employeeRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.EmailExistsError(email)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      email,
		Department: req.Department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.InfoContext(ctx, "Created employee", "employee_id", created.EmployeeID, "id", created.ID)
	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.NotFoundError(employeeID)
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
// The employee delete and the attendance cascade are separate writes; a
// failure in between leaves orphaned attendance behind.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	deleted, err := s.employeeRepo.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if !deleted {
		return employee.NotFoundError(employeeID)
	}

	removed, err := s.attendanceRepo.DeleteByEmployeeID(ctx, employeeID)
	if err != nil {
		slog.ErrorContext(ctx, "Employee deleted but attendance cascade failed", "employee_id", employeeID, "error", err)
		return fmt.Errorf("failed to delete attendance for employee: %w", err)
	}

	slog.InfoContext(ctx, "Deleted employee", "employee_id", employeeID, "attendance_removed", removed)
	return nil
}

// mapEmployeeToResponse converts an Employee entity to EmployeeResponse
func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
	}
}
