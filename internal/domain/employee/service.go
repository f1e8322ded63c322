package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every employee ordered by full name
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee creates a new employee; employee_id and email must be unique
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by employee_id
	GetEmployee(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all of its attendance records
	DeleteEmployee(ctx context.Context, employeeID string) error
}
