package mocks

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/stretchr/testify/mock"
)

// EmployeeRepository is a mock of employee.EmployeeRepository.
type EmployeeRepository struct {
	mock.Mock
}

// NewEmployeeRepository creates a mock whose expectations are asserted on test cleanup.
func NewEmployeeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmployeeRepository {
	m := &EmployeeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EmployeeRepository) List(ctx context.Context, limit int64) ([]employee.Employee, error) {
	args := m.Called(ctx, limit)
	employees, _ := args.Get(0).([]employee.Employee)
	return employees, args.Error(1)
}

func (m *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

// EmployeeService is a mock of employee.EmployeeService.
type EmployeeService struct {
	mock.Mock
}

func NewEmployeeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmployeeService {
	m := &EmployeeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EmployeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]employee.EmployeeResponse)
	return employees, args.Error(1)
}

func (m *EmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}
