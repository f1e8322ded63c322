package employee

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/apperror"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDExists = errors.New("employee ID already exists")
	ErrEmailExists      = errors.New("email already registered")
)

// NotFoundError reports that no employee has the given employee_id.
func NotFoundError(employeeID string) error {
	return apperror.Wrap(ErrEmployeeNotFound, fmt.Sprintf("Employee '%s' not found.", employeeID))
}

func EmployeeIDExistsError(employeeID string) error {
	return apperror.Wrap(ErrEmployeeIDExists, fmt.Sprintf("Employee with ID '%s' already exists.", employeeID))
}

func EmailExistsError(email string) error {
	return apperror.Wrap(ErrEmailExists, fmt.Sprintf("Employee with email '%s' already exists.", email))
}
