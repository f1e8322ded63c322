package employee

import "context"

type EmployeeRepository interface {
	// List returns up to limit employees sorted by full name.
	List(ctx context.Context, limit int64) ([]Employee, error)
	// GetByEmployeeID returns ErrEmployeeNotFound when no document matches.
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create inserts the employee and returns it as read back from the store.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// DeleteByEmployeeID reports whether a document was removed.
	DeleteByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}
