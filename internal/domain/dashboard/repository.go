package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
)

// DepartmentCount is the number of employees sharing a department value
type DepartmentCount struct {
	Department string
	Count      int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployees returns the number of employee documents
	CountEmployees(ctx context.Context) (int64, error)

	// CountAttendance returns attendance records with the given date and status
	CountAttendance(ctx context.Context, date string, status attendance.Status) (int64, error)

	// GetDepartmentCounts groups employees by department, largest first
	GetDepartmentCounts(ctx context.Context) ([]DepartmentCount, error)
}
