package attendance

import "context"

type AttendanceRepository interface {
	// List returns matching records ordered by date, newest first.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	Count(ctx context.Context, filter AttendanceFilter) (int64, error)
	// GetByEmployeeAndDate returns ErrAttendanceNotFound when no record matches.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (Attendance, error)
	// Create returns ErrDuplicateAttendance if the (employee_id, date) key is taken.
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	// UpdateStatus overwrites the status and returns the updated record.
	UpdateStatus(ctx context.Context, employeeID, date string, status Status) (Attendance, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}
