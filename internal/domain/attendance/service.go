package attendance

import "context"

type AttendanceService interface {
	// ListAttendance returns all records, optionally for one date
	ListAttendance(ctx context.Context, date string) ([]AttendanceResponse, error)

	// ListEmployeeAttendance returns one employee's records, optionally for one date
	ListEmployeeAttendance(ctx context.Context, employeeID, date string) ([]AttendanceResponse, error)

	// GetSummary returns total, present and absent counts for one employee
	GetSummary(ctx context.Context, employeeID string) (AttendanceSummaryResponse, error)

	// MarkAttendance creates the record for (employee, date) or overwrites its status
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
}
