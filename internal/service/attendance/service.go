package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

const (
	// listAllLimit caps GET /api/attendance/.
	listAllLimit = 5000
	// listEmployeeLimit caps a single employee's history.
	listEmployeeLimit = 1000
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	metrics        *metrics.Metrics
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	m *metrics.Metrics,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		metrics:        m,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	records, err := a.attendanceRepo.List(ctx, attendance.AttendanceFilter{
		Date:  date,
		Limit: listAllLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return mapAttendancesToResponse(records), nil
}

// ListEmployeeAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEmployeeAttendance(ctx context.Context, employeeID, date string) ([]attendance.AttendanceResponse, error) {
	if err := a.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := a.attendanceRepo.List(ctx, attendance.AttendanceFilter{
		EmployeeID: employeeID,
		Date:       date,
		Limit:      listEmployeeLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee: %w", err)
	}
	return mapAttendancesToResponse(records), nil
}

// GetSummary implements attendance.AttendanceService.
// Absent is derived as total - present.
func (a *AttendanceServiceImpl) GetSummary(ctx context.Context, employeeID string) (attendance.AttendanceSummaryResponse, error) {
	if err := a.requireEmployee(ctx, employeeID); err != nil {
		return attendance.AttendanceSummaryResponse{}, err
	}

	total, err := a.attendanceRepo.Count(ctx, attendance.AttendanceFilter{EmployeeID: employeeID})
	if err != nil {
		return attendance.AttendanceSummaryResponse{}, fmt.Errorf("failed to count attendance: %w", err)
	}

	present, err := a.attendanceRepo.Count(ctx, attendance.AttendanceFilter{
		EmployeeID: employeeID,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceSummaryResponse{}, fmt.Errorf("failed to count present attendance: %w", err)
	}

	return attendance.AttendanceSummaryResponse{
		EmployeeID: employeeID,
		Total:      total,
		Present:    present,
		Absent:     total - present,
	}, nil
}

// MarkAttendance implements attendance.AttendanceService.
// This is a read-then-write upsert. When two callers race to insert the same
// (employee, date), the composite unique index rejects the loser and the
// error is returned unchanged.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	status, ok := attendance.ParseStatus(req.Status)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "status",
			Message: "Input should be 'Present' or 'Absent'",
		}}
	}

	if err := a.requireEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Date)
	switch {
	case err == nil:
		updated, err := a.attendanceRepo.UpdateStatus(ctx, req.EmployeeID, req.Date, status)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
		}
		a.metrics.RecordMark("updated")
		return mapAttendanceToResponse(updated), nil

	case errors.Is(err, attendance.ErrAttendanceNotFound):
		created, err := a.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: req.EmployeeID,
			Date:       req.Date,
			Status:     status,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrDuplicateAttendance) {
				slog.WarnContext(ctx, "Concurrent attendance insert lost the race", "employee_id", req.EmployeeID, "date", req.Date)
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
		}
		a.metrics.RecordMark("created")
		return mapAttendanceToResponse(created), nil

	default:
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}
}

func (a *AttendanceServiceImpl) requireEmployee(ctx context.Context, employeeID string) error {
	exists, err := a.employeeRepo.ExistsByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return employee.NotFoundError(employeeID)
	}
	return nil
}

func mapAttendancesToResponse(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, mapAttendanceToResponse(att))
	}
	return responses
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date,
		Status:     att.Status,
	}
}
