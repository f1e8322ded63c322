package mocks

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/stretchr/testify/mock"
)

// AttendanceRepository is a mock of attendance.AttendanceRepository.
type AttendanceRepository struct {
	mock.Mock
}

func NewAttendanceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AttendanceRepository {
	m := &AttendanceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	args := m.Called(ctx, filter)
	records, _ := args.Get(0).([]attendance.Attendance)
	return records, args.Error(1)
}

func (m *AttendanceRepository) Count(ctx context.Context, filter attendance.AttendanceFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Attendance, error) {
	args := m.Called(ctx, employeeID, date)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	args := m.Called(ctx, newAttendance)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) UpdateStatus(ctx context.Context, employeeID, date string, status attendance.Status) (attendance.Attendance, error) {
	args := m.Called(ctx, employeeID, date, status)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

// AttendanceService is a mock of attendance.AttendanceService.
type AttendanceService struct {
	mock.Mock
}

func NewAttendanceService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AttendanceService {
	m := &AttendanceService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AttendanceService) ListAttendance(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, date)
	records, _ := args.Get(0).([]attendance.AttendanceResponse)
	return records, args.Error(1)
}

func (m *AttendanceService) ListEmployeeAttendance(ctx context.Context, employeeID, date string) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, employeeID, date)
	records, _ := args.Get(0).([]attendance.AttendanceResponse)
	return records, args.Error(1)
}

func (m *AttendanceService) GetSummary(ctx context.Context, employeeID string) (attendance.AttendanceSummaryResponse, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(attendance.AttendanceSummaryResponse), args.Error(1)
}

func (m *AttendanceService) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}
