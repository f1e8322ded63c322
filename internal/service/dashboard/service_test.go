package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/dashboard"
	mocks "github.com/cmlabs-hris/hrms-lite-go/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, time.February, 23, 9, 30, 0, 0, time.Local)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	repo := mocks.NewDashboardRepository(t)
	svc := NewDashboardServiceWithClock(repo, fixedClock)

	repo.On("CountEmployees", mock.Anything).Return(int64(10), nil).Once()
	repo.On("CountAttendance", mock.Anything, "2026-02-23", attendance.StatusPresent).Return(int64(6), nil).Once()
	repo.On("CountAttendance", mock.Anything, "2026-02-23", attendance.StatusAbsent).Return(int64(1), nil).Once()
	repo.On("GetDepartmentCounts", mock.Anything).Return([]dashboard.DepartmentCount{
		{Department: "Eng", Count: 7},
		{Department: "Sales", Count: 3},
	}, nil).Once()

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &dashboard.DashboardResponse{
		TotalEmployees: 10,
		PresentToday:   6,
		AbsentToday:    1,
		NotMarkedToday: 3,
		Departments: []dashboard.DepartmentResponse{
			{Department: "Eng", Count: 7},
			{Department: "Sales", Count: 3},
		},
		Today: "2026-02-23",
	}, result)
}

func TestDashboardService_GetDashboard_NotMarkedNeverNegative(t *testing.T) {
	repo := mocks.NewDashboardRepository(t)
	svc := NewDashboardServiceWithClock(repo, fixedClock)

	// Attendance left behind by deleted employees outnumbers the current staff.
	repo.On("CountEmployees", mock.Anything).Return(int64(1), nil).Once()
	repo.On("CountAttendance", mock.Anything, "2026-02-23", attendance.StatusPresent).Return(int64(3), nil).Once()
	repo.On("CountAttendance", mock.Anything, "2026-02-23", attendance.StatusAbsent).Return(int64(2), nil).Once()
	repo.On("GetDepartmentCounts", mock.Anything).Return([]dashboard.DepartmentCount{{Department: "Eng", Count: 1}}, nil).Once()

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.NotMarkedToday)
}

func TestDashboardService_GetDashboard_Empty(t *testing.T) {
	repo := mocks.NewDashboardRepository(t)
	svc := NewDashboardServiceWithClock(repo, fixedClock)

	repo.On("CountEmployees", mock.Anything).Return(int64(0), nil).Once()
	repo.On("CountAttendance", mock.Anything, "2026-02-23", mock.Anything).Return(int64(0), nil).Twice()
	repo.On("GetDepartmentCounts", mock.Anything).Return([]dashboard.DepartmentCount{}, nil).Once()

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Departments)
	assert.Empty(t, result.Departments)
	assert.Equal(t, int64(0), result.NotMarkedToday)
}

func TestDashboardService_GetDashboard_RepositoryError(t *testing.T) {
	repo := mocks.NewDashboardRepository(t)
	svc := NewDashboardServiceWithClock(repo, fixedClock)

	repo.On("CountEmployees", mock.Anything).Return(int64(0), assert.AnError).Once()
	repo.On("CountAttendance", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
	repo.On("GetDepartmentCounts", mock.Anything).Return([]dashboard.DepartmentCount{}, nil).Maybe()

	_, err := svc.GetDashboard(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}
