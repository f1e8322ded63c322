package mocks

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/dashboard"
	"github.com/stretchr/testify/mock"
)

// DashboardRepository is a mock of dashboard.DashboardRepository.
type DashboardRepository struct {
	mock.Mock
}

func NewDashboardRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *DashboardRepository {
	m := &DashboardRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DashboardRepository) CountAttendance(ctx context.Context, date string, status attendance.Status) (int64, error) {
	args := m.Called(ctx, date, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DashboardRepository) GetDepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]dashboard.DepartmentCount)
	return counts, args.Error(1)
}

// DashboardService is a mock of dashboard.DashboardService.
type DashboardService struct {
	mock.Mock
}

func NewDashboardService(t interface {
	mock.TestingT
	Cleanup(func())
}) *DashboardService {
	m := &DashboardService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DashboardService) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dashboard.DashboardResponse)
	return resp, args.Error(1)
}
