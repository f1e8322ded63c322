package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return NewDashboardServiceWithClock(repo, time.Now)
}

// NewDashboardServiceWithClock lets callers fix what "today" means.
func NewDashboardServiceWithClock(repo dashboard.DashboardRepository, now func() time.Time) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		now:                 now,
	}
}

// GetDashboard returns today's snapshot, running the four independent
// queries in parallel goroutines.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	today := s.now().Format("2006-01-02")

	var (
		totalEmployees int64
		presentToday   int64
		absentToday    int64
		departments    []dashboard.DepartmentCount
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountAttendance(gCtx, today, attendance.StatusPresent)
		if err != nil {
			return err
		}
		presentToday = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountAttendance(gCtx, today, attendance.StatusAbsent)
		if err != nil {
			return err
		}
		absentToday = count
		return nil
	})

	g.Go(func() error {
		counts, err := s.GetDepartmentCounts(gCtx)
		if err != nil {
			return err
		}
		departments = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	// Orphaned attendance from deleted employees can push marked above total.
	notMarked := max(0, totalEmployees-(presentToday+absentToday))

	deptResponses := make([]dashboard.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		deptResponses = append(deptResponses, dashboard.DepartmentResponse{
			Department: d.Department,
			Count:      d.Count,
		})
	}

	return &dashboard.DashboardResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   presentToday,
		AbsentToday:    absentToday,
		NotMarkedToday: notMarked,
		Departments:    deptResponses,
		Today:          today,
	}, nil
}
