package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns today's attendance snapshot and the department breakdown
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
