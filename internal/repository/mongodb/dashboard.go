package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type dashboardRepositoryImpl struct {
	db      *database.DB
	metrics *metrics.Metrics
}

func NewDashboardRepository(db *database.DB, m *metrics.Metrics) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db, metrics: m}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	defer r.metrics.ObserveQuery("count_employees", time.Now())

	count, err := r.db.Employees().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountAttendance implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountAttendance(ctx context.Context, date string, status attendance.Status) (int64, error) {
	defer r.metrics.ObserveQuery("count_attendance_by_day", time.Now())

	count, err := r.db.Attendance().CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s attendance on %s: %w", status, date, err)
	}
	return count, nil
}

// GetDepartmentCounts implements dashboard.DashboardRepository.
// Order among departments with equal counts is whatever the server returns.
func (r *dashboardRepositoryImpl) GetDepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	defer r.metrics.ObserveQuery("department_breakdown", time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$department"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.db.Employees().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate departments: %w", err)
	}

	var rows []struct {
		Department string `bson:"_id"`
		Count      int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode department counts: %w", err)
	}

	counts := make([]dashboard.DepartmentCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, dashboard.DepartmentCount{Department: row.Department, Count: row.Count})
	}
	return counts, nil
}
