package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type attendanceDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       string             `bson:"date"`
	Status     attendance.Status  `bson:"status"`
}

func (d attendanceDocument) toEntity() attendance.Attendance {
	return attendance.Attendance{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		Date:       d.Date,
		Status:     d.Status,
	}
}

type attendanceRepositoryImpl struct {
	db      *database.DB
	metrics *metrics.Metrics
}

func NewAttendanceRepository(db *database.DB, m *metrics.Metrics) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db, metrics: m}
}

func attendanceFilterToBSON(filter attendance.AttendanceFilter) bson.M {
	query := bson.M{}
	if filter.EmployeeID != "" {
		query["employee_id"] = filter.EmployeeID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return query
}

func keyFilter(employeeID, date string) bson.M {
	return bson.M{"employee_id": employeeID, "date": date}
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	defer a.metrics.ObserveQuery("list_attendance", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := a.db.Attendance().Find(ctx, attendanceFilterToBSON(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	var docs []attendanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(docs))
	for _, doc := range docs {
		records = append(records, doc.toEntity())
	}
	return records, nil
}

// Count implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Count(ctx context.Context, filter attendance.AttendanceFilter) (int64, error) {
	defer a.metrics.ObserveQuery("count_attendance", time.Now())

	count, err := a.db.Attendance().CountDocuments(ctx, attendanceFilterToBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Attendance, error) {
	defer a.metrics.ObserveQuery("get_attendance", time.Now())

	var doc attendanceDocument
	err := a.db.Attendance().FindOne(ctx, keyFilter(employeeID, date)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance for %s on %s: %w", employeeID, date, err)
	}
	return doc.toEntity(), nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	defer a.metrics.ObserveQuery("insert_attendance", time.Now())

	doc := attendanceDocument{
		EmployeeID: newAttendance.EmployeeID,
		Date:       newAttendance.Date,
		Status:     newAttendance.Status,
	}

	result, err := a.db.Attendance().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w: %w", attendance.ErrDuplicateAttendance, err)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	var created attendanceDocument
	if err := a.db.Attendance().FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to read back attendance: %w", err)
	}
	return created.toEntity(), nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpdateStatus(ctx context.Context, employeeID, date string, status attendance.Status) (attendance.Attendance, error) {
	defer a.metrics.ObserveQuery("update_attendance", time.Now())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc attendanceDocument
	err := a.db.Attendance().FindOneAndUpdate(
		ctx,
		keyFilter(employeeID, date),
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance for %s on %s: %w", employeeID, date, err)
	}
	return doc.toEntity(), nil
}

// DeleteByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	defer a.metrics.ObserveQuery("delete_attendance", time.Now())

	result, err := a.db.Attendance().DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance for %s: %w", employeeID, err)
	}
	return result.DeletedCount, nil
}
