package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type employeeDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	FullName   string             `bson:"full_name"`
	Email      string             `bson:"email"`
	Department string             `bson:"department"`
}

func (d employeeDocument) toEntity() employee.Employee {
	return employee.Employee{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		FullName:   d.FullName,
		Email:      d.Email,
		Department: d.Department,
	}
}

type employeeRepositoryImpl struct {
	db      *database.DB
	metrics *metrics.Metrics
}

func NewEmployeeRepository(db *database.DB, m *metrics.Metrics) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db, metrics: m}
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, limit int64) ([]employee.Employee, error) {
	defer e.metrics.ObserveQuery("list_employees", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := e.db.Employees().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var docs []employeeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, doc.toEntity())
	}
	return employees, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	defer e.metrics.ObserveQuery("get_employee", time.Now())

	var doc employeeDocument
	err := e.db.Employees().FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return doc.toEntity(), nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	defer e.metrics.ObserveQuery("exists_employee_id", time.Now())
	return e.exists(ctx, bson.M{"employee_id": employeeID})
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer e.metrics.ObserveQuery("exists_employee_email", time.Now())
	return e.exists(ctx, bson.M{"email": email})
}

func (e *employeeRepositoryImpl) exists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := e.db.Employees().CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return count > 0, nil
}

// Create implements employee.EmployeeRepository.
// A duplicate employee_id or email that slipped past the service checks is
// rejected by the unique indexes and returned as a plain wrapped error.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	defer e.metrics.ObserveQuery("insert_employee", time.Now())

	doc := employeeDocument{
		EmployeeID: newEmployee.EmployeeID,
		FullName:   newEmployee.FullName,
		Email:      newEmployee.Email,
		Department: newEmployee.Department,
	}

	result, err := e.db.Employees().InsertOne(ctx, doc)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	var created employeeDocument
	if err := e.db.Employees().FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to read back employee: %w", err)
	}
	return created.toEntity(), nil
}

// DeleteByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	defer e.metrics.ObserveQuery("delete_employee", time.Now())

	result, err := e.db.Employees().DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return false, fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	return result.DeletedCount > 0, nil
}
