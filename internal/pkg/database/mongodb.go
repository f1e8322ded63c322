package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	EmployeesCollection  = "employees"
	AttendanceCollection = "attendance"
)

type DB struct {
	*mongo.Database
}

func NewMongoDB(ctx context.Context, uri, name string) (*DB, error) {
	opts := options.Client().ApplyURI(uri)

	// Connection pool settings
	opts.SetMaxPoolSize(25)
	opts.SetMinPoolSize(5)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &DB{Database: client.Database(name)}, nil
}

func (db *DB) Employees() *mongo.Collection {
	return db.Collection(EmployeesCollection)
}

func (db *DB) Attendance() *mongo.Collection {
	return db.Collection(AttendanceCollection)
}

// Ping checks that the primary is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.Client().Ping(ctx, readpref.Primary())
}

// Close releases the underlying client and its connection pool.
func (db *DB) Close(ctx context.Context) error {
	return db.Client().Disconnect(ctx)
}

// EnsureIndexes creates the lookup and uniqueness indexes both collections rely on.
// The unique indexes are what actually rejects racing duplicate inserts.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.Employees().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}

	_, err = db.Attendance().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}

	return nil
}
