package mongodb

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	testDB      *database.DB
	testMetrics = metrics.NewMetrics(prometheus.NewRegistry())
	setupErr    error
)

// TestMain connects to TEST_MONGODB_URL or, when unset, starts a throwaway
// MongoDB container. Repository tests skip when neither is available.
func TestMain(m *testing.M) {
	flag.Parse()
	ctx := context.Background()

	var container *tcmongo.MongoDBContainer
	if testing.Short() {
		setupErr = fmt.Errorf("skipped in -short mode")
	} else {
		uri := os.Getenv("TEST_MONGODB_URL")
		if uri == "" {
			container, setupErr = tcmongo.Run(ctx, "mongo:7")
			if setupErr == nil {
				uri, setupErr = container.ConnectionString(ctx)
			}
		}
		if setupErr == nil {
			dbName := fmt.Sprintf("hrms_lite_test_%d", time.Now().UnixNano())
			testDB, setupErr = database.NewMongoDB(ctx, uri, dbName)
		}
		if setupErr == nil {
			setupErr = testDB.EnsureIndexes(ctx)
		}
	}

	code := m.Run()

	if testDB != nil {
		_ = testDB.Drop(ctx)
		_ = testDB.Close(ctx)
	}
	if container != nil {
		_ = container.Terminate(ctx)
	}
	os.Exit(code)
}

// requireDB returns an empty database or skips the test.
func requireDB(t *testing.T) *database.DB {
	t.Helper()
	if testDB == nil {
		t.Skipf("mongodb not available: %v", setupErr)
	}

	ctx := context.Background()
	_, err := testDB.Employees().DeleteMany(ctx, bson.M{})
	require.NoError(t, err)
	_, err = testDB.Attendance().DeleteMany(ctx, bson.M{})
	require.NoError(t, err)

	return testDB
}
