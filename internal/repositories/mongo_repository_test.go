package repositories_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/report_admin/configs"
	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
	"github.com/report_admin/internal/testutil"
	"github.com/report_admin/pkg/db"
)

// newMongoStore needs a reachable server in MONGO_TEST_URI.
func newMongoStore(t *testing.T) *repositories.Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("Skipping Mongo test: MONGO_TEST_URI environment variable not set.")
	}

	ctx := context.Background()
	database, err := db.ConnectMongo(ctx, configs.StoreConfig{
		Driver:       configs.DriverMongo,
		MongoURI:     uri,
		MongoDB:      "report_admin_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		QueryTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Drop(context.Background())
		db.DisconnectMongo(context.Background())
	})
	return repositories.NewMongoStore(database)
}

func TestMongoStatusChangeAndComments(t *testing.T) {
	store := newMongoStore(t)
	ctx := context.Background()
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedReport(t, store, "r1", "u1", models.StatusActionTaken, testutil.Base)

	change := models.StatusChange{
		ReportID:    "r1",
		PriorStatus: models.StatusActionTaken,
		Entry:       models.StatusUpdate{Status: models.StatusResolved, Description: "done", Timestamp: testutil.Base.Add(time.Hour)},
		Award:       &models.IncentiveAward{UserID: "u1", Points: 25},
	}
	awarded, err := store.Reports.ApplyStatusChange(ctx, change)
	require.NoError(t, err)
	assert.True(t, awarded)

	_, err = store.Reports.ApplyStatusChange(ctx, change)
	assert.ErrorIs(t, err, repositories.ErrVersionConflict)

	user, err := store.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, user.Incentives)

	require.NoError(t, store.Reports.AppendComment(ctx, "r1", models.Comment{Author: "Dana", Content: "a", Timestamp: testutil.Base}))
	require.NoError(t, store.Reports.AppendComment(ctx, "r1", models.Comment{Author: "Dana", Content: "b", Timestamp: testutil.Base.Add(time.Minute)}))
	comments, err := store.Reports.ListComments(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "b", comments[0].Content)

	report, err := store.Reports.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, report.Status)
	assert.Len(t, report.StatusUpdates, 2)
	assert.Equal(t, int64(1), report.Version)

	assert.ErrorIs(t, store.Reports.AppendComment(ctx, "missing", models.Comment{Content: "x"}), repositories.ErrRecordNotFound)
}

func TestMongoListAndCounts(t *testing.T) {
	store := newMongoStore(t)
	ctx := context.Background()
	seedThree(t, store)

	reports, total, err := store.Reports.List(ctx, models.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"r3", "r2", "r1"}, ids(reports))

	reports, _, err = store.Reports.List(ctx, models.ReportFilter{Status: models.StatusPending, SortDirection: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r3"}, ids(reports))

	byStatus, err := store.Reports.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byStatus[models.StatusPending])

	byOwner, err := store.Reports.CountByOwner(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"u1": 2, "u2": 1}, byOwner)
}
