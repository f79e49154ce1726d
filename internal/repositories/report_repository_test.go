package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
	"github.com/report_admin/internal/testutil"
)

func ids(reports []models.Report) []string {
	out := make([]string, 0, len(reports))
	for _, r := range reports {
		out = append(out, r.ID)
	}
	return out
}

func seedThree(t *testing.T, store *repositories.Store) {
	base := testutil.Base
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, base)
	testutil.SeedReport(t, store, "r2", "u1", models.StatusResolved, base.Add(time.Hour))
	testutil.SeedReport(t, store, "r3", "u2", models.StatusPending, base.Add(2*time.Hour))
}

func TestGormListDefaultsToNewestFirst(t *testing.T) {
	store := testutil.NewGormStore(t)
	seedThree(t, store)

	reports, total, err := store.Reports.List(context.Background(), models.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"r3", "r2", "r1"}, ids(reports))
}

func TestGormListFiltersAndSorts(t *testing.T) {
	store := testutil.NewGormStore(t)
	seedThree(t, store)
	ctx := context.Background()

	reports, total, err := store.Reports.List(ctx, models.ReportFilter{
		Status:        models.StatusPending,
		SortDirection: "asc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"r1", "r3"}, ids(reports))

	reports, total, err = store.Reports.List(ctx, models.ReportFilter{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"r2", "r1"}, ids(reports))

	reports, _, err = store.Reports.List(ctx, models.ReportFilter{SortBy: "bogus", SortDirection: "up"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r2", "r1"}, ids(reports))
}

func TestGormListLimitAndPage(t *testing.T) {
	store := testutil.NewGormStore(t)
	seedThree(t, store)

	reports, total, err := store.Reports.List(context.Background(), models.ReportFilter{Limit: 2, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"r1"}, ids(reports))
}

func TestGormListEmptyIsNotAnError(t *testing.T) {
	store := testutil.NewGormStore(t)

	reports, total, err := store.Reports.List(context.Background(), models.ReportFilter{Status: models.StatusRejected})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestGormGetByIDLoadsHistory(t *testing.T) {
	store := testutil.NewGormStore(t)
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, testutil.Base)

	report, err := store.Reports.GetByID(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, report.StatusUpdates, 1)
	assert.Equal(t, models.StatusPending, report.StatusUpdates[0].Status)
	assert.NotNil(t, report.Comments)

	_, err = store.Reports.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestGormApplyStatusChange(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedReport(t, store, "r1", "u1", models.StatusActionTaken, testutil.Base)

	at := testutil.Base.Add(24 * time.Hour)
	change := models.StatusChange{
		ReportID:        "r1",
		ExpectedVersion: 0,
		PriorStatus:     models.StatusActionTaken,
		Entry:           models.StatusUpdate{Status: models.StatusResolved, Description: "done", Timestamp: at},
		Award:           &models.IncentiveAward{UserID: "u1", Points: 25},
	}
	awarded, err := store.Reports.ApplyStatusChange(ctx, change)
	require.NoError(t, err)
	assert.True(t, awarded)

	report, err := store.Reports.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, report.Status)
	assert.Equal(t, int64(1), report.Version)
	require.Len(t, report.StatusUpdates, 2)
	assert.Equal(t, "done", report.StatusUpdates[1].Description)

	user, err := store.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, user.Incentives)

	// replaying the same plan must fail the version check and change nothing
	_, err = store.Reports.ApplyStatusChange(ctx, change)
	assert.ErrorIs(t, err, repositories.ErrVersionConflict)

	report, err = store.Reports.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, report.StatusUpdates, 2)
	user, err = store.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 25, user.Incentives)
}

func TestGormApplyStatusChangeMissingReport(t *testing.T) {
	store := testutil.NewGormStore(t)

	_, err := store.Reports.ApplyStatusChange(context.Background(), models.StatusChange{
		ReportID:    "nope",
		PriorStatus: models.StatusPending,
		Entry:       models.StatusUpdate{Status: models.StatusVerified, Timestamp: testutil.Base},
	})
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestGormApplyStatusChangeOrphanedOwner(t *testing.T) {
	store := testutil.NewGormStore(t)
	testutil.SeedReport(t, store, "r1", "ghost", models.StatusPending, testutil.Base)

	awarded, err := store.Reports.ApplyStatusChange(context.Background(), models.StatusChange{
		ReportID:    "r1",
		PriorStatus: models.StatusPending,
		Entry:       models.StatusUpdate{Status: models.StatusResolved, Timestamp: testutil.Base},
		Award:       &models.IncentiveAward{UserID: "ghost", Points: 25},
	})
	require.NoError(t, err)
	assert.False(t, awarded)
}

func TestGormComments(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, testutil.Base)

	first := models.Comment{Author: "Dana", Content: "checking", Timestamp: testutil.Base.Add(time.Minute), UserID: "op1"}
	second := models.Comment{Author: "Dana", Content: "crew sent", Timestamp: testutil.Base.Add(2 * time.Minute), UserID: "op1"}
	require.NoError(t, store.Reports.AppendComment(ctx, "r1", first))
	require.NoError(t, store.Reports.AppendComment(ctx, "r1", second))

	comments, err := store.Reports.ListComments(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "crew sent", comments[0].Content)
	assert.Equal(t, "checking", comments[1].Content)

	report, err := store.Reports.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, report.Comments, 2)
	assert.Equal(t, "checking", report.Comments[0].Content)

	err = store.Reports.AppendComment(ctx, "missing", first)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
	_, err = store.Reports.ListComments(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

func TestGormCounts(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	seedThree(t, store)
	testutil.SeedReport(t, store, "r4", "", models.StatusRejected, testutil.Base)

	total, err := store.Reports.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byStatus, err := store.Reports.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.ReportStatus]int64{
		models.StatusPending:  2,
		models.StatusResolved: 1,
		models.StatusRejected: 1,
	}, byStatus)

	byOwner, err := store.Reports.CountByOwner(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"u1": 2, "u2": 1}, byOwner)
}
