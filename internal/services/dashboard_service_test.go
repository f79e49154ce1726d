package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/services"
	"github.com/report_admin/internal/testutil"
)

func TestComputeStatsEmptyStore(t *testing.T) {
	store := testutil.NewGormStore(t)

	stats, err := services.NewDashboardService(store.Reports, store.Users).ComputeStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalReports)
	assert.Zero(t, stats.TotalUsers)
	assert.Len(t, stats.ByStatus, 6)
	for _, s := range models.AllReportStatuses() {
		assert.Zero(t, stats.ByStatus[s], s)
	}
}

func TestComputeStatsCountsEveryStatus(t *testing.T) {
	store := testutil.NewGormStore(t)
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, testutil.Base)
	testutil.SeedReport(t, store, "r2", "u1", models.StatusPending, testutil.Base)
	testutil.SeedReport(t, store, "r3", "u1", models.StatusResolved, testutil.Base)
	testutil.SeedReport(t, store, "r4", "", "in_progress", testutil.Base)

	stats, err := services.NewDashboardService(store.Reports, store.Users).ComputeStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalReports)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.ByStatus[models.StatusPending])
	assert.Equal(t, int64(1), stats.ByStatus[models.StatusResolved])
	assert.Zero(t, stats.ByStatus[models.StatusRejected])
	assert.NotContains(t, stats.ByStatus, models.ReportStatus("in_progress"))
}
