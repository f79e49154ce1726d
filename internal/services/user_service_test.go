package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
	"github.com/report_admin/internal/services"
	"github.com/report_admin/internal/testutil"
)

func newUserService(store *repositories.Store) services.UserService {
	reports := services.NewReportService(store.Reports, store.Users, nil)
	return services.NewUserService(store.Users, store.Reports, reports)
}

func TestListUsersWithReportCounts(t *testing.T) {
	store := testutil.NewGormStore(t)
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedUser(t, store, "u2", "Bo", "bo@example.com", testutil.Base.Add(time.Hour))
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, testutil.Base)
	testutil.SeedReport(t, store, "r2", "u1", models.StatusResolved, testutil.Base)

	users, err := newUserService(store).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID)
	assert.Zero(t, users[0].ReportsCount)
	assert.Equal(t, "u1", users[1].ID)
	assert.Equal(t, int64(2), users[1].ReportsCount)
}

func TestSetUserActive(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	svc := newUserService(store)

	user, err := svc.SetUserActive(ctx, "u1", false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.True(t, user.UpdatedAt.After(testutil.Base))

	user, err = svc.SetUserActive(ctx, "u1", true)
	require.NoError(t, err)
	assert.True(t, user.IsActive)

	_, err = svc.SetUserActive(ctx, "nobody", true)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestDeleteUserKeepsReports(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, testutil.Base)
	svc := newUserService(store)

	require.NoError(t, svc.DeleteUser(ctx, "u1"))
	assert.ErrorIs(t, svc.DeleteUser(ctx, "u1"), services.ErrUserNotFound)

	_, err := svc.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	report, err := store.Reports.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "u1", report.UserID)
}

func TestListUserReports(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, testutil.Base)
	testutil.SeedReport(t, store, "r2", "u2", models.StatusPending, testutil.Base)
	svc := newUserService(store)

	reports, total, err := svc.ListUserReports(ctx, "u1", models.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reports, 1)
	assert.Equal(t, "r1", reports[0].ID)

	_, _, err = svc.ListUserReports(ctx, "u2", models.ReportFilter{})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
