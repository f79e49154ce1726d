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

func TestGormUserListNewestFirst(t *testing.T) {
	store := testutil.NewGormStore(t)
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedUser(t, store, "u2", "Bo", "bo@example.com", testutil.Base.Add(time.Hour))

	users, err := store.Users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID)
	assert.Equal(t, "u1", users[1].ID)
}

func TestGormUserSetActiveAndDelete(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()
	testutil.SeedUser(t, store, "u1", "Ada", "ada@example.com", testutil.Base)
	testutil.SeedReport(t, store, "r1", "u1", models.StatusPending, testutil.Base)

	at := testutil.Base.Add(48 * time.Hour)
	require.NoError(t, store.Users.SetActive(ctx, "u1", false, at))
	user, err := store.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.True(t, user.UpdatedAt.Equal(at))

	assert.ErrorIs(t, store.Users.SetActive(ctx, "nobody", true, at), repositories.ErrRecordNotFound)

	require.NoError(t, store.Users.Delete(ctx, "u1"))
	_, err = store.Users.GetByID(ctx, "u1")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
	assert.ErrorIs(t, store.Users.Delete(ctx, "u1"), repositories.ErrRecordNotFound)

	// reports keep their owner reference
	report, err := store.Reports.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "u1", report.UserID)
}

func TestGormOperatorSaveUpserts(t *testing.T) {
	store := testutil.NewGormStore(t)
	ctx := context.Background()

	op := &models.Operator{Username: "dana", DisplayName: "Dana", PasswordHash: "h1", Role: "admin"}
	require.NoError(t, store.Operators.Save(ctx, op))
	require.NotEmpty(t, op.ID)
	firstID := op.ID

	again := &models.Operator{Username: "dana", DisplayName: "Dana S.", PasswordHash: "h2", Role: "admin"}
	require.NoError(t, store.Operators.Save(ctx, again))
	assert.Equal(t, firstID, again.ID)

	loaded, err := store.Operators.GetByUsername(ctx, "dana")
	require.NoError(t, err)
	assert.Equal(t, "Dana S.", loaded.DisplayName)
	assert.Equal(t, "h2", loaded.PasswordHash)

	_, err = store.Operators.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}
