// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
	"github.com/report_admin/pkg/db"
)

// NewGormDB returns a migrated in-memory SQLite database private to t.
func NewGormDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: db.NewGormLogger()})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

// NewGormStore returns repositories backed by a fresh in-memory database.
func NewGormStore(t *testing.T) *repositories.Store {
	t.Helper()
	return repositories.NewGormStore(NewGormDB(t))
}

// Base is a fixed reference time for seeded records.
var Base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// SeedUser stores a citizen user.
func SeedUser(t *testing.T, store *repositories.Store, id, name, email string, createdAt time.Time) *models.User {
	t.Helper()
	user := &models.User{
		ID:        id,
		Name:      name,
		Email:     email,
		IsActive:  true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

// SeedReport stores a report with its initial pending history entry.
func SeedReport(t *testing.T, store *repositories.Store, id, userID string, status models.ReportStatus, reportedAt time.Time) *models.Report {
	t.Helper()
	report := &models.Report{
		ID:          id,
		Description: "Overflowing bin at " + id,
		Location:    models.Location{Address: "1 Main St", Latitude: 12.97, Longitude: 77.59},
		Status:      status,
		UserID:      userID,
		StatusUpdates: []models.StatusUpdate{{
			Status:      models.StatusPending,
			Description: models.StatusPending.DefaultDescription(),
			Timestamp:   reportedAt,
		}},
		DateReported: reportedAt,
		CreatedAt:    reportedAt,
		UpdatedAt:    reportedAt,
	}
	require.NoError(t, store.Reports.Create(context.Background(), report))
	return report
}
