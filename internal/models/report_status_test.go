package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportStatusIsValid(t *testing.T) {
	for _, s := range AllReportStatuses() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, ReportStatus("in_progress").IsValid())
	assert.False(t, ReportStatus("").IsValid())
	assert.False(t, ReportStatus("Resolved").IsValid())
}

func TestReportStatusLabel(t *testing.T) {
	assert.Equal(t, "Under Verification", StatusUnderVerification.Label())
	assert.Equal(t, "Action Taken", StatusActionTaken.Label())
	assert.Equal(t, "Pending", StatusPending.Label())
}

func TestReportStatusOptionsFollowWorkflowOrder(t *testing.T) {
	options := ReportStatusOptions()
	assert.Len(t, options, 6)
	assert.Equal(t, StatusPending, options[0].Value)
	assert.Equal(t, StatusRejected, options[5].Value)
	assert.Equal(t, "Resolved", options[4].Label)
}

func TestDefaultDescriptions(t *testing.T) {
	assert.Equal(t, "Report has been resolved successfully", StatusResolved.DefaultDescription())
	assert.Equal(t, "Report is under verification process", StatusUnderVerification.DefaultDescription())
	for _, s := range AllReportStatuses() {
		assert.NotEmpty(t, s.DefaultDescription())
	}
}

func TestReportNormalizeFillsMissingTimes(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := Report{
		StatusUpdates: []StatusUpdate{{Status: StatusPending}},
	}
	r.Normalize(now)

	assert.Equal(t, now, r.CreatedAt)
	assert.Equal(t, now, r.UpdatedAt)
	assert.Equal(t, now, r.DateReported)
	assert.Equal(t, now, r.StatusUpdates[0].Timestamp)
	assert.NotNil(t, r.Comments)
	assert.Empty(t, r.Comments)
}

func TestDashboardStatsZeroFilled(t *testing.T) {
	stats := NewDashboardStats()
	assert.Len(t, stats.ByStatus, len(AllReportStatuses()))
	for _, s := range AllReportStatuses() {
		n, ok := stats.ByStatus[s]
		assert.True(t, ok)
		assert.Zero(t, n)
	}
}
