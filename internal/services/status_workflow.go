package services

import (
	"strings"
	"time"

	"github.com/report_admin/internal/models"
)

// PlanTransition computes the store change for moving report to next.
//
// Any status may follow any other. The boolean is false when next equals the
// current status; nothing is recorded then. An incentive award is attached
// only when the report enters resolved from a different status and has an
// owner, so the award happens once per entry into resolved.
func PlanTransition(report *models.Report, next models.ReportStatus, description string, now time.Time) (models.StatusChange, bool, error) {
	if !next.IsValid() {
		return models.StatusChange{}, false, ErrInvalidStatus
	}
	if report.Status == next {
		return models.StatusChange{}, false, nil
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = next.DefaultDescription()
	}

	change := models.StatusChange{
		ReportID:        report.ID,
		ExpectedVersion: report.Version,
		PriorStatus:     report.Status,
		Entry: models.StatusUpdate{
			Status:      next,
			Description: description,
			Timestamp:   now,
		},
	}
	if next == models.StatusResolved && report.Status != models.StatusResolved && report.UserID != "" {
		change.Award = &models.IncentiveAward{
			UserID: report.UserID,
			Points: models.IncentivePointsPerResolution,
		}
	}
	return change, true, nil
}
