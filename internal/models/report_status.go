package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReportStatus 是报告在处理流程中的状态
type ReportStatus string

const (
	StatusPending           ReportStatus = "pending"
	StatusUnderVerification ReportStatus = "under_verification"
	StatusVerified          ReportStatus = "verified"
	StatusActionTaken       ReportStatus = "action_taken"
	StatusResolved          ReportStatus = "resolved"
	StatusRejected          ReportStatus = "rejected"
)

// IncentivePointsPerResolution is credited to the reporting user each time
// one of their reports enters the resolved status.
const IncentivePointsPerResolution = 25

// AllReportStatuses returns every status in workflow order, rejected last.
func AllReportStatuses() []ReportStatus {
	return []ReportStatus{
		StatusPending,
		StatusUnderVerification,
		StatusVerified,
		StatusActionTaken,
		StatusResolved,
		StatusRejected,
	}
}

// IsValid reports whether s is one of the known statuses.
func (s ReportStatus) IsValid() bool {
	for _, known := range AllReportStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// DefaultDescription is the history text used when the operator gives none.
func (s ReportStatus) DefaultDescription() string {
	switch s {
	case StatusPending:
		return "Report is pending review"
	case StatusUnderVerification:
		return "Report is under verification process"
	case StatusVerified:
		return "Report has been verified"
	case StatusActionTaken:
		return "Action has been taken on the report"
	case StatusResolved:
		return "Report has been resolved successfully"
	case StatusRejected:
		return "Report has been rejected"
	default:
		return "Status updated to " + string(s)
	}
}

// Label returns a display title such as "Under Verification".
func (s ReportStatus) Label() string {
	// cases.Caser keeps state, so one is built per call
	return cases.Title(language.English).String(strings.ReplaceAll(string(s), "_", " "))
}

// StatusOption 用于前端状态下拉框
type StatusOption struct {
	Value ReportStatus `json:"value"`
	Label string       `json:"label"`
}

// ReportStatusOptions lists every status with its display label.
func ReportStatusOptions() []StatusOption {
	statuses := AllReportStatuses()
	options := make([]StatusOption, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, StatusOption{Value: s, Label: s.Label()})
	}
	return options
}
