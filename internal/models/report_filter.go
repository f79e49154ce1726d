package models

import "strings"

const (
	DefaultReportSortBy        = "dateReported"
	DefaultReportSortDirection = "desc"
)

// ReportSortKeys 是允许的排序字段白名单
var ReportSortKeys = map[string]bool{
	"dateReported": true,
	"createdAt":    true,
	"updatedAt":    true,
	"status":       true,
}

// ReportFilter holds the recognised listReports options. Zero values mean
// "not set".
type ReportFilter struct {
	Status        ReportStatus `form:"status"`
	UserID        string       `form:"userId"`
	SortBy        string       `form:"sortBy"`
	SortDirection string       `form:"sortDirection"`
	Limit         int          `form:"limit"`
	Page          int          `form:"page"`
}

// Normalized applies defaults: unknown sort keys fall back to dateReported,
// anything other than asc sorts descending, and page starts at 1.
func (f ReportFilter) Normalized() ReportFilter {
	if !ReportSortKeys[f.SortBy] {
		f.SortBy = DefaultReportSortBy
	}
	if strings.ToLower(f.SortDirection) == "asc" {
		f.SortDirection = "asc"
	} else {
		f.SortDirection = DefaultReportSortDirection
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Page < 1 {
		f.Page = 1
	}
	return f
}

// Offset 返回分页偏移量，仅在设置了 Limit 时有意义
func (f ReportFilter) Offset() int {
	if f.Limit <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
