package models

// DashboardStats 是仪表盘统计数据
type DashboardStats struct {
	TotalReports int64                  `json:"totalReports"`
	TotalUsers   int64                  `json:"totalUsers"`
	ByStatus     map[ReportStatus]int64 `json:"byStatus"`
}

// NewDashboardStats returns stats with a zero entry for every status.
func NewDashboardStats() *DashboardStats {
	byStatus := make(map[ReportStatus]int64, len(AllReportStatuses()))
	for _, s := range AllReportStatuses() {
		byStatus[s] = 0
	}
	return &DashboardStats{ByStatus: byStatus}
}
