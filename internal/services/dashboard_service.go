package services

import (
	"context"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
)

// DashboardService 定义了仪表盘统计服务的接口
type DashboardService interface {
	ComputeStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	reports repositories.ReportRepository
	users   repositories.UserRepository
}

// NewDashboardService 创建一个新的 dashboardService 实例
func NewDashboardService(reports repositories.ReportRepository, users repositories.UserRepository) DashboardService {
	return &dashboardService{reports: reports, users: users}
}

// ComputeStats counts reports and users on every call; nothing is cached.
// Statuses outside the known set only contribute to the report total.
func (s *dashboardService) ComputeStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := models.NewDashboardStats()

	totalReports, err := s.reports.Count(ctx)
	if err != nil {
		return nil, storeError("count reports", err)
	}
	byStatus, err := s.reports.CountByStatus(ctx)
	if err != nil {
		return nil, storeError("count reports by status", err)
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, storeError("count users", err)
	}

	stats.TotalReports = totalReports
	stats.TotalUsers = totalUsers
	for status, n := range byStatus {
		if status.IsValid() {
			stats.ByStatus[status] = n
		}
	}
	return stats, nil
}
