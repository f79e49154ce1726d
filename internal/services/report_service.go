package services

import (
	"context"
	"errors"
	"time"

	"github.com/apex/log"

	"github.com/report_admin/internal/metrics"
	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
	"github.com/report_admin/pkg/utils"
)

// Notifier is told about reports whose owner just earned an incentive.
type Notifier interface {
	NotifyResolved(ctx context.Context, user models.User, report models.Report, points int) error
}

// ReportService 定义了报告服务的接口
type ReportService interface {
	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, int64, error)
	GetReport(ctx context.Context, id string) (*models.Report, error)
	// GetReportDetail 返回报告及其报告人摘要（报告人已删除时不含摘要）
	GetReportDetail(ctx context.Context, id string) (*models.ReportDetailResponse, error)
	TransitionStatus(ctx context.Context, id string, next models.ReportStatus, description string) (*models.TransitionResult, error)
	// AddComment 追加评论；空白内容返回 ErrEmptyComment 且不写入
	AddComment(ctx context.Context, id string, actor models.Actor, content string) (*models.Comment, error)
	ListComments(ctx context.Context, id string) ([]models.Comment, error)
}

// reportService 是 ReportService 的实现
type reportService struct {
	reports  repositories.ReportRepository
	users    repositories.UserRepository
	notifier Notifier
	now      func() time.Time
}

// NewReportService 创建一个新的 reportService 实例，notifier 可以为 nil
func NewReportService(reports repositories.ReportRepository, users repositories.UserRepository, notifier Notifier) ReportService {
	return &reportService{
		reports:  reports,
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

// ListReports 校验筛选条件后查询报告列表
func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, int64, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, ErrInvalidFilter
	}
	if filter.Limit < 0 || filter.Page < 0 {
		return nil, 0, ErrInvalidFilter
	}

	reports, total, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, 0, storeError("list reports", err)
	}
	return reports, total, nil
}

// GetReport 根据ID获取报告
func (s *reportService) GetReport(ctx context.Context, id string) (*models.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, storeError("get report", err)
	}
	return report, nil
}

// GetReportDetail 获取报告详情
func (s *reportService) GetReportDetail(ctx context.Context, id string) (*models.ReportDetailResponse, error) {
	report, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.ReportDetailResponse{Report: *report}
	if report.UserID == "" {
		return detail, nil
	}
	user, err := s.users.GetByID(ctx, report.UserID)
	switch {
	case err == nil:
		detail.Reporter = user.Summary()
	case errors.Is(err, repositories.ErrRecordNotFound):
		// orphaned reference, the owner was deleted
	default:
		return nil, storeError("get report owner", err)
	}
	return detail, nil
}

// TransitionStatus 执行状态变更：校验、规划、带版本条件写入、积分与通知
func (s *reportService) TransitionStatus(ctx context.Context, id string, next models.ReportStatus, description string) (*models.TransitionResult, error) {
	report, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	change, changed, err := PlanTransition(report, next, description, s.now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return &models.TransitionResult{Report: report, Changed: false}, nil
	}

	awarded, err := s.reports.ApplyStatusChange(ctx, change)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrRecordNotFound):
			return nil, ErrReportNotFound
		case errors.Is(err, repositories.ErrVersionConflict):
			metrics.StatusConflictsTotal.Inc()
			return nil, ErrReportConflict
		default:
			return nil, storeError("apply status change", err)
		}
	}

	logger := log.WithFields(log.Fields{
		"report": id,
		"from":   change.PriorStatus,
		"to":     next,
	})
	logger.Info("report status changed")
	metrics.StatusTransitionsTotal.WithLabelValues(string(next)).Inc()

	result := &models.TransitionResult{Changed: true}
	if change.Award != nil {
		if awarded {
			result.IncentiveAwarded = change.Award.Points
			metrics.IncentivePointsAwardedTotal.Add(float64(change.Award.Points))
			logger.WithField("user", change.Award.UserID).Infof("awarded %d incentive points", change.Award.Points)
		} else {
			logger.WithField("user", change.Award.UserID).Warn("report owner no longer exists, incentive skipped")
		}
	}

	updated, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Report = updated

	if result.IncentiveAwarded > 0 {
		s.notifyResolved(ctx, *updated, result.IncentiveAwarded)
	}
	return result, nil
}

func (s *reportService) notifyResolved(ctx context.Context, report models.Report, points int) {
	if s.notifier == nil {
		return
	}
	user, err := s.users.GetByID(ctx, report.UserID)
	if err != nil {
		log.WithError(err).WithField("user", report.UserID).Warn("cannot load report owner for notification")
		return
	}
	if err := s.notifier.NotifyResolved(ctx, *user, report, points); err != nil {
		log.WithError(err).WithField("user", user.ID).Warn("resolution notification failed")
	}
}

// AddComment 以当前操作员身份追加评论
func (s *reportService) AddComment(ctx context.Context, id string, actor models.Actor, content string) (*models.Comment, error) {
	if utils.IsBlank(content) {
		return nil, ErrEmptyComment
	}
	comment := models.Comment{
		Author:    actor.Identity(),
		Content:   content,
		Timestamp: s.now(),
		UserID:    actor.OperatorID,
	}
	if err := s.reports.AppendComment(ctx, id, comment); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, storeError("append comment", err)
	}
	return &comment, nil
}

// ListComments 返回报告评论，最新的在前
func (s *reportService) ListComments(ctx context.Context, id string) ([]models.Comment, error) {
	comments, err := s.reports.ListComments(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, storeError("list comments", err)
	}
	return comments, nil
}
