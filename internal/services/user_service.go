package services

import (
	"context"
	"errors"
	"time"

	"github.com/apex/log"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/repositories"
)

// UserService 定义了市民用户管理服务的接口
type UserService interface {
	// ListUsers 返回全部用户（按创建时间倒序）及各自的报告数
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUserReports(ctx context.Context, id string, filter models.ReportFilter) ([]models.Report, int64, error)
	// DeleteUser 永久删除用户；其报告和评论中的引用保留
	DeleteUser(ctx context.Context, id string) error
	SetUserActive(ctx context.Context, id string, active bool) (*models.User, error)
}

type userService struct {
	users   repositories.UserRepository
	reports ReportService
	counts  repositories.ReportRepository
	now     func() time.Time
}

// NewUserService 创建一个新的 userService 实例
func NewUserService(users repositories.UserRepository, reportRepo repositories.ReportRepository, reports ReportService) UserService {
	return &userService{
		users:   users,
		reports: reports,
		counts:  reportRepo,
		now:     time.Now,
	}
}

// ListUsers 获取用户列表
func (s *userService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	counts, err := s.counts.CountByOwner(ctx)
	if err != nil {
		return nil, storeError("count reports by owner", err)
	}

	items := make([]models.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, models.UserListItem{User: u, ReportsCount: counts[u.ID]})
	}
	return items, nil
}

// GetUser 根据ID获取用户
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("get user", err)
	}
	return user, nil
}

// ListUserReports 获取指定用户提交的报告
func (s *userService) ListUserReports(ctx context.Context, id string, filter models.ReportFilter) ([]models.Report, int64, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, 0, err
	}
	filter.UserID = id
	return s.reports.ListReports(ctx, filter)
}

// DeleteUser 删除用户
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return storeError("delete user", err)
	}
	log.WithField("user", id).Info("user deleted")
	return nil
}

// SetUserActive 启用或停用用户
func (s *userService) SetUserActive(ctx context.Context, id string, active bool) (*models.User, error) {
	if err := s.users.SetActive(ctx, id, active, s.now()); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("set user active", err)
	}
	log.WithFields(log.Fields{"user": id, "active": active}).Info("user active flag changed")
	return s.GetUser(ctx, id)
}
