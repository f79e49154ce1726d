package repositories

import (
	"context"
	"errors"

	"github.com/report_admin/internal/models"
	"gorm.io/gorm"
)

// ReportRepository 定义了报告数据仓库的接口
type ReportRepository interface {
	// Create 写入一条报告（报告通常由外部提交流程创建，这里用于导入和测试）
	Create(ctx context.Context, report *models.Report) error
	// List 按筛选条件返回报告及匹配总数
	List(ctx context.Context, filter models.ReportFilter) ([]models.Report, int64, error)
	// GetByID 返回包含状态历史和评论的完整报告
	GetByID(ctx context.Context, id string) (*models.Report, error)
	// ApplyStatusChange applies a planned transition atomically. It returns
	// ErrVersionConflict when the report no longer matches the plan, and
	// whether the incentive award reached an existing user.
	ApplyStatusChange(ctx context.Context, change models.StatusChange) (bool, error)
	// AppendComment 追加一条评论
	AppendComment(ctx context.Context, reportID string, comment models.Comment) error
	// ListComments 返回报告的评论，最新的在前
	ListComments(ctx context.Context, reportID string) ([]models.Comment, error)
	// Count 返回报告总数
	Count(ctx context.Context) (int64, error)
	// CountByStatus 返回每个状态的报告数
	CountByStatus(ctx context.Context) (map[models.ReportStatus]int64, error)
	// CountByOwner 返回每个用户提交的报告数
	CountByOwner(ctx context.Context) (map[string]int64, error)
}

// gormReportRepository 是 ReportRepository 的 GORM 实现
type gormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository 创建一个新的 gormReportRepository 实例
func NewGormReportRepository(db *gorm.DB) ReportRepository {
	return &gormReportRepository{db: db}
}

var reportSortColumns = map[string]string{
	"dateReported": "date_reported",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"status":       "status",
}

func preloadReportChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("StatusUpdates", func(db *gorm.DB) *gorm.DB {
			return db.Order("occurred_at ASC, id ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("occurred_at ASC, id ASC")
		})
}

// Create 写入报告及其已有的状态历史和评论
func (r *gormReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.Status == "" {
		report.Status = models.StatusPending
	}
	return r.db.WithContext(ctx).Create(report).Error
}

// List 从数据库中获取报告列表，支持状态/用户筛选、白名单排序和可选的数量限制
func (r *gormReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, int64, error) {
	filter = filter.Normalized()

	applyFilter := func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.UserID != "" {
			db = db.Where("user_id = ?", filter.UserID)
		}
		return db
	}

	var totalItems int64
	if err := r.db.WithContext(ctx).Model(&models.Report{}).Scopes(applyFilter).Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	column := reportSortColumns[filter.SortBy]
	query := r.db.WithContext(ctx).
		Scopes(applyFilter, preloadReportChildren).
		Order(column + " " + filter.SortDirection).
		Order("id " + filter.SortDirection)
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit)
	}

	reports := []models.Report{}
	if err := query.Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, totalItems, nil
}

// GetByID 根据ID查询报告
func (r *gormReportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).Scopes(preloadReportChildren).Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &report, nil
}

// ApplyStatusChange 在一个事务中完成：带版本条件的状态更新、追加历史、发放积分
func (r *gormReportRepository) ApplyStatusChange(ctx context.Context, change models.StatusChange) (bool, error) {
	awarded := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Report{}).
			Where("id = ? AND version = ? AND status = ?", change.ReportID, change.ExpectedVersion, change.PriorStatus).
			Updates(map[string]interface{}{
				"status":     change.Entry.Status,
				"version":    gorm.Expr("version + ?", 1),
				"updated_at": change.Entry.Timestamp,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Report{}).Where("id = ?", change.ReportID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrRecordNotFound
			}
			return ErrVersionConflict
		}

		entry := change.Entry
		entry.ID = 0
		entry.ReportID = change.ReportID
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if change.Award == nil {
			return nil
		}
		result = tx.Model(&models.User{}).
			Where("id = ?", change.Award.UserID).
			Updates(map[string]interface{}{
				"incentives": gorm.Expr("incentives + ?", change.Award.Points),
				"updated_at": change.Entry.Timestamp,
			})
		if result.Error != nil {
			return result.Error
		}
		awarded = result.RowsAffected == 1
		return nil
	})

	if err != nil {
		return false, err
	}
	return awarded, nil
}

// AppendComment 追加评论并刷新报告的更新时间
func (r *gormReportRepository) AppendComment(ctx context.Context, reportID string, comment models.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Report{}).Where("id = ?", reportID).Update("updated_at", comment.Timestamp)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRecordNotFound
		}
		comment.ID = 0
		comment.ReportID = reportID
		return tx.Create(&comment).Error
	})
}

// ListComments 返回报告的评论，按时间倒序
func (r *gormReportRepository) ListComments(ctx context.Context, reportID string) ([]models.Comment, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Report{}).Where("id = ?", reportID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrRecordNotFound
	}

	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("occurred_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

// Count 返回报告总数
func (r *gormReportRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Report{}).Count(&total).Error
	return total, err
}

// CountByStatus 按状态分组统计报告数
func (r *gormReportRepository) CountByStatus(ctx context.Context) (map[models.ReportStatus]int64, error) {
	var rows []struct {
		Status models.ReportStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Report{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ReportStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// CountByOwner 按用户分组统计报告数，没有归属用户的报告不计入
func (r *gormReportRepository) CountByOwner(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		UserID string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Report{}).
		Select("user_id, COUNT(*) AS total").
		Where("user_id IS NOT NULL AND user_id <> ''").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.Total
	}
	return counts, nil
}
