package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/report_admin/internal/models"
	"gorm.io/gorm"
)

// OperatorRepository 定义了管理员账号数据仓库的接口
type OperatorRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Operator, error)
	// Save 按用户名创建或更新管理员账号
	Save(ctx context.Context, operator *models.Operator) error
}

type gormOperatorRepository struct {
	db *gorm.DB
}

// NewGormOperatorRepository 创建一个新的 gormOperatorRepository 实例
func NewGormOperatorRepository(db *gorm.DB) OperatorRepository {
	return &gormOperatorRepository{db: db}
}

// GetByUsername 根据用户名查询管理员
func (r *gormOperatorRepository) GetByUsername(ctx context.Context, username string) (*models.Operator, error) {
	var operator models.Operator
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&operator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &operator, nil
}

// Save 已存在同名账号时更新其资料和密码哈希，否则创建
func (r *gormOperatorRepository) Save(ctx context.Context, operator *models.Operator) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Operator
		err := tx.Where("username = ?", operator.Username).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if operator.ID == "" {
				operator.ID = uuid.NewString()
			}
			return tx.Create(operator).Error
		}
		if err != nil {
			return err
		}
		operator.ID = existing.ID
		operator.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Updates(map[string]interface{}{
			"display_name":  operator.DisplayName,
			"email":         operator.Email,
			"password_hash": operator.PasswordHash,
			"role":          operator.Role,
		}).Error
	})
}
