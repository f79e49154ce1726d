package models

import (
	"time"

	"gorm.io/gorm"
)

// User 对应于 users 集合：提交报告的市民账号，由外部提交流程创建
type User struct {
	ID         string    `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	Name       string    `json:"name" bson:"name" gorm:"column:name;size:255"`
	Email      string    `json:"email" bson:"email" gorm:"column:email;size:255;index"`
	IsActive   bool      `json:"isActive" bson:"isActive" gorm:"column:is_active;not null"`
	Incentives int       `json:"incentives" bson:"incentives" gorm:"column:incentives;not null;default:0"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName 指定 User 结构体对应的数据库表名
func (User) TableName() string {
	return "users"
}

// Normalize fills missing timestamps with now.
func (u *User) Normalize(now time.Time) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
}

// AfterFind gorm hook
func (u *User) AfterFind(tx *gorm.DB) error {
	u.Normalize(time.Now())
	return nil
}

// Summary 返回报告详情页使用的报告人摘要
func (u User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Incentives: u.Incentives}
}

// UserSummary is the reporter block shown on a report detail.
type UserSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Incentives int    `json:"incentives"`
}

// UserListItem 是用户列表中的一项，附带该用户提交的报告数
type UserListItem struct {
	User
	ReportsCount int64 `json:"reportsCount"`
}

// SetUserActivePayload 定义了启用/停用用户的请求体
type SetUserActivePayload struct {
	Active *bool `json:"active" binding:"required"`
}
