package models

import (
	"time"

	"gorm.io/gorm"
)

// Location 是报告的位置：文字地址加经纬度
type Location struct {
	Address   string  `json:"address" bson:"address" gorm:"column:address;size:512"`
	Latitude  float64 `json:"latitude" bson:"latitude" gorm:"column:latitude"`
	Longitude float64 `json:"longitude" bson:"longitude" gorm:"column:longitude"`
}

// StatusUpdate is one immutable entry of a report's status history.
type StatusUpdate struct {
	ID          int64        `json:"-" bson:"-" gorm:"primaryKey;autoIncrement"`
	ReportID    string       `json:"-" bson:"-" gorm:"column:report_id;not null;index;size:64"`
	Status      ReportStatus `json:"status" bson:"status" gorm:"column:status;not null;size:50"`
	Description string       `json:"description" bson:"description" gorm:"column:description;type:text"`
	Timestamp   time.Time    `json:"timestamp" bson:"timestamp" gorm:"column:occurred_at;not null"`
}

// TableName 指定 StatusUpdate 对应的表名
func (StatusUpdate) TableName() string {
	return "report_status_updates"
}

// Comment is an operator note appended to a report. Comments are never edited or removed.
type Comment struct {
	ID        int64     `json:"-" bson:"-" gorm:"primaryKey;autoIncrement"`
	ReportID  string    `json:"-" bson:"-" gorm:"column:report_id;not null;index;size:64"`
	Author    string    `json:"author" bson:"author" gorm:"column:author;not null;size:255"`
	Content   string    `json:"content" bson:"content" gorm:"column:content;type:text;not null"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp" gorm:"column:occurred_at;not null"`
	UserID    string    `json:"userId" bson:"userId" gorm:"column:user_id;size:64"`
}

// TableName 指定 Comment 对应的表名
func (Comment) TableName() string {
	return "report_comments"
}

// Report 对应于 reports 集合/表。
// StatusUpdates 与 Comments 是报告聚合的一部分：Mongo 中为内嵌数组，关系库中为子表。
type Report struct {
	ID            string         `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	Description   string         `json:"description" bson:"description" gorm:"column:description;type:text"`
	Location      Location       `json:"location" bson:"location" gorm:"embedded;embeddedPrefix:location_"`
	ImageURL      string         `json:"imageUrl,omitempty" bson:"imageUrl,omitempty" gorm:"column:image_url;size:1024"`
	Status        ReportStatus   `json:"status" bson:"status" gorm:"column:status;not null;size:50;index"`
	StatusUpdates []StatusUpdate `json:"statusUpdates" bson:"statusUpdates" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	Comments      []Comment      `json:"comments" bson:"comments" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	UserID        string         `json:"userId,omitempty" bson:"userId,omitempty" gorm:"column:user_id;size:64;index"`
	Version       int64          `json:"version" bson:"version" gorm:"column:version;not null;default:0"`
	DateReported  time.Time      `json:"dateReported" bson:"dateReported" gorm:"column:date_reported;index"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName 指定 Report 对应的表名
func (Report) TableName() string {
	return "reports"
}

// Normalize fills timestamps the store did not return with now and replaces
// nil history/comment lists with empty ones.
func (r *Report) Normalize(now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	if r.DateReported.IsZero() {
		r.DateReported = r.CreatedAt
	}
	if r.StatusUpdates == nil {
		r.StatusUpdates = []StatusUpdate{}
	}
	if r.Comments == nil {
		r.Comments = []Comment{}
	}
	for i := range r.StatusUpdates {
		if r.StatusUpdates[i].Timestamp.IsZero() {
			r.StatusUpdates[i].Timestamp = now
		}
	}
	for i := range r.Comments {
		if r.Comments[i].Timestamp.IsZero() {
			r.Comments[i].Timestamp = now
		}
	}
}

// AfterFind is the gorm hook that applies Normalize to every loaded report.
func (r *Report) AfterFind(tx *gorm.DB) error {
	r.Normalize(time.Now())
	return nil
}

// ReportDetailResponse 是报告详情接口的响应，附带报告人摘要
type ReportDetailResponse struct {
	Report
	Reporter *UserSummary `json:"reporter,omitempty"`
}

// StatusChange describes one planned status transition. The store applies it
// only while the report still carries ExpectedVersion and PriorStatus.
type StatusChange struct {
	ReportID        string
	ExpectedVersion int64
	PriorStatus     ReportStatus
	Entry           StatusUpdate
	Award           *IncentiveAward
}

// IncentiveAward 表示随状态变更一起发放的积分
type IncentiveAward struct {
	UserID string
	Points int
}

// TransitionStatusPayload 定义了状态变更请求体
type TransitionStatusPayload struct {
	Status      ReportStatus `json:"status" binding:"required"`
	Description string       `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// AddCommentPayload 定义了添加评论请求体
type AddCommentPayload struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// TransitionResult 是状态变更接口的响应
type TransitionResult struct {
	Report           *Report `json:"report"`
	Changed          bool    `json:"changed"`
	IncentiveAwarded int     `json:"incentiveAwarded"`
}
