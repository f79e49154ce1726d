package models

import "time"

// Operator 对应于 operators 表：控制台管理员账号
type Operator struct {
	ID           string    `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	Username     string    `json:"username" bson:"username" gorm:"column:username;unique;not null;size:255"`
	DisplayName  string    `json:"displayName" bson:"displayName" gorm:"column:display_name;size:255"`
	Email        string    `json:"email" bson:"email" gorm:"column:email;size:255"`
	PasswordHash string    `json:"-" bson:"passwordHash" gorm:"column:password_hash;not null;size:255"` // 密码哈希不通过JSON暴露
	Role         string    `json:"role" bson:"role" gorm:"column:role;not null;default:'admin';size:50"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName 指定 Operator 结构体对应的数据库表名
func (Operator) TableName() string {
	return "operators"
}

// Actor is the operator performing a request, taken from the session token
// and passed explicitly into service calls.
type Actor struct {
	OperatorID  string
	Username    string
	DisplayName string
	Email       string
}

// Identity is the author name recorded on comments: display name, then
// email, then username.
func (a Actor) Identity() string {
	switch {
	case a.DisplayName != "":
		return a.DisplayName
	case a.Email != "":
		return a.Email
	default:
		return a.Username
	}
}
