package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Store bundles the repositories of one backend.
type Store struct {
	Reports   ReportRepository
	Users     UserRepository
	Operators OperatorRepository
}

// NewGormStore 创建基于 GORM 的仓库集合（SQLite 或 PostgreSQL）
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Reports:   NewGormReportRepository(db),
		Users:     NewGormUserRepository(db),
		Operators: NewGormOperatorRepository(db),
	}
}

// NewMongoStore 创建基于 MongoDB 的仓库集合
func NewMongoStore(database *mongo.Database) *Store {
	return &Store{
		Reports:   NewMongoReportRepository(database),
		Users:     NewMongoUserRepository(database),
		Operators: NewMongoOperatorRepository(database),
	}
}
