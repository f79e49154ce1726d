package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/report_admin/configs"
	"github.com/report_admin/internal/models"
)

var gormDB *gorm.DB

// gormLogWriter 将 GORM 日志转发到 apex/log
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// NewGormLogger 返回一个输出到 apex/log 的 GORM 日志器
func NewGormLogger() logger.Interface {
	return logger.New(gormLogWriter{}, logger.Config{
		SlowThreshold:             time.Second, // 慢 SQL 阈值
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true, // 忽略ErrRecordNotFound（记录未找到）错误
		Colorful:                  false,
	})
}

// InitDB 按配置打开 SQLite 或 PostgreSQL 连接并迁移表结构
func InitDB(cfg configs.StoreConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case configs.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN must be set when STORE_DRIVER=%s", configs.DriverPostgres)
		}
		dialector = postgres.Open(cfg.DSN)
		log.Info("using PostgreSQL store")
	default:
		// 确保数据库文件所在的目录存在
		dbDir := filepath.Dir(cfg.SQLitePath)
		if _, err := os.Stat(dbDir); os.IsNotExist(err) {
			log.Infof("database directory %s does not exist, creating it", dbDir)
			if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
				return nil, fmt.Errorf("create database directory %s: %w", dbDir, mkErr)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
		log.WithField("path", cfg.SQLitePath).Info("using SQLite store")
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: NewGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB from GORM: %w", err)
	}
	// 设置数据库连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if cfg.Driver != configs.DriverPostgres {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database tables migrated successfully")

	gormDB = db
	return db, nil
}

// Migrate 自动迁移数据库表结构
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Operator{},
		&models.User{},
		&models.Report{},
		&models.StatusUpdate{},
		&models.Comment{},
	); err != nil {
		return fmt.Errorf("auto migrate database tables: %w", err)
	}
	return nil
}

// CloseDB 关闭 GORM 数据库连接 (通常在应用退出时调用)
func CloseDB() {
	if gormDB != nil {
		sqlDB, err := gormDB.DB()
		if err != nil {
			log.WithError(err).Error("error getting underlying sql.DB for closing")
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.WithError(err).Error("error closing database")
		}
		gormDB = nil
		log.Info("database connection closed")
	}
}
