package db

import (
	"context"

	"github.com/report_admin/configs"
	"github.com/report_admin/internal/repositories"
)

// Backend is an opened store together with its lifecycle hooks.
type Backend struct {
	Store *repositories.Store
	Ping  func(ctx context.Context) error
	Close func(ctx context.Context)
}

// OpenStore 根据 STORE_DRIVER 打开对应的存储后端
func OpenStore(ctx context.Context, cfg configs.StoreConfig) (*Backend, error) {
	if cfg.Driver == configs.DriverMongo {
		database, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store: repositories.NewMongoStore(database),
			Ping: func(ctx context.Context) error {
				return database.Client().Ping(ctx, nil)
			},
			Close: DisconnectMongo,
		}, nil
	}

	gdb, err := InitDB(cfg)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Store: repositories.NewGormStore(gdb),
		Ping: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func(context.Context) { CloseDB() },
	}, nil
}
