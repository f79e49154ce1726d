package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/report_admin/configs"
)

var mongoClient *mongo.Client

// ConnectMongo connects, pings and prepares indexes for the document store.
func ConnectMongo(ctx context.Context, cfg configs.StoreConfig) (*mongo.Database, error) {
	start := time.Now()
	log.WithFields(log.Fields{"uri": redactURI(cfg.MongoURI), "db": cfg.MongoDB}).Info("mongo: connecting")

	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(dctx, options.Client().ApplyURI(cfg.MongoURI).SetTimeout(cfg.QueryTimeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	database := client.Database(cfg.MongoDB)
	if err := createIndexes(dctx, database); err != nil {
		log.WithError(err).Warn("mongo: index creation warnings")
	}

	mongoClient = client
	log.Infof("mongo: connected ok in %s", time.Since(start).Round(time.Millisecond))
	return database, nil
}

// DisconnectMongo 关闭 Mongo 连接
func DisconnectMongo(ctx context.Context) {
	if mongoClient == nil {
		return
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.WithError(err).Error("mongo: disconnect failed")
	}
	mongoClient = nil
}

func createIndexes(ctx context.Context, database *mongo.Database) error {
	var errs []string

	reports := database.Collection("reports")
	for name, keys := range map[string]bson.D{
		"dateReported": {{Key: "dateReported", Value: -1}},
		"status":       {{Key: "status", Value: 1}},
		"userId":       {{Key: "userId", Value: 1}},
	} {
		if _, err := reports.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			errs = append(errs, "reports."+name+": "+err.Error())
		}
	}

	if _, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}); err != nil {
		errs = append(errs, "users.createdAt: "+err.Error())
	}

	if _, err := database.Collection("operators").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		errs = append(errs, "operators.username: "+err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func redactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}
