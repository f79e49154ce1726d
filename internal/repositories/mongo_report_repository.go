package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/report_admin/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	reportsCollection   = "reports"
	usersCollection     = "users"
	operatorsCollection = "operators"
)

// mongoReportRepository 是 ReportRepository 的 MongoDB 实现。
// 状态历史和评论以内嵌数组保存在报告文档中。
type mongoReportRepository struct {
	reports *mongo.Collection
	users   *mongo.Collection
}

// NewMongoReportRepository 创建一个新的 mongoReportRepository 实例
func NewMongoReportRepository(database *mongo.Database) ReportRepository {
	return &mongoReportRepository{
		reports: database.Collection(reportsCollection),
		users:   database.Collection(usersCollection),
	}
}

var reportSortFields = map[string]string{
	"dateReported": "dateReported",
	"createdAt":    "createdAt",
	"updatedAt":    "updatedAt",
	"status":       "status",
}

func reportListFilter(filter models.ReportFilter) bson.M {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	return query
}

// Create 写入报告文档
func (r *mongoReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.Status == "" {
		report.Status = models.StatusPending
	}
	now := time.Now()
	report.Normalize(now)
	_, err := r.reports.InsertOne(ctx, report)
	return err
}

// List 按筛选条件查询报告
func (r *mongoReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]models.Report, int64, error) {
	filter = filter.Normalized()
	query := reportListFilter(filter)

	totalItems, err := r.reports.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	direction := -1
	if filter.SortDirection == "asc" {
		direction = 1
	}
	opts := options.Find().SetSort(bson.D{
		{Key: reportSortFields[filter.SortBy], Value: direction},
		{Key: "_id", Value: direction},
	})
	if filter.Limit > 0 {
		opts.SetSkip(int64(filter.Offset())).SetLimit(int64(filter.Limit))
	}

	cursor, err := r.reports.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, err
	}
	now := time.Now()
	for i := range reports {
		reports[i].Normalize(now)
	}
	return reports, totalItems, nil
}

// GetByID 根据ID查询报告
func (r *mongoReportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	if err := r.reports.FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	report.Normalize(time.Now())
	return &report, nil
}

// ApplyStatusChange 使用带版本和原状态条件的单文档更新完成状态变更。
// 积分发放在报告更新成功之后进行；报告条件更新保证每次进入 resolved 只发放一次。
func (r *mongoReportRepository) ApplyStatusChange(ctx context.Context, change models.StatusChange) (bool, error) {
	filter := bson.M{
		"_id":    change.ReportID,
		"status": change.PriorStatus,
	}
	if change.ExpectedVersion == 0 {
		// documents written by the submission flow may not carry a version yet
		filter["version"] = bson.M{"$in": bson.A{0, nil}}
	} else {
		filter["version"] = change.ExpectedVersion
	}

	update := bson.M{
		"$set":  bson.M{"status": change.Entry.Status, "updatedAt": change.Entry.Timestamp},
		"$inc":  bson.M{"version": 1},
		"$push": bson.M{"statusUpdates": change.Entry},
	}
	result, err := r.reports.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		count, err := r.reports.CountDocuments(ctx, bson.M{"_id": change.ReportID})
		if err != nil {
			return false, err
		}
		if count == 0 {
			return false, ErrRecordNotFound
		}
		return false, ErrVersionConflict
	}

	if change.Award == nil {
		return false, nil
	}
	awardResult, err := r.users.UpdateOne(ctx,
		bson.M{"_id": change.Award.UserID},
		bson.M{
			"$inc": bson.M{"incentives": change.Award.Points},
			"$set": bson.M{"updatedAt": change.Entry.Timestamp},
		},
	)
	if err != nil {
		return false, err
	}
	return awardResult.MatchedCount == 1, nil
}

// AppendComment 向报告的 comments 数组追加一条评论
func (r *mongoReportRepository) AppendComment(ctx context.Context, reportID string, comment models.Comment) error {
	result, err := r.reports.UpdateOne(ctx,
		bson.M{"_id": reportID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updatedAt": comment.Timestamp},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ListComments 返回报告的评论，按时间倒序
func (r *mongoReportRepository) ListComments(ctx context.Context, reportID string) ([]models.Comment, error) {
	var doc struct {
		Comments []models.Comment `bson:"comments"`
	}
	opts := options.FindOne().SetProjection(bson.M{"comments": 1})
	if err := r.reports.FindOne(ctx, bson.M{"_id": reportID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	// comments are stored in append order
	now := time.Now()
	comments := make([]models.Comment, 0, len(doc.Comments))
	for i := len(doc.Comments) - 1; i >= 0; i-- {
		c := doc.Comments[i]
		if c.Timestamp.IsZero() {
			c.Timestamp = now
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// Count 返回报告总数
func (r *mongoReportRepository) Count(ctx context.Context) (int64, error) {
	return r.reports.CountDocuments(ctx, bson.M{})
}

type groupCount struct {
	Key   string `bson:"_id"`
	Total int64  `bson:"total"`
}

func (r *mongoReportRepository) groupCounts(ctx context.Context, pipeline mongo.Pipeline) ([]groupCount, error) {
	cursor, err := r.reports.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []groupCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByStatus 按状态分组统计报告数
func (r *mongoReportRepository) CountByStatus(ctx context.Context) (map[models.ReportStatus]int64, error) {
	rows, err := r.groupCounts(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "total": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	counts := make(map[models.ReportStatus]int64, len(rows))
	for _, row := range rows {
		counts[models.ReportStatus(row.Key)] = row.Total
	}
	return counts, nil
}

// CountByOwner 按用户分组统计报告数
func (r *mongoReportRepository) CountByOwner(ctx context.Context) (map[string]int64, error) {
	rows, err := r.groupCounts(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": bson.M{"$nin": bson.A{nil, ""}}}}},
		{{Key: "$group", Value: bson.M{"_id": "$userId", "total": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Total
	}
	return counts, nil
}
