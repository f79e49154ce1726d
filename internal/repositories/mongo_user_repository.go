package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/report_admin/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUserRepository 是 UserRepository 的 MongoDB 实现
type mongoUserRepository struct {
	users *mongo.Collection
}

// NewMongoUserRepository 创建一个新的 mongoUserRepository 实例
func NewMongoUserRepository(database *mongo.Database) UserRepository {
	return &mongoUserRepository{users: database.Collection(usersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	user.Normalize(time.Now())
	_, err := r.users.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepository) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range users {
		users[i].Normalize(now)
	}
	return users, nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	user.Normalize(time.Now())
	return &user, nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *mongoUserRepository) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	result, err := r.users.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": active, "updatedAt": at}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{})
}

// mongoOperatorRepository 是 OperatorRepository 的 MongoDB 实现
type mongoOperatorRepository struct {
	operators *mongo.Collection
}

// NewMongoOperatorRepository 创建一个新的 mongoOperatorRepository 实例
func NewMongoOperatorRepository(database *mongo.Database) OperatorRepository {
	return &mongoOperatorRepository{operators: database.Collection(operatorsCollection)}
}

func (r *mongoOperatorRepository) GetByUsername(ctx context.Context, username string) (*models.Operator, error) {
	var operator models.Operator
	if err := r.operators.FindOne(ctx, bson.M{"username": username}).Decode(&operator); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &operator, nil
}

func (r *mongoOperatorRepository) Save(ctx context.Context, operator *models.Operator) error {
	now := time.Now()
	if operator.ID == "" {
		operator.ID = uuid.NewString()
	}
	operator.UpdatedAt = now

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{
		"$set": bson.M{
			"displayName":  operator.DisplayName,
			"email":        operator.Email,
			"passwordHash": operator.PasswordHash,
			"role":         operator.Role,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{"_id": operator.ID, "createdAt": now},
	}
	var saved models.Operator
	if err := r.operators.FindOneAndUpdate(ctx, bson.M{"username": operator.Username}, update, opts).Decode(&saved); err != nil {
		return err
	}
	*operator = saved
	return nil
}
