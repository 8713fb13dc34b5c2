package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
)

// ActivityFilter narrows an activity log listing
type ActivityFilter struct {
	UserID     string
	Action     model.ActivityAction
	EntityType model.EntityType
	Page       int64
	Limit      int64
}

// ActivityLogRepo handles MongoDB operations for activity logs
type ActivityLogRepo interface {
	Insert(ctx context.Context, entry *model.ActivityLog) error
	List(ctx context.Context, filter ActivityFilter) ([]*model.ActivityLog, int64, error)
}

type activityLogRepo struct {
	collection *mongo.Collection
}

// NewActivityLogRepo creates a new activity log repository
func NewActivityLogRepo(db *mongo.Database) ActivityLogRepo {
	return &activityLogRepo{
		collection: db.Collection("activity_logs"),
	}
}

func (r *activityLogRepo) Insert(ctx context.Context, entry *model.ActivityLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

func (r *activityLogRepo) List(ctx context.Context, filter ActivityFilter) ([]*model.ActivityLog, int64, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}
	if filter.EntityType != "" {
		query["entityType"] = filter.EntityType
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page-1)*limit).
		SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var logs []*model.ActivityLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
