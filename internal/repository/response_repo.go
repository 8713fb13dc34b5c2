package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
)

// ResponseRepo handles MongoDB operations for responses
type ResponseRepo interface {
	GetByParticipant(ctx context.Context, questionnaireID, participantID string) (*model.Response, error)
	GetSubmitted(ctx context.Context, questionnaireID string) ([]*model.Response, error)
	GetByUser(ctx context.Context, participantID string) ([]*model.Response, error)
	Upsert(ctx context.Context, resp *model.Response) (*model.Response, error)
	EnsureIndexes(ctx context.Context) error
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

// EnsureIndexes creates the unique (questionnaireId, participantId)
// index that backs the one-response-per-participant invariant.
func (r *responseRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "questionnaireId", Value: 1},
			{Key: "participantId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *responseRepo) GetByParticipant(ctx context.Context, questionnaireID, participantID string) (*model.Response, error) {
	var resp model.Response
	err := r.collection.FindOne(ctx, bson.M{
		"questionnaireId": questionnaireID,
		"participantId":   participantID,
	}).Decode(&resp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *responseRepo) GetSubmitted(ctx context.Context, questionnaireID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"questionnaireId": questionnaireID,
		"status":          model.ResponseSubmitted,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepo) GetByUser(ctx context.Context, participantID string) ([]*model.Response, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"participantId": participantID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// Upsert writes the response keyed by (questionnaireId, participantId)
// in a single atomic operation, so two concurrent saves from the same
// participant can never produce two documents. Returns the stored
// document.
func (r *responseRepo) Upsert(ctx context.Context, resp *model.Response) (*model.Response, error) {
	now := time.Now()
	filter := bson.M{
		"questionnaireId": resp.QuestionnaireID,
		"participantId":   resp.ParticipantID,
	}
	update := bson.M{
		"$set": bson.M{
			"status":                resp.Status,
			"answers":               resp.Answers,
			"comparativeEvaluation": resp.Comparative,
			"updatedAt":             now,
		},
		"$setOnInsert": bson.M{
			"_id":             primitive.NewObjectID(),
			"questionnaireId": resp.QuestionnaireID,
			"participantId":   resp.ParticipantID,
			"createdAt":       now,
		},
	}

	var saved model.Response
	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
