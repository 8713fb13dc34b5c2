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

// QuestionnaireRepo handles MongoDB operations for questionnaires
type QuestionnaireRepo interface {
	Create(ctx context.Context, q *model.Questionnaire) (string, error)
	GetByID(ctx context.Context, id string) (*model.Questionnaire, error)
	List(ctx context.Context, openOnly bool) ([]*model.Questionnaire, error)
	Update(ctx context.Context, q *model.Questionnaire) error
	Close(ctx context.Context, id string) (*model.Questionnaire, error)
}

type questionnaireRepo struct {
	collection *mongo.Collection
}

// NewQuestionnaireRepo creates a new questionnaire repository
func NewQuestionnaireRepo(db *mongo.Database) QuestionnaireRepo {
	return &questionnaireRepo{
		collection: db.Collection("questionnaires"),
	}
}

func (r *questionnaireRepo) Create(ctx context.Context, q *model.Questionnaire) (string, error) {
	q.Status = model.QuestionnaireOpen
	q.CreatedAt = time.Now()
	q.UpdatedAt = time.Now()

	ensureBrandIDs(q.Brands)

	result, err := r.collection.InsertOne(ctx, q)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	q.ID = oid.Hex()
	return q.ID, nil
}

// ensureBrandIDs assigns stable ids to brands that arrived without one,
// both at creation and when an edit appends new brands. Answers reference
// brand ids forever, so existing ids are never touched.
func ensureBrandIDs(brands []model.Brand) {
	for i := range brands {
		if brands[i].ID == "" {
			brands[i].ID = primitive.NewObjectID().Hex()
		}
	}
}

func (r *questionnaireRepo) GetByID(ctx context.Context, id string) (*model.Questionnaire, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var q model.Questionnaire
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	q.ID = id
	return &q, nil
}

func (r *questionnaireRepo) List(ctx context.Context, openOnly bool) ([]*model.Questionnaire, error) {
	filter := bson.M{}
	if openOnly {
		filter["status"] = model.QuestionnaireOpen
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questionnaires []*model.Questionnaire
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, err
	}
	return questionnaires, nil
}

func (r *questionnaireRepo) Update(ctx context.Context, q *model.Questionnaire) error {
	oid, err := primitive.ObjectIDFromHex(q.ID)
	if err != nil {
		return err
	}

	ensureBrandIDs(q.Brands)
	q.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":     q.Title,
		"brands":    q.Brands,
		"criteria":  q.Criteria,
		"updatedAt": q.UpdatedAt,
	}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

// Close flips status to closed and returns the updated document.
// The transition is one-way; closing an already closed questionnaire
// is a no-op.
func (r *questionnaireRepo) Close(ctx context.Context, id string) (*model.Questionnaire, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{
		"status":    model.QuestionnaireClosed,
		"updatedAt": time.Now(),
	}}

	var q model.Questionnaire
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&q)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	q.ID = id
	return &q, nil
}
