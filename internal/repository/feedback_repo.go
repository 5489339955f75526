package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

// FeedbackRepo persists client feedback and recall grade events
type FeedbackRepo interface {
	CreateFeedback(ctx context.Context, fb *model.Feedback) error
	CreateGrade(ctx context.Context, grade *model.RecallGrade) error
	GetFeedbackByClient(ctx context.Context, clientID string, limit int64) ([]*model.Feedback, error)
	GetGradesByClient(ctx context.Context, clientID string, limit int64) ([]*model.RecallGrade, error)
}

type feedbackRepo struct {
	feedback *mongo.Collection
	grades   *mongo.Collection
}

func NewFeedbackRepo(db *mongo.Database) FeedbackRepo {
	return &feedbackRepo{
		feedback: db.Collection("feedback"),
		grades:   db.Collection("recall_grades"),
	}
}

func (r *feedbackRepo) CreateFeedback(ctx context.Context, fb *model.Feedback) error {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	result, err := r.feedback.InsertOne(ctx, fb)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		fb.ID = oid.Hex()
	}
	return nil
}

func (r *feedbackRepo) CreateGrade(ctx context.Context, grade *model.RecallGrade) error {
	if grade.GradedAt.IsZero() {
		grade.GradedAt = time.Now()
	}
	result, err := r.grades.InsertOne(ctx, grade)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		grade.ID = oid.Hex()
	}
	return nil
}

func (r *feedbackRepo) GetFeedbackByClient(ctx context.Context, clientID string, limit int64) ([]*model.Feedback, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.feedback.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*model.Feedback
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *feedbackRepo) GetGradesByClient(ctx context.Context, clientID string, limit int64) ([]*model.RecallGrade, error) {
	opts := options.Find().SetSort(bson.M{"gradedAt": -1}).SetLimit(limit)
	cursor, err := r.grades.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*model.RecallGrade
	if err = cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
