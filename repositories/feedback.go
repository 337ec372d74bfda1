//go:generate go run go.uber.org/mock/mockgen -source=feedback.go -destination=../mocks/mock_feedback_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"

	"donation-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const FeedbackCollection = "feedbacks"

type IFeedbackRepository interface {
	Insert(ctx context.Context, feedback *models.Feedback) error
	All(ctx context.Context) ([]models.Feedback, error)
}

type FeedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) IFeedbackRepository {
	return &FeedbackRepository{collection: db.Collection(FeedbackCollection)}
}

func (r *FeedbackRepository) Insert(ctx context.Context, feedback *models.Feedback) error {
	if err := models.Validate(feedback); err != nil {
		return err
	}
	stamp(&feedback.ID, &feedback.Date)

	if _, err := r.collection.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) All(ctx context.Context) ([]models.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	defer cursor.Close(ctx)

	feedback := []models.Feedback{}
	if err = cursor.All(ctx, &feedback); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}
	return feedback, nil
}
