//go:generate go run go.uber.org/mock/mockgen -source=contact.go -destination=../mocks/mock_contact_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"

	"donation-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ContactCollection = "contactus"

type IContactRepository interface {
	Insert(ctx context.Context, contact *models.ContactUs) error
	All(ctx context.Context) ([]models.ContactUs, error)
}

type ContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) IContactRepository {
	return &ContactRepository{collection: db.Collection(ContactCollection)}
}

func (r *ContactRepository) Insert(ctx context.Context, contact *models.ContactUs) error {
	if err := models.Validate(contact); err != nil {
		return err
	}
	stamp(&contact.ID, &contact.Date)

	if _, err := r.collection.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("insert contact request: %w", err)
	}
	return nil
}

func (r *ContactRepository) All(ctx context.Context) ([]models.ContactUs, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("find contact requests: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := []models.ContactUs{}
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("decode contact requests: %w", err)
	}
	return contacts, nil
}
