//go:generate go run go.uber.org/mock/mockgen -source=donation.go -destination=../mocks/mock_donation_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"

	"donation-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DonationsCollection = "donations"

// RecentDonationsLimit is the size of the most-recent donations report.
const RecentDonationsLimit = 5

type IDonationRepository interface {
	// Insert validates the donation, stamps its ID and date, and stores it.
	// Rule violations are reported as *models.ValidationError.
	Insert(ctx context.Context, donation *models.Donation) error
	TotalDonated(ctx context.Context) (float64, error)
	Recent(ctx context.Context, limit int64) ([]models.Donation, error)
	TotalsByCause(ctx context.Context) ([]models.CauseTotal, error)
	All(ctx context.Context) ([]models.Donation, error)
}

type DonationRepository struct {
	collection *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) IDonationRepository {
	return &DonationRepository{collection: db.Collection(DonationsCollection)}
}

// newestFirst orders by date and breaks equal dates by insertion order.
var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}

func (r *DonationRepository) Insert(ctx context.Context, donation *models.Donation) error {
	if err := models.Validate(donation); err != nil {
		return err
	}
	stamp(&donation.ID, &donation.Date)

	if _, err := r.collection.InsertOne(ctx, donation); err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

func (r *DonationRepository) TotalDonated(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate total: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalAmount float64 `bson:"totalAmount"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode total: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalAmount, nil
}

func (r *DonationRepository) Recent(ctx context.Context, limit int64) ([]models.Donation, error) {
	findOptions := options.Find().SetSort(newestFirst).SetLimit(limit)
	return r.find(ctx, findOptions)
}

func (r *DonationRepository) TotalsByCause(ctx context.Context) ([]models.CauseTotal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$cause"},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "cause", Value: "$_id"},
			{Key: "totalAmount", Value: 1},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "totalAmount", Value: -1},
			{Key: "cause", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate by cause: %w", err)
	}
	defer cursor.Close(ctx)

	totals := []models.CauseTotal{}
	if err = cursor.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("decode by cause: %w", err)
	}
	return totals, nil
}

func (r *DonationRepository) All(ctx context.Context) ([]models.Donation, error) {
	return r.find(ctx, options.Find().SetSort(newestFirst))
}

func (r *DonationRepository) find(ctx context.Context, findOptions *options.FindOptions) ([]models.Donation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find donations: %w", err)
	}
	defer cursor.Close(ctx)

	donations := []models.Donation{}
	if err = cursor.All(ctx, &donations); err != nil {
		return nil, fmt.Errorf("decode donations: %w", err)
	}
	return donations, nil
}
