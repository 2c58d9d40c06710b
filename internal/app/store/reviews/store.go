// internal/app/store/reviews/store.go
package reviews

import (
	"context"
	"errors"
	"time"

	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrBadRating is returned when a present rating falls outside 1..5.
	ErrBadRating = errors.New("overall rating must be between 1 and 5")
	// ErrNotFound is returned when no review matches.
	ErrNotFound = errors.New("review not found")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reviews")}
}

// Insert stores a new review. A nil OverallRating is allowed (text-only
// review); a present one must be 1..5.
func (s *Store) Insert(ctx context.Context, rv models.Review) (models.Review, error) {
	if rv.OverallRating != nil && (*rv.OverallRating < 1 || *rv.OverallRating > 5) {
		return models.Review{}, ErrBadRating
	}
	rv.ID = primitive.NewObjectID()
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, rv); err != nil {
		return models.Review{}, err
	}
	return rv, nil
}

// GetByID loads one review.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var rv models.Review
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

// ListForCompanyInRange returns the company's reviews with
// createdAt in [start, end), newest first. This is the single read the
// aggregation engine performs; the compound (company_id, created_at)
// index serves it.
func (s *Store) ListForCompanyInRange(ctx context.Context, companyID primitive.ObjectID, start, end time.Time) ([]models.Review, error) {
	filter := bson.M{
		"company_id": companyID,
		"created_at": bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecentForCompany returns the company's newest reviews, capped at limit.
func (s *Store) ListRecentForCompany(ctx context.Context, companyID primitive.ObjectID, limit int64) ([]models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkResponded flips recruiter_responded on one review.
func (s *Store) MarkResponded(ctx context.Context, reviewID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": reviewID},
		bson.M{"$set": bson.M{"recruiter_responded": true}})
	return err
}
