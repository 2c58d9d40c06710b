// internal/app/store/companies/store.go
package companies

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/hirelens/hirelens/internal/app/system/normalize"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateName is returned when a company with the same folded name
// already exists.
var ErrDuplicateName = errors.New("a company with this name already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("companies")}
}

// GetByID loads a company by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var co models.Company
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&co); err != nil {
		return nil, err
	}
	return &co, nil
}

// List returns active companies ordered by folded name.
func (s *Store) List(ctx context.Context, limit int64) ([]models.Company, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, bson.M{"status": "active"}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Company
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new company after normalizing fields.
func (s *Store) Create(ctx context.Context, co models.Company) (models.Company, error) {
	co.ID = primitive.NewObjectID()
	co.Name = normalize.Name(co.Name)
	co.NameCI = text.Fold(co.Name)
	if co.Status == "" {
		co.Status = "active"
	}

	now := time.Now()
	co.CreatedAt = now
	co.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, co); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Company{}, ErrDuplicateName
		}
		return models.Company{}, err
	}
	return co, nil
}
