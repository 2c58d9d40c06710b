// internal/app/store/recruiters/store.go

// Package recruiters owns the recruiter_bindings collection: the record
// linking a recruiter user to the company whose analytics they may read.
//
// A binding is created pending and decided exactly once. The decision is
// a conditional update on {_id, status:"pending"}; when two admins race,
// the loser matches zero documents and gets ErrNotPending instead of
// silently overwriting the winner.
package recruiters

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/hirelens/hirelens/internal/app/system/normalize"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrPendingExists is returned when the user already has a pending request.
	ErrPendingExists = errors.New("a pending recruiter request already exists for this user")
	// ErrNotPending is returned when a decision targets a binding that is
	// no longer (or never was) pending.
	ErrNotPending = errors.New("recruiter request is not pending")
	// ErrNotFound is returned when no binding matches.
	ErrNotFound = errors.New("recruiter request not found")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("recruiter_bindings")}
}

// Submit creates a pending binding for the user. The unique partial index
// on (user_id, status=pending) makes the duplicate check race-safe even
// when two submissions arrive together.
func (s *Store) Submit(ctx context.Context, userID primitive.ObjectID, companyName, companyEmail, roleTitle string) (models.RecruiterBinding, error) {
	b := models.RecruiterBinding{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		CompanyName:  normalize.Name(companyName),
		CompanyEmail: normalize.Email(companyEmail),
		RoleTitle:    normalize.Name(roleTitle),
		Status:       models.BindingPending,
		RequestedAt:  time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		if wafflemongo.IsDup(err) {
			return models.RecruiterBinding{}, ErrPendingExists
		}
		return models.RecruiterBinding{}, err
	}
	return b, nil
}

// Approve transitions one binding pending → approved, setting the company
// it grants access to. Compare-and-set: only a still-pending document
// matches, so a concurrent decision cannot be overwritten.
func (s *Store) Approve(ctx context.Context, bindingID, companyID, decidedBy primitive.ObjectID) (*models.RecruiterBinding, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": bindingID, "status": models.BindingPending},
		bson.M{"$set": bson.M{
			"status":     models.BindingApproved,
			"company_id": companyID,
			"decided_at": now,
			"decided_by": decidedBy,
		}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, s.decisionFailure(ctx, bindingID)
	}
	return s.GetByID(ctx, bindingID)
}

// Reject transitions one binding pending → rejected with an optional note.
// Same compare-and-set shape as Approve.
func (s *Store) Reject(ctx context.Context, bindingID, decidedBy primitive.ObjectID, note string) (*models.RecruiterBinding, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": bindingID, "status": models.BindingPending},
		bson.M{"$set": bson.M{
			"status":     models.BindingRejected,
			"admin_note": note,
			"decided_at": now,
			"decided_by": decidedBy,
		}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, s.decisionFailure(ctx, bindingID)
	}
	return s.GetByID(ctx, bindingID)
}

// decisionFailure distinguishes "binding gone" from "binding already
// decided" after a zero-match conditional update.
func (s *Store) decisionFailure(ctx context.Context, bindingID primitive.ObjectID) error {
	err := s.c.FindOne(ctx, bson.M{"_id": bindingID}).Err()
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrNotPending
}

// GetByID loads one binding.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RecruiterBinding, error) {
	var b models.RecruiterBinding
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByStatus returns all bindings in the given state, oldest request
// first (FIFO triage order for the admin queue).
func (s *Store) ListByStatus(ctx context.Context, status string) ([]models.RecruiterBinding, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecruiterBinding
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindPendingForUser returns the user's pending binding, or ErrNotFound.
func (s *Store) FindPendingForUser(ctx context.Context, userID primitive.ObjectID) (*models.RecruiterBinding, error) {
	return s.findOneForUser(ctx, userID, bson.M{"user_id": userID, "status": models.BindingPending}, nil)
}

// FindApprovedForUser returns the user's most recent approved binding,
// or ErrNotFound. This is what the analytics scope resolver consults.
func (s *Store) FindApprovedForUser(ctx context.Context, userID primitive.ObjectID) (*models.RecruiterBinding, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "decided_at", Value: -1}})
	return s.findOneForUser(ctx, userID, bson.M{"user_id": userID, "status": models.BindingApproved}, opts)
}

// FindLatestForUser returns the user's newest binding regardless of
// status (backs the "my request status" endpoint).
func (s *Store) FindLatestForUser(ctx context.Context, userID primitive.ObjectID) (*models.RecruiterBinding, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	return s.findOneForUser(ctx, userID, bson.M{"user_id": userID}, opts)
}

func (s *Store) findOneForUser(ctx context.Context, userID primitive.ObjectID, filter bson.M, opts *options.FindOneOptions) (*models.RecruiterBinding, error) {
	var b models.RecruiterBinding
	var err error
	if opts != nil {
		err = s.c.FindOne(ctx, filter, opts).Decode(&b)
	} else {
		err = s.c.FindOne(ctx, filter).Decode(&b)
	}
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
