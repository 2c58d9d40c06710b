package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCompany creates an active test company with the given name.
func (f *Fixtures) CreateCompany(ctx context.Context, name string) models.Company {
	f.t.Helper()

	now := time.Now().UTC()
	co := models.Company{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Industry:  "Testing",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("companies").InsertOne(ctx, co); err != nil {
		f.t.Fatalf("failed to create test company: %v", err)
	}
	return co
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		Role:       role,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateReview inserts a review for the company created "now".
// rating may be nil for a text-only review.
func (f *Fixtures) CreateReview(ctx context.Context, companyID, authorID primitive.ObjectID, rating *int, responded bool) models.Review {
	f.t.Helper()
	return f.CreateReviewAt(ctx, companyID, authorID, rating, responded, time.Now().UTC())
}

// CreateReviewAt inserts a review with an explicit creation time, which
// is what trend-bucket tests need.
func (f *Fixtures) CreateReviewAt(ctx context.Context, companyID, authorID primitive.ObjectID, rating *int, responded bool, createdAt time.Time) models.Review {
	f.t.Helper()

	rv := models.Review{
		ID:                 primitive.NewObjectID(),
		CompanyID:          companyID,
		AuthorID:           authorID,
		OverallRating:      rating,
		Comment:            "test review",
		RecruiterResponded: responded,
		CreatedAt:          createdAt,
	}

	if _, err := f.db.Collection("reviews").InsertOne(ctx, rv); err != nil {
		f.t.Fatalf("failed to create test review: %v", err)
	}
	return rv
}

// CreateBinding inserts a recruiter binding in the given status.
// companyID is only set for approved bindings.
func (f *Fixtures) CreateBinding(ctx context.Context, userID primitive.ObjectID, status string, companyID *primitive.ObjectID) models.RecruiterBinding {
	f.t.Helper()

	b := models.RecruiterBinding{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		CompanyName:  "Test Company",
		CompanyEmail: "recruiting@test.com",
		RoleTitle:    "Technical Recruiter",
		Status:       status,
		RequestedAt:  time.Now().UTC(),
	}
	if status != models.BindingPending {
		now := time.Now().UTC()
		b.DecidedAt = &now
		decider := primitive.NewObjectID()
		b.DecidedBy = &decider
	}
	if companyID != nil {
		b.CompanyID = companyID
	}

	if _, err := f.db.Collection("recruiter_bindings").InsertOne(ctx, b); err != nil {
		f.t.Fatalf("failed to create test binding: %v", err)
	}
	return b
}

// IntPtr returns a pointer to n; convenience for optional ratings.
func IntPtr(n int) *int {
	return &n
}
