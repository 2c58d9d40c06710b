// internal/domain/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a candidate's review of being recruited by a company.
//
// OverallRating is a pointer because a review may carry text only. When
// present it is an integer 1..5. Analytics treats an absent rating as
// "counts toward volume, excluded from averages and the histogram" —
// a missing value must never collapse into a zero.
type Review struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	CompanyID primitive.ObjectID `bson:"company_id" json:"company_id"`
	AuthorID  primitive.ObjectID `bson:"author_id" json:"author_id"`

	OverallRating *int   `bson:"overall_rating,omitempty" json:"overall_rating,omitempty"`
	Comment       string `bson:"comment,omitempty" json:"comment,omitempty"`

	// RecruiterResponded flips to true when the company's recruiter
	// replies to the review. The analytics response rate is the share of
	// reviews with this set.
	RecruiterResponded bool `bson:"recruiter_responded" json:"recruiter_responded"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
