// internal/domain/models/company.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is an employer that recruits on the platform. Reviews and
// recruiter bindings both reference a company by its ObjectID.
//
// NameCI is the case-folded name used for the uniqueness index and for
// case-insensitive search; it is never rendered.
type Company struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"-"`
	Website  string             `bson:"website,omitempty" json:"website,omitempty"`
	Industry string             `bson:"industry,omitempty" json:"industry,omitempty"`

	Status string `bson:"status" json:"status"` // "active" | "disabled"

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
