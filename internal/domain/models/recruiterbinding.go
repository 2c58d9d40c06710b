// internal/domain/models/recruiterbinding.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Binding status values. A binding starts pending and moves exactly once
// to approved or rejected; terminal states never mutate. Re-requesting
// after a rejection creates a new binding document.
const (
	BindingPending  = "pending"
	BindingApproved = "approved"
	BindingRejected = "rejected"
)

// IsValidBindingStatus reports whether s is a recognized binding status.
func IsValidBindingStatus(s string) bool {
	switch s {
	case BindingPending, BindingApproved, BindingRejected:
		return true
	}
	return false
}

// RecruiterBinding links a recruiter user to the company whose analytics
// they may read. It is the sole source of truth for analytics scoping.
//
// Invariant: CompanyID is non-nil if and only if Status is approved.
// AdminNote is only meaningful on rejected bindings.
type RecruiterBinding struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	// What the recruiter claimed when requesting access. Admins use these
	// to verify the request before picking the company to bind.
	CompanyName  string `bson:"company_name" json:"company_name"`
	CompanyEmail string `bson:"company_email" json:"company_email"`
	RoleTitle    string `bson:"role_title,omitempty" json:"role_title,omitempty"`

	Status    string              `bson:"status" json:"status"`
	CompanyID *primitive.ObjectID `bson:"company_id,omitempty" json:"company_id,omitempty"`
	AdminNote string              `bson:"admin_note,omitempty" json:"admin_note,omitempty"`

	RequestedAt time.Time           `bson:"requested_at" json:"requested_at"`
	DecidedAt   *time.Time          `bson:"decided_at,omitempty" json:"decided_at,omitempty"`
	DecidedBy   *primitive.ObjectID `bson:"decided_by,omitempty" json:"decided_by,omitempty"`
}
