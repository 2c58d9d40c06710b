// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/hirelens/hirelens/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the caller's role (lowercased), name, Mongo ObjectID,
// and a found flag. If no identity is present or the user ID is malformed,
// it returns "visitor", "", NilObjectID, false — so ok=true always means a
// valid, authenticated caller with a usable ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(id.ID)
	if err != nil {
		// Malformed ID in a verified token - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(id.Role), id.Name, userID, true
}

// IsAdmin reports whether the current request's caller is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// IsRecruiter reports whether the current request's caller is a recruiter.
func IsRecruiter(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "recruiter"
}

// IsCandidate reports whether the current request's caller is a candidate.
func IsCandidate(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "candidate"
}
