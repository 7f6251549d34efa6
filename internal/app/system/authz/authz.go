// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdentityCtx returns the caller's Mongo ObjectID and email, and a found
// flag. If no identity is present in context or the user id is malformed,
// it returns NilObjectID, "", false. This ensures callers can trust that
// ok=true means a verified identity with a valid ObjectID.
func IdentityCtx(r *http.Request) (userID primitive.ObjectID, email string, ok bool) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		return primitive.NilObjectID, "", false
	}
	oid, err := primitive.ObjectIDFromHex(id.UserID)
	if err != nil {
		// Malformed user id inside a verified token - fail closed.
		// Should not happen unless the token was minted with bad data.
		return primitive.NilObjectID, "", false
	}
	return oid, id.Email, true
}

// IsOwner reports whether the caller's id equals the given owner id.
func IsOwner(r *http.Request, ownerID primitive.ObjectID) bool {
	uid, _, ok := IdentityCtx(r)
	return ok && uid == ownerID
}
