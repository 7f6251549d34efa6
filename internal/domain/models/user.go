// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record in the users collection.
//
// User records are seeded by the account system, not by this service;
// this API only reads them to resolve an email into an identity (/jwt)
// and to serve the caller's own profile (/api/user_data).
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"full_name" json:"full_name"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
