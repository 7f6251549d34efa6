// internal/domain/models/need.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Need is a posted volunteer opportunity.
//
// OwnerID is stamped from the authenticated identity when the need is
// created and never changes afterward; every mutating query on the
// volunteer_needs collection filters on it.
type Need struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Thumbnail      string             `bson:"thumbnail" json:"thumbnail"`
	PostTitle      string             `bson:"post_title" json:"post_title"`
	Description    string             `bson:"description" json:"description"`
	Category       string             `bson:"category" json:"category"`
	CategoryCI     string             `bson:"category_ci" json:"category_ci"` // lowercase, diacritics-stripped
	Location       string             `bson:"location" json:"location"`
	LocationCI     string             `bson:"location_ci" json:"location_ci"`
	OpeningsNeeded int                `bson:"volunteers_needed" json:"volunteers_needed"`
	Deadline       time.Time          `bson:"deadline" json:"deadline"`
	OrganizerName  string             `bson:"organizer_name" json:"organizer_name"`
	OrganizerEmail string             `bson:"organizer_email" json:"organizer_email"`
	OwnerID        primitive.ObjectID `bson:"owner_id" json:"owner_id"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
