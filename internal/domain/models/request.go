// internal/domain/models/request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestStatusRequested is the only status a volunteer request takes on;
// there is no observed transition out of it.
const RequestStatusRequested = "requested"

// Request is a user's application to fill a Need.
//
// NeedID references exactly one volunteer_needs document. Referential
// integrity is not enforced: deleting a need does not cascade to its
// requests.
type Request struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NeedID         primitive.ObjectID `bson:"need_id" json:"need_id"`
	VolunteerName  string             `bson:"volunteer_name" json:"volunteer_name"`
	VolunteerEmail string             `bson:"volunteer_email" json:"volunteer_email"`
	Suggestion     string             `bson:"suggestion" json:"suggestion"`
	Status         string             `bson:"status" json:"status"`
	OwnerID        primitive.ObjectID `bson:"owner_id" json:"owner_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
