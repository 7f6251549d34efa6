// internal/app/store/requests/requeststore.go
package requeststore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/volunteerhub/internal/app/system/normalize"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound means no request matched both the id and the ownership
// filter. Whether the document is missing or merely owned by someone
// else is not distinguished.
var ErrNotFound = errors.New("request not found")

// Store wraps the volunteer_requests collection. Deletes carry the
// owner_id predicate in the query itself, the same single-round-trip
// ownership pattern the needs store uses.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteer_requests")}
}

// Create inserts a request. The caller is expected to have already
// reserved an opening on the need; this method only persists the
// document. Status is forced to "requested" regardless of input.
func (s *Store) Create(ctx context.Context, r models.Request) (models.Request, error) {
	r.ID = primitive.NewObjectID()
	r.VolunteerName = normalize.Name(r.VolunteerName)
	r.VolunteerEmail = normalize.Email(r.VolunteerEmail)
	r.Suggestion = htmlsanitize.PlainText(r.Suggestion)
	r.Status = models.RequestStatusRequested
	r.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Request{}, err
	}
	return r, nil
}

// ListByOwner returns the requests filed by ownerID, newest first.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Request, error) {
	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.Request
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// Delete removes the request matching both id and owner_id. The opening
// it once consumed stays consumed; cancellation does not restore it.
func (s *Store) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
