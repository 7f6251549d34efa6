// internal/app/store/needs/needstore.go
package needstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound means no document matched both the id and the ownership
	// filter: either the need does not exist or the caller is not its owner.
	// The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("need not found")

	// ErrExhausted means the need has no openings left to decrement.
	ErrExhausted = errors.New("need has no openings remaining")

	// ErrInvalidOpenings rejects a negative volunteers_needed value.
	ErrInvalidOpenings = errors.New("volunteers_needed must be a non-negative integer")

	// ErrTitleRequired rejects a blank post_title.
	ErrTitleRequired = errors.New("post_title is required")
)

// Store wraps the volunteer_needs collection. Every mutating operation
// folds the ownership predicate into the query filter itself, so the
// check-and-act is one atomic round-trip with no time-of-check/time-of-use
// window.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteer_needs")}
}

// Create inserts a new Need owned by the caller, setting the *_ci fields
// and timestamps. The description is sanitized before persisting.
func (s *Store) Create(ctx context.Context, n models.Need) (models.Need, error) {
	if strings.TrimSpace(n.PostTitle) == "" {
		return models.Need{}, ErrTitleRequired
	}
	if n.OpeningsNeeded < 0 {
		return models.Need{}, ErrInvalidOpenings
	}

	now := time.Now().UTC()
	n.ID = primitive.NewObjectID()
	n.Description = htmlsanitize.Sanitize(n.Description)
	n.CategoryCI = text.Fold(n.Category)
	n.LocationCI = text.Fold(n.Location)
	n.CreatedAt = now
	n.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Need{}, err
	}
	return n, nil
}

// GetByID returns a need by its id, with no ownership filter: single needs
// are globally readable.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Need, error) {
	var n models.Need
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Need{}, ErrNotFound
		}
		return models.Need{}, err
	}
	return n, nil
}

// ListUpcoming returns all needs ordered by ascending deadline, truncated
// to limit. Ties on deadline break by _id ascending (insertion order), so
// the listing is deterministic. No ownership filter.
func (s *Store) ListUpcoming(ctx context.Context, limit int64) ([]models.Need, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "deadline", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var needs []models.Need
	if err := cur.All(ctx, &needs); err != nil {
		return nil, err
	}
	return needs, nil
}

// ListByOwner returns the needs whose owner_id equals ownerID.
func (s *Store) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Need, error) {
	cur, err := s.c.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var needs []models.Need
	if err := cur.All(ctx, &needs); err != nil {
		return nil, err
	}
	return needs, nil
}

// Patch holds the fields a need's owner may change. Nil fields are left
// untouched. OwnerID is not here on purpose: ownership is immutable.
type Patch struct {
	Thumbnail      *string
	PostTitle      *string
	Description    *string
	Category       *string
	Location       *string
	OpeningsNeeded *int
	Deadline       *time.Time
	OrganizerName  *string
	OrganizerEmail *string
}

// Update applies a partial field merge to the document matching both id
// and owner_id. If nothing matches (wrong id or not the owner) it returns
// ErrNotFound rather than silently succeeding.
func (s *Store) Update(ctx context.Context, id, ownerID primitive.ObjectID, p Patch) error {
	set := bson.M{}
	if p.Thumbnail != nil {
		set["thumbnail"] = *p.Thumbnail
	}
	if p.PostTitle != nil {
		if strings.TrimSpace(*p.PostTitle) == "" {
			return ErrTitleRequired
		}
		set["post_title"] = *p.PostTitle
	}
	if p.Description != nil {
		set["description"] = htmlsanitize.Sanitize(*p.Description)
	}
	if p.Category != nil {
		set["category"] = *p.Category
		set["category_ci"] = text.Fold(*p.Category)
	}
	if p.Location != nil {
		set["location"] = *p.Location
		set["location_ci"] = text.Fold(*p.Location)
	}
	if p.OpeningsNeeded != nil {
		if *p.OpeningsNeeded < 0 {
			return ErrInvalidOpenings
		}
		set["volunteers_needed"] = *p.OpeningsNeeded
	}
	if p.Deadline != nil {
		set["deadline"] = *p.Deadline
	}
	if p.OrganizerName != nil {
		set["organizer_name"] = *p.OrganizerName
	}
	if p.OrganizerEmail != nil {
		set["organizer_email"] = *p.OrganizerEmail
	}
	if len(set) == 0 {
		// Nothing to update; still report whether the caller owns the doc.
		if err := s.c.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Err(); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return err
		}
		return nil
	}
	set["updated_at"] = time.Now().UTC()

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id, "owner_id": ownerID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document matching both id and owner_id. A mismatch on
// either is ErrNotFound.
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

// DecrementOpenings atomically decrements volunteers_needed, but only while
// it is still above zero. The guard and the decrement are a single
// conditional update, so concurrent signups can never drive the counter
// negative. Returns ErrExhausted when the need exists but has no openings
// left, ErrNotFound when it does not exist.
func (s *Store) DecrementOpenings(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "volunteers_needed": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"volunteers_needed": -1}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount > 0 {
		return nil
	}

	n, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrExhausted
}

// IncrementOpenings restores one opening. Used as compensation when the
// request insert fails after a successful decrement.
func (s *Store) IncrementOpenings(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"volunteers_needed": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
