package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user record the way the account system would seed it.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateNeed inserts a volunteer need owned by ownerID with the given
// number of openings and deadline.
func (f *Fixtures) CreateNeed(ctx context.Context, ownerID primitive.ObjectID, title string, openings int, deadline time.Time) models.Need {
	f.t.Helper()

	now := time.Now().UTC()
	need := models.Need{
		ID:             primitive.NewObjectID(),
		Thumbnail:      "https://example.com/thumb.png",
		PostTitle:      title,
		Description:    "Test need description",
		Category:       "Community",
		CategoryCI:     "community",
		Location:       "Dhaka",
		LocationCI:     "dhaka",
		OpeningsNeeded: openings,
		Deadline:       deadline,
		OrganizerName:  "Test Organizer",
		OrganizerEmail: "organizer@test.com",
		OwnerID:        ownerID,
		CreatedAt:      now,
		UpdatedAt:      &now,
	}

	if _, err := f.db.Collection("volunteer_needs").InsertOne(ctx, need); err != nil {
		f.t.Fatalf("failed to create test need: %v", err)
	}
	return need
}

// CreateRequest inserts a volunteer request owned by ownerID against needID.
func (f *Fixtures) CreateRequest(ctx context.Context, ownerID, needID primitive.ObjectID, volunteerName string) models.Request {
	f.t.Helper()

	req := models.Request{
		ID:             primitive.NewObjectID(),
		NeedID:         needID,
		VolunteerName:  volunteerName,
		VolunteerEmail: "volunteer@test.com",
		Suggestion:     "Happy to help",
		Status:         models.RequestStatusRequested,
		OwnerID:        ownerID,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := f.db.Collection("volunteer_requests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test request: %v", err)
	}
	return req
}
