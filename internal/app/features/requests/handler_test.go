package requests

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, db *mongo.Database) *Handler {
	t.Helper()
	logger := zap.NewNop()
	return NewHandler(db, apierr.NewErrorLogger(logger), logger)
}

func createBody(needID primitive.ObjectID) map[string]any {
	return map[string]any{
		"need_id":         needID.Hex(),
		"volunteer_name":  "Ada Lovelace",
		"volunteer_email": "ada@example.com",
		"suggestion":      "I can start this weekend",
	}
}

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	organizer := primitive.NewObjectID()
	need := fix.CreateNeed(ctx, organizer, "harvest help", 3, time.Now().Add(24*time.Hour).UTC())
	caller := testutil.NewIdentity("ada@example.com")

	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/api/request_volunteer", createBody(need.ID), caller)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if _, err := primitive.ObjectIDFromHex(resp.ID); err != nil {
		t.Fatalf("response id %q is not an object id: %v", resp.ID, err)
	}

	// The opening was consumed.
	stored, err := h.Needs.GetByID(ctx, need.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.OpeningsNeeded != 2 {
		t.Errorf("volunteers_needed = %d, want 2", stored.OpeningsNeeded)
	}

	// The request is owned by the caller.
	reqs, err := h.Requests.ListByOwner(ctx, caller.UserID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	if reqs[0].NeedID != need.ID {
		t.Errorf("need_id = %s, want %s", reqs[0].NeedID.Hex(), need.ID.Hex())
	}
}

func TestCreateExhausted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	organizer := primitive.NewObjectID()
	need := fix.CreateNeed(ctx, organizer, "single slot", 1, time.Now().Add(24*time.Hour).UTC())
	caller := testutil.NewIdentity("ada@example.com")

	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/api/request_volunteer", createBody(need.ID), caller)
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first signup: status = %d", rec.Code)
	}

	req = testutil.NewAuthenticatedRequest(t, http.MethodPost, "/api/request_volunteer", createBody(need.ID), caller)
	rec = httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("exhausted signup: status = %d, want 409", rec.Code)
	}

	stored, err := h.Needs.GetByID(ctx, need.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.OpeningsNeeded != 0 {
		t.Errorf("volunteers_needed = %d, want 0 and never negative", stored.OpeningsNeeded)
	}
}

func TestCreateConcurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	const openings = 4
	const callers = 12

	organizer := primitive.NewObjectID()
	need := fix.CreateNeed(ctx, organizer, "contended", openings, time.Now().Add(24*time.Hour).UTC())

	var wg sync.WaitGroup
	codes := make(chan int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			caller := testutil.NewIdentity("v@example.com")
			req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/api/request_volunteer", createBody(need.ID), caller)
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			codes <- rec.Code
		}()
	}
	wg.Wait()
	close(codes)

	var created, conflict int
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflict++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}
	if created != openings {
		t.Errorf("%d requests created, want exactly %d", created, openings)
	}
	if conflict != callers-openings {
		t.Errorf("%d conflicts, want %d", conflict, callers-openings)
	}

	stored, err := h.Needs.GetByID(ctx, need.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.OpeningsNeeded != 0 {
		t.Errorf("volunteers_needed = %d after contention, want 0", stored.OpeningsNeeded)
	}

	n, err := db.Collection("volunteer_requests").CountDocuments(ctx, map[string]any{"need_id": need.ID})
	if err != nil {
		t.Fatalf("CountDocuments: %v", err)
	}
	if n != openings {
		t.Errorf("%d request documents, want %d", n, openings)
	}
}

func TestCreateBadInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	caller := testutil.NewIdentity("ada@example.com")

	cases := map[string]map[string]any{
		"malformed need_id": {"need_id": "zzz", "volunteer_name": "Ada"},
		"missing need_id":   {"volunteer_name": "Ada"},
		"blank name":        {"need_id": primitive.NewObjectID().Hex(), "volunteer_name": "  "},
	}
	for name, body := range cases {
		req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/api/request_volunteer", body, caller)
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestCreateMissingNeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	caller := testutil.NewIdentity("ada@example.com")

	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/api/request_volunteer", createBody(primitive.NewObjectID()), caller)
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	caller := testutil.NewIdentity("ada@example.com")
	stranger := testutil.NewIdentity("mallory@example.com")
	organizer := primitive.NewObjectID()
	need := fix.CreateNeed(ctx, organizer, "cancellable", 2, time.Now().Add(24*time.Hour).UTC())
	stored := fix.CreateRequest(ctx, caller.UserID, need.ID, "Ada Lovelace")

	req := testutil.NewAuthenticatedRequest(t, http.MethodDelete, "/api/request_volunteer/"+stored.ID.Hex(), nil, stranger)
	req = testutil.WithChiURLParam(req, "id", stored.ID.Hex())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("non-owner delete: status = %d, want 404", rec.Code)
	}

	req = testutil.NewAuthenticatedRequest(t, http.MethodDelete, "/api/request_volunteer/"+stored.ID.Hex(), nil, caller)
	req = testutil.WithChiURLParam(req, "id", stored.ID.Hex())
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("owner delete: status = %d, want 204", rec.Code)
	}

	// Cancelling does not give the opening back.
	needAfter, err := h.Needs.GetByID(ctx, need.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if needAfter.OpeningsNeeded != 2 {
		t.Errorf("volunteers_needed = %d, want unchanged 2", needAfter.OpeningsNeeded)
	}
}

func TestListOwned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	caller := testutil.NewIdentity("ada@example.com")
	other := primitive.NewObjectID()
	needID := primitive.NewObjectID()
	fix.CreateRequest(ctx, caller.UserID, needID, "mine")
	fix.CreateRequest(ctx, other, needID, "not-mine")

	req := testutil.NewAuthenticatedRequest(t, http.MethodGet, "/api/user_request_volunteer/"+caller.UserID.Hex(), nil, caller)
	req = testutil.WithChiURLParam(req, "id", caller.UserID.Hex())
	rec := httptest.NewRecorder()
	h.ListOwned(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var resp []struct {
		VolunteerName string `json:"volunteer_name"`
		Status        string `json:"status"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp) != 1 || resp[0].VolunteerName != "mine" {
		t.Errorf("got %+v, want just the caller's request", resp)
	}
	if resp[0].Status != "requested" {
		t.Errorf("status = %q, want %q", resp[0].Status, "requested")
	}
}

func TestListOwnedPathGuard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	caller := testutil.NewIdentity("ada@example.com")
	otherID := primitive.NewObjectID().Hex()

	req := testutil.NewAuthenticatedRequest(t, http.MethodGet, "/api/user_request_volunteer/"+otherID, nil, caller)
	req = testutil.WithChiURLParam(req, "id", otherID)
	rec := httptest.NewRecorder()
	h.ListOwned(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("mismatched path id: status = %d, want 403", rec.Code)
	}
}
