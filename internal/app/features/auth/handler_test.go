package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	sysauth "github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"github.com/dalemusser/volunteerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, db *mongo.Database) *Handler {
	t.Helper()

	codec, err := token.New("test-secret", 4*time.Hour)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	logger := zap.NewNop()
	authn := sysauth.NewAuthenticator(codec, false, logger)
	return NewHandler(db, codec, authn, apierr.NewErrorLogger(logger), logger)
}

func TestMint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seeded := fix.CreateUser(ctx, "Jane Doe", "jane@example.com")

	req := testutil.NewRequest(t, http.MethodPost, "/jwt", map[string]string{"email": "jane@example.com"})
	rec := httptest.NewRecorder()
	h.Mint(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.UserID != seeded.ID.Hex() {
		t.Errorf("user_id = %q, want %q", resp.UserID, seeded.ID.Hex())
	}
	if resp.Email != "jane@example.com" {
		t.Errorf("email = %q", resp.Email)
	}

	// The token must arrive as an HTTP-only cookie the codec can verify.
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sysauth.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no token cookie set")
	}
	if !cookie.HttpOnly {
		t.Error("token cookie is not HttpOnly")
	}
	id, err := h.Codec.Verify(cookie.Value)
	if err != nil {
		t.Fatalf("cookie does not verify: %v", err)
	}
	if id.UserID != seeded.ID.Hex() {
		t.Errorf("token identity = %q, want %q", id.UserID, seeded.ID.Hex())
	}
}

func TestMintUnknownEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	req := testutil.NewRequest(t, http.MethodPost, "/jwt", map[string]string{"email": "nobody@example.com"})
	rec := httptest.NewRecorder()
	h.Mint(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("cookie set for unknown email")
	}
}

func TestMintBadBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	for name, body := range map[string]any{
		"empty email":  map[string]string{"email": "   "},
		"no email key": map[string]string{"name": "jane"},
	} {
		req := testutil.NewRequest(t, http.MethodPost, "/jwt", body)
		rec := httptest.NewRecorder()
		h.Mint(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/jwt", nil)
	rec := httptest.NewRecorder()
	h.Mint(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("nil body: status = %d, want 400", rec.Code)
	}
}

func TestMintRateLimited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	// The per-email window allows five attempts; the sixth is throttled
	// even though each one fails the lookup.
	var last int
	for i := 0; i < 6; i++ {
		req := testutil.NewRequest(t, http.MethodPost, "/jwt", map[string]string{"email": "bruteforce@example.com"})
		rec := httptest.NewRecorder()
		h.Mint(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("sixth attempt: status = %d, want 429", last)
	}
}

func TestUserData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	fix := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seeded := fix.CreateUser(ctx, "Jane Doe", "jane@example.com")
	id := testutil.TestIdentity{UserID: seeded.ID, Email: seeded.Email}

	req := testutil.NewAuthenticatedRequest(t, http.MethodGet, "/api/user_data", nil, id)
	rec := httptest.NewRecorder()
	h.UserData(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID       string `json:"id"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.ID != seeded.ID.Hex() {
		t.Errorf("id = %q, want %q", resp.ID, seeded.ID.Hex())
	}
	if resp.FullName != "Jane Doe" || resp.Email != "jane@example.com" {
		t.Errorf("got %q <%s>", resp.FullName, resp.Email)
	}
}

func TestUserDataDeletedAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	// Identity verifies but the account no longer exists.
	id := testutil.NewIdentity("gone@example.com")
	req := testutil.NewAuthenticatedRequest(t, http.MethodGet, "/api/user_data", nil, id)
	rec := httptest.NewRecorder()
	h.UserData(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUserDataNoIdentity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)

	req := testutil.NewRequest(t, http.MethodGet, "/api/user_data", nil)
	rec := httptest.NewRecorder()
	h.UserData(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
