package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestIdentity represents an authenticated caller for handler tests.
type TestIdentity struct {
	UserID primitive.ObjectID
	Email  string
}

// NewIdentity returns a TestIdentity with a fresh ObjectID.
func NewIdentity(email string) TestIdentity {
	return TestIdentity{UserID: primitive.NewObjectID(), Email: email}
}

// WithIdentity adds an identity to the request context for testing
// authenticated handlers. This bypasses the token middleware and injects
// the identity directly.
func WithIdentity(r *http.Request, id TestIdentity) *http.Request {
	return auth.WithTestIdentity(r, token.Identity{
		UserID: id.UserID.Hex(),
		Email:  id.Email,
	})
}

// NewRequest creates an HTTP request for testing, with an optional JSON body.
func NewRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// NewAuthenticatedRequest creates an HTTP request with an identity in context.
func NewAuthenticatedRequest(t *testing.T, method, target string, body any, id TestIdentity) *http.Request {
	t.Helper()
	return WithIdentity(NewRequest(t, method, target, body), id)
}

// DecodeJSON decodes a response recorder body into dst, failing the test on
// malformed JSON.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to parse response %q: %v", rec.Body.String(), err)
	}
}
