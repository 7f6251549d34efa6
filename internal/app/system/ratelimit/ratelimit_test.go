package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiterAllow(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("key") {
			t.Fatalf("request %d blocked within limit", i+1)
		}
	}
	if l.Allow("key") {
		t.Error("request over the limit was allowed")
	}
	// Other keys have their own window.
	if !l.Allow("other") {
		t.Error("unrelated key was blocked")
	}
}

func TestLimiterReset(t *testing.T) {
	l := New(1, time.Minute)

	if !l.Allow("key") {
		t.Fatal("first request blocked")
	}
	if l.Allow("key") {
		t.Fatal("second request allowed")
	}
	l.Reset("key")
	if !l.Allow("key") {
		t.Error("request after reset was blocked")
	}
}

func TestLimiterWindowExpiry(t *testing.T) {
	l := New(1, 10*time.Millisecond)

	if !l.Allow("key") {
		t.Fatal("first request blocked")
	}
	if l.Allow("key") {
		t.Fatal("second request allowed within window")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("key") {
		t.Error("request after window expiry was blocked")
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:4321"
	if got := ClientIP(r); got != "10.0.0.1" {
		t.Errorf("RemoteAddr: got %q", got)
	}

	r.Header.Set("X-Real-IP", "10.0.0.2")
	if got := ClientIP(r); got != "10.0.0.2" {
		t.Errorf("X-Real-IP: got %q", got)
	}

	r.Header.Set("X-Forwarded-For", "10.0.0.3, 10.0.0.4")
	if got := ClientIP(r); got != "10.0.0.3" {
		t.Errorf("X-Forwarded-For: got %q", got)
	}
}

func TestMintLimiter(t *testing.T) {
	ml := &MintLimiter{
		ipLimiter:    New(100, time.Minute),
		emailLimiter: New(2, time.Minute),
	}

	r := httptest.NewRequest("POST", "/jwt", nil)
	r.RemoteAddr = "10.0.0.1:4321"

	for i := 0; i < 2; i++ {
		if ok, reason := ml.Check(r, "Jane@Example.com"); !ok {
			t.Fatalf("attempt %d blocked: %s", i+1, reason)
		}
	}
	// Email matching is case-insensitive.
	if ok, _ := ml.Check(r, "jane@example.com"); ok {
		t.Error("third attempt for same email was allowed")
	}
	if ok, _ := ml.Check(r, "other@example.com"); !ok {
		t.Error("attempt for unrelated email was blocked")
	}

	ml.ResetEmail("JANE@example.com")
	if ok, _ := ml.Check(r, "jane@example.com"); !ok {
		t.Error("attempt after reset was blocked")
	}
}
