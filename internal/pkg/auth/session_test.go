package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestHMACCodecRoundtrip(t *testing.T) {
	codec := NewHMACCodec("secret", Options{TTL: time.Hour})

	token, err := codec.Issue(42, "admin@bikestores.local")
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	session, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if session.UserID != 42 {
		t.Errorf("expected user id 42, got %d", session.UserID)
	}
	if session.Email != "admin@bikestores.local" {
		t.Errorf("unexpected email %q", session.Email)
	}
}

func TestHMACCodecEmailWithSeparator(t *testing.T) {
	codec := NewHMACCodec("secret", Options{})

	token, err := codec.Issue(1, "odd:colon@example.com")
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	session, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if session.Email != "odd:colon@example.com" {
		t.Errorf("email not preserved, got %q", session.Email)
	}
}

func TestHMACCodecRejectsTampering(t *testing.T) {
	codec := NewHMACCodec("secret", Options{TTL: time.Hour})

	token, err := codec.Issue(7, "user@example.com")
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	tampered := strings.Replace(string(raw), "7:", "8:", 1)
	forged := base64.StdEncoding.EncodeToString([]byte(tampered))

	if _, err := codec.Parse(forged); err != ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for tampered token, got %v", err)
	}
}

func TestHMACCodecRejectsWrongSecret(t *testing.T) {
	issuer := NewHMACCodec("secret-a", Options{TTL: time.Hour})
	verifier := NewHMACCodec("secret-b", Options{TTL: time.Hour})

	token, err := issuer.Issue(7, "user@example.com")
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if _, err := verifier.Parse(token); err != ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for foreign token, got %v", err)
	}
}

func TestHMACCodecRejectsExpired(t *testing.T) {
	codec := &HMACCodec{secret: []byte("secret"), ttl: -time.Minute}

	token, err := codec.Issue(7, "user@example.com")
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if _, err := codec.Parse(token); err != ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestHMACCodecRejectsGarbage(t *testing.T) {
	codec := NewHMACCodec("secret", Options{})

	for _, token := range []string{"", "not-base64!!!", base64.StdEncoding.EncodeToString([]byte("a:b"))} {
		if _, err := codec.Parse(token); err != ErrInvalidSession {
			t.Errorf("expected ErrInvalidSession for %q, got %v", token, err)
		}
	}
}
