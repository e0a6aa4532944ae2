package test

import (
	"errors"
	"fmt"

	pkgAuth "github.com/bikestores/bikestore/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// SessionCodecStub issues and parses session tokens via function overrides.
type SessionCodecStub struct {
	IssueFn func(int64, string) (string, error)
	ParseFn func(string) (*pkgAuth.Session, error)
}

// Issue returns deterministic tokens for tests.
func (s SessionCodecStub) Issue(userID int64, email string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, email)
	}
	return fmt.Sprintf("session:%d:%s", userID, email), nil
}

// Parse parses previously issued token strings.
func (s SessionCodecStub) Parse(token string) (*pkgAuth.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	var (
		id    int64
		email string
	)
	if _, err := fmt.Sscanf(token, "session:%d:%s", &id, &email); err != nil {
		return nil, pkgAuth.ErrInvalidSession
	}
	return &pkgAuth.Session{UserID: id, Email: email}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.SessionCodec = SessionCodecStub{}
