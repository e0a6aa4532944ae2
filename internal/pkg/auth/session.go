package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSession = errors.New("invalid session token")

// Session is the identity carried by a signed cookie.
type Session struct {
	UserID int64
	Email  string
}

// SessionCodec issues and verifies signed session tokens.
type SessionCodec interface {
	Issue(userID int64, email string) (string, error)
	Parse(token string) (*Session, error)
}

// Options tunes session issuance.
type Options struct {
	TTL time.Duration
}

// HMACCodec signs session payloads with HMAC-SHA256.
type HMACCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACCodec builds HMACCodec with provided secret and options.
func NewHMACCodec(secret string, opts Options) *HMACCodec {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACCodec{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed session token for the user identity.
// The email is base64 encoded inside the payload so it cannot collide
// with the field separator.
func (c *HMACCodec) Issue(userID int64, email string) (string, error) {
	expires := time.Now().Add(c.ttl).Unix()
	payload := fmt.Sprintf("%d:%s:%d", userID, base64.RawURLEncoding.EncodeToString([]byte(email)), expires)
	sig := c.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// Parse validates the token signature and expiry and returns the session.
func (c *HMACCodec) Parse(token string) (*Session, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return nil, ErrInvalidSession
	}

	payload := strings.Join(parts[:3], ":")
	expectedSig := c.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[3])) {
		return nil, ErrInvalidSession
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, ErrInvalidSession
	}

	email, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidSession
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, ErrInvalidSession
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return nil, ErrInvalidSession
	}

	return &Session{UserID: userID, Email: string(email)}, nil
}

func (c *HMACCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
