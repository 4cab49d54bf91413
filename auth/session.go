// Package auth persists the session identity between runs, so a
// previously authenticated account does not go through the credential
// exchange again.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"channel-scope/errors"
)

// SessionClaims is the data stored inside the persisted session token.
type SessionClaims struct {
	PhoneNumber string `json:"phone_number"`
	jwt.RegisteredClaims
}

// SessionStore reads and writes an HS256-signed session token at a
// fixed path. The secret comes from configuration; a token signed with
// a different secret is rejected.
type SessionStore struct {
	path   string
	secret []byte
	ttl    time.Duration
}

func NewSessionStore(path string, secret []byte, ttl time.Duration) *SessionStore {
	return &SessionStore{path: path, secret: secret, ttl: ttl}
}

// Save signs a fresh session token for the given account and writes it
// to the session file, readable by the owner only.
func (s *SessionStore) Save(phoneNumber string) error {
	now := time.Now()
	claims := &SessionClaims{
		PhoneNumber: phoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "channel-scope",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("signing session token: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(signed), 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Load validates the persisted session and returns the account it
// belongs to. A missing file yields ErrNoSession; a tampered or expired
// token yields ErrSessionInvalid.
func (s *SessionStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", errors.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("reading session file: %w", err)
	}

	token, err := jwt.ParseWithClaims(string(raw), &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrSessionInvalid, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", errors.ErrSessionInvalid
	}
	return claims.PhoneNumber, nil
}

// Clear removes the persisted session, forcing a fresh authentication
// on the next run.
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
