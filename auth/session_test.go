package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"channel-scope/errors"
)

const testSecret = "a-test-secret-of-sufficient-length"

func TestSessionStore_Roundtrip(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "session.jwt")
	store := NewSessionStore(path, []byte(testSecret), time.Hour)

	req.NoError(store.Save("+33612345678"))

	phone, err := store.Load()
	req.NoError(err)
	req.Equal("+33612345678", phone)
}

func TestSessionStore_MissingFile(t *testing.T) {
	req := require.New(t)
	store := NewSessionStore(filepath.Join(t.TempDir(), "absent.jwt"), []byte(testSecret), time.Hour)

	_, err := store.Load()
	req.ErrorIs(err, errors.ErrNoSession)
}

func TestSessionStore_WrongSecret(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "session.jwt")

	req.NoError(NewSessionStore(path, []byte(testSecret), time.Hour).Save("+33612345678"))

	_, err := NewSessionStore(path, []byte("another-secret-entirely-here"), time.Hour).Load()
	req.ErrorIs(err, errors.ErrSessionInvalid)
}

func TestSessionStore_ExpiredToken(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "session.jwt")
	store := NewSessionStore(path, []byte(testSecret), -time.Minute)

	req.NoError(store.Save("+33612345678"))

	_, err := store.Load()
	req.ErrorIs(err, errors.ErrSessionInvalid)
}

func TestSessionStore_Clear(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "session.jwt")
	store := NewSessionStore(path, []byte(testSecret), time.Hour)

	req.NoError(store.Save("+33612345678"))
	req.NoError(store.Clear())

	_, err := store.Load()
	req.ErrorIs(err, errors.ErrNoSession)

	// Clearing an already-absent session is not an error.
	req.NoError(store.Clear())
}
