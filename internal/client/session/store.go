// Package session persists the single client-side session record. It mirrors
// the browser-storage contract: one JSON record under a fixed key, trusted
// until the server rejects a request.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/models"
	"github.com/amumal/amumal-cli/internal/client/storage"
)

// sessionKey is the fixed storage key holding the session record.
const sessionKey = "amumal-user"

// ErrNoSession is returned by Require when no user is logged in.
var ErrNoSession = errors.New("no active session")

// Store reads and writes the session record in local storage.
type Store struct {
	kv *storage.KV
}

func NewStore(kv *storage.KV) *Store {
	return &Store{kv: kv}
}

// Save constructs the session record from a login profile and the email the
// user signed in with, and persists it, replacing any previous record.
func (s *Store) Save(ctx context.Context, profile models.Profile, email string) error {
	sess := &models.Session{
		UserID:       profile.UserID.Int64(),
		Nickname:     profile.Nickname,
		ProfileImage: profile.ProfileImage,
		Email:        email,
	}
	return s.Put(ctx, sess)
}

// Put persists the given session record wholesale. Profile edits that change
// nickname or image go through here.
func (s *Store) Put(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.kv.Set(ctx, sessionKey, data)
}

// Load returns the stored session, or nil when it is absent. A record that
// fails to parse is treated as absent, not as an error.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	data, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, nil
	}
	return &sess, nil
}

// Clear removes the session record.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionKey)
}

// Require returns the session or ErrNoSession when none is stored. Every
// authenticated flow calls this exactly once before doing anything else.
func (s *Store) Require(ctx context.Context) (*models.Session, error) {
	sess, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}
