// Package session persists the access token saved by `zenodo login`.
//
// The CLI keeps exactly one session, stored as a JSON file under the user
// config directory. A session records the token, the environment it was
// verified against, and an expiry; an expired file reads as not logged in
// and is removed on load.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL is how long a saved login stays valid.
const DefaultTTL = 90 * 24 * time.Hour

// Session records the credentials saved by a login.
type Session struct {
	AccessToken string    `json:"access_token"`
	Sandbox     bool      `json:"sandbox"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// New creates a session holding token, valid for ttl from now.
func New(token string, sandbox bool, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		AccessToken: token,
		Sandbox:     sandbox,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

// Expired reports whether the session's TTL has passed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Environment returns the environment name the token was verified against.
func (s *Session) Environment() string {
	if s.Sandbox {
		return "sandbox"
	}
	return "production"
}

// Store reads and writes the CLI's session file.
type Store struct {
	path string
}

// NewStore opens the store at the default location,
// ~/.config/zenodo-go/session.json.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	return NewStoreAt(filepath.Join(home, ".config", "zenodo-go", "session.json")), nil
}

// NewStoreAt opens a store backed by the file at path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load reads the saved session. A missing or expired file yields nil without
// error; an expired file is removed.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if sess.Expired() {
		os.Remove(st.path)
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session with owner-only permissions, creating parent
// directories as needed.
func (st *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Delete removes the session file. Deleting a missing session is not an error.
func (st *Store) Delete() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (st *Store) Path() string {
	return st.path
}
