package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"eduhub/models"

	"github.com/spf13/afero"
)

// Session is the persisted login state: the token plus the cached
// identity fields shown before the identity endpoint answers.
type Session struct {
	Token     string `json:"token"`
	UserEmail string `json:"userEmail"`
	UserRole  string `json:"userRole"`
}

// SessionStore persists the session as a JSON file. It is the explicit
// replacement for ad hoc local-storage reads: constructed once and
// passed to every manager/view.
type SessionStore struct {
	fs   afero.Fs
	path string
}

// NewSessionStore creates a store backed by the given filesystem. A nil
// fs uses the OS filesystem and the default path under the user config
// directory.
func NewSessionStore(fs afero.Fs, path string) *SessionStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		path = filepath.Join(dir, "eduhub", "session.json")
	}
	return &SessionStore{fs: fs, path: path}
}

// Load returns the persisted session. A missing file yields an empty
// session, not an error.
func (s *SessionStore) Load() (Session, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to parse session: %w", err)
	}
	return sess, nil
}

// Save persists the session.
func (s *SessionStore) Save(sess Session) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, data, 0o600)
}

// Clear removes the persisted session, used on logout.
func (s *SessionStore) Clear() error {
	err := s.fs.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token returns the stored token, "" when logged out.
func (s *SessionStore) Token() string {
	sess, err := s.Load()
	if err != nil {
		return ""
	}
	return sess.Token
}

// LoginWith saves the session produced by a successful login.
func (s *SessionStore) LoginWith(token string, user *models.User) error {
	sess := Session{Token: token}
	if user != nil {
		sess.UserEmail = user.Email
		sess.UserRole = user.Role
	}
	return s.Save(sess)
}

// resolveIdentity asks the identity endpoint who the token belongs to.
func resolveIdentity(ctx context.Context, api *apiClient) (*models.User, error) {
	var user models.User
	if err := api.get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
