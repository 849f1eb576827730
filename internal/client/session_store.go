package client

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rootandbloom/garden-center/internal/model"
)

// TokenStorage persists the bearer token across process restarts. Only
// the token is ever persisted; identity and the authenticated flag are
// always re-derived through VerifyAuth, so a stored token is a capability
// to re-establish a session, not proof of one.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStorage keeps the token in a file with owner-only permissions.
type FileTokenStorage struct {
	Path string
}

func (f *FileTokenStorage) Load() (string, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (f *FileTokenStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

func (f *FileTokenStorage) Clear() error {
	err := os.Remove(f.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryTokenStorage holds the token in memory only. Used in tests and
// anywhere persistence is unwanted.
type MemoryTokenStorage struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokenStorage) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokenStorage) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// SessionStore holds the dashboard session: the bearer token and the
// identity behind it. Token and identity never get out of sync for long;
// any verification failure purges both, so an expired token is
// self-healing on the next check rather than leaving a half-authenticated
// state.
type SessionStore struct {
	mu      sync.Mutex
	gw      *Gateway
	storage TokenStorage

	token         string
	user          *model.User
	authenticated bool
	errMsg        string
}

// NewSessionStore constructs a SessionStore, loading any persisted token.
// The loaded token does not make the session authenticated; callers run
// VerifyAuth on startup to turn it back into one.
func NewSessionStore(gw *Gateway, storage TokenStorage) *SessionStore {
	if gw == nil || storage == nil {
		panic("nil dependency passed to NewSessionStore")
	}
	s := &SessionStore{gw: gw, storage: storage}
	if tok, err := storage.Load(); err == nil {
		s.token = tok
	}
	return s
}

// Login exchanges credentials for a session. On success the token is
// persisted and the error cleared. A failed login sets the error message
// but never tears down a previously valid session; with no prior session
// it leaves the store anonymous with the token cleared.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	token, user, err := s.gw.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = err.Error()
		if !s.authenticated {
			s.token = ""
			s.user = nil
		}
		return err
	}
	s.token = token
	s.user = user
	s.authenticated = true
	s.errMsg = ""
	_ = s.storage.Save(token)
	return nil
}

// Logout clears the session unconditionally. No network call is made;
// the token simply stops being presented.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.authenticated = false
	s.errMsg = ""
	_ = s.storage.Clear()
}

// VerifyAuth checks whether the held token still identifies a user. With
// no token it resolves false immediately, without a network call. A
// token the server rejects is purged along with the identity, so the
// store returns to a clean anonymous state.
func (s *SessionStore) VerifyAuth(ctx context.Context) bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return false
	}

	user, err := s.gw.Me(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || user == nil {
		s.token = ""
		s.user = nil
		s.authenticated = false
		_ = s.storage.Clear()
		return false
	}
	s.user = user
	s.authenticated = true
	return true
}

// Token returns the held bearer token, or "" when anonymous.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the verified identity, or nil.
func (s *SessionStore) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether the session has been verified.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Err returns the most recent login error message.
func (s *SessionStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
