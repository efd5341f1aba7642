package client

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"trendmatch/internal/models"
)

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryTokenStore keeps the token in memory only. Useful for tests and
// short-lived programs.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileTokenStore persists the token to a single file, the CLI equivalent of
// a browser's stored credential.
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Session is an explicit authentication lifecycle around a Client: it owns
// the stored credential and the resolved user. Create with NewSession, call
// Init once, then Login/Logout as needed.
type Session struct {
	client *Client
	store  TokenStore
	user   *models.User
}

func NewSession(c *Client, store TokenStore) *Session {
	if store == nil {
		store = &MemoryTokenStore{}
	}
	return &Session{client: c, store: store}
}

// Init restores a previous session from the token store. A missing token
// leaves the session anonymous; a stored token that no longer authenticates
// is cleared and the session degrades to anonymous without error.
func (s *Session) Init(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.client.SetToken(token)
	user, err := s.client.Me(ctx)
	if err != nil {
		s.client.SetToken("")
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			// Expired or revoked token. Forget it.
			_ = s.store.Clear()
			return nil
		}
		// Network or server fault: keep the stored token for the next attempt.
		return err
	}

	s.user = user
	return nil
}

// Login authenticates, persists the token and sets the session user.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.client.SetToken(resp.Token)
	s.user = &resp.User
	if err := s.store.Save(resp.Token); err != nil {
		return nil, err
	}
	return s.user, nil
}

// Register creates an account and starts a session for it.
func (s *Session) Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	resp, err := s.client.Register(ctx, name, email, password, role)
	if err != nil {
		return nil, err
	}

	s.client.SetToken(resp.Token)
	s.user = &resp.User
	if err := s.store.Save(resp.Token); err != nil {
		return nil, err
	}
	return s.user, nil
}

// Logout clears the credential and resets the session to anonymous.
func (s *Session) Logout() error {
	s.client.SetToken("")
	s.user = nil
	return s.store.Clear()
}

// User returns the resolved user, or nil when anonymous.
func (s *Session) User() *models.User {
	return s.user
}

// Authenticated reports whether the session has a resolved user.
func (s *Session) Authenticated() bool {
	return s.user != nil
}

// Client returns the underlying API client with the session's token applied.
func (s *Session) Client() *Client {
	return s.client
}
