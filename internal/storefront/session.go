package storefront

import (
	"context"

	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

type SessionState int

const (
	StateAnonymous SessionState = iota
	StateRestoring
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session holds the bearer credential and the current user profile for one
// storefront session. Created at session start, passed to whatever needs it,
// and torn down on sign-out; there is no ambient global state.
type Session struct {
	client *Client
	store  TokenStore
	logger *zap.Logger

	state SessionState
	user  *domain.UserProfile
}

func NewSession(client *Client, store TokenStore, logger *zap.Logger) *Session {
	return &Session{
		client: client,
		store:  store,
		logger: logger,
		state:  StateAnonymous,
	}
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) User() *domain.UserProfile {
	return s.user
}

func (s *Session) Authenticated() bool {
	return s.state == StateAuthenticated
}

// Restore attempts to resume a previous session from the stored token. A
// failed profile fetch discards the token and leaves the session anonymous.
func (s *Session) Restore(ctx context.Context) {
	token := s.store.Load()
	if token == "" {
		s.state = StateAnonymous
		return
	}

	s.state = StateRestoring
	profile, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn("Failed to restore session; discarding stored token", zap.Error(err))
		s.store.Clear()
		s.state = StateAnonymous
		return
	}

	s.user = profile
	s.state = StateAuthenticated
	s.logger.Info("Session restored", zap.String("user_id", profile.ID))
}

// SignIn exchanges credentials for a token and profile. One attempt; on
// failure the session stays anonymous and the error message is for display.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.establish(resp)
}

// SignUp creates an account and signs the new user in.
func (s *Session) SignUp(ctx context.Context, name, email, password string) error {
	resp, err := s.client.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}
	return s.establish(resp)
}

// SignOut discards the stored token and profile unconditionally.
func (s *Session) SignOut() {
	s.store.Clear()
	s.user = nil
	s.state = StateAnonymous
}

// HandleAuthFailure forces a sign-out when a protected call was rejected as
// unauthenticated. Returns true if it signed the session out.
func (s *Session) HandleAuthFailure(err error) bool {
	if !IsAuthError(err) {
		return false
	}
	s.logger.Warn("Auth rejection on protected call; signing out", zap.Error(err))
	s.SignOut()
	return true
}

func (s *Session) establish(resp *domain.AuthResponse) error {
	if err := s.store.Save(resp.Token); err != nil {
		return &APIError{Kind: KindTransport, Message: "failed to persist credential", Err: err}
	}
	user := resp.User
	s.user = &user
	s.state = StateAuthenticated
	return nil
}
