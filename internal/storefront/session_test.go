package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chmanikanta24/cafe-storefront/internal/domain"
)

const testToken = "test-token-123"

// newAuthServer serves a minimal auth boundary: one known account, bearer
// testToken.
func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeError := func(w http.ResponseWriter, status int, msg string) {
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": msg})
	}
	authResponse := domain.AuthResponse{
		Token: testToken,
		User:  domain.UserProfile{ID: "u1", Email: "amy@example.com", Name: "Amy"},
	}

	// Plain-path registration with an explicit method guard: the
	// "METHOD /path" mux patterns need Go 1.22+, and this builds on 1.21.
	handle := func(method, path string, fn http.HandlerFunc) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
				return
			}
			fn(w, r)
		})
	}

	handle(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "amy@example.com" || req.Password != "secret" {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		json.NewEncoder(w).Encode(authResponse)
	})
	handle(http.MethodPost, "/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var req domain.SignupRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "amy@example.com" {
			writeError(w, http.StatusBadRequest, "User already exists with this email")
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.AuthResponse{
			Token: testToken,
			User:  domain.UserProfile{ID: "u2", Email: req.Email, Name: req.Name},
		})
	})
	handle(http.MethodGet, "/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeError(w, http.StatusForbidden, "Invalid or expired token")
			return
		}
		json.NewEncoder(w).Encode(authResponse.User)
	})

	return httptest.NewServer(mux)
}

func newTestSession(t *testing.T, baseURL string) (*Session, *MemoryTokenStore) {
	t.Helper()
	store := &MemoryTokenStore{}
	client := NewClient(baseURL, store)
	return NewSession(client, store, zap.NewNop()), store
}

func TestSessionSignInSuccess(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()
	session, store := newTestSession(t, server.URL)

	err := session.SignIn(context.Background(), "amy@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, session.State())
	assert.Equal(t, "Amy", session.User().Name)
	assert.Equal(t, testToken, store.Load())
}

func TestSessionSignInWrongPassword(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()
	session, store := newTestSession(t, server.URL)

	err := session.SignIn(context.Background(), "amy@example.com", "wrong")
	require.Error(t, err)

	assert.True(t, IsAuthError(err))
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Equal(t, StateAnonymous, session.State())
	assert.Nil(t, session.User())
	assert.Empty(t, store.Load(), "no token stored on failed sign-in")
}

func TestSessionSignUp(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()
	session, store := newTestSession(t, server.URL)

	err := session.SignUp(context.Background(), "Bob", "bob@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, session.State())
	assert.Equal(t, "bob@example.com", session.User().Email)
	assert.Equal(t, testToken, store.Load())

	// Duplicate email surfaces as a validation message, session unchanged.
	session2, store2 := newTestSession(t, server.URL)
	err = session2.SignUp(context.Background(), "Amy", "amy@example.com", "secret")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, StateAnonymous, session2.State())
	assert.Empty(t, store2.Load())
}

func TestSessionRestore(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()

	t.Run("no_stored_token", func(t *testing.T) {
		session, _ := newTestSession(t, server.URL)
		session.Restore(context.Background())
		assert.Equal(t, StateAnonymous, session.State())
	})

	t.Run("valid_stored_token", func(t *testing.T) {
		session, store := newTestSession(t, server.URL)
		store.Save(testToken)
		session.Restore(context.Background())
		assert.Equal(t, StateAuthenticated, session.State())
		assert.Equal(t, "Amy", session.User().Name)
	})

	t.Run("rejected_token_is_discarded", func(t *testing.T) {
		session, store := newTestSession(t, server.URL)
		store.Save("expired-token")
		session.Restore(context.Background())
		assert.Equal(t, StateAnonymous, session.State())
		assert.Empty(t, store.Load())
	})
}

func TestSessionSignOut(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()
	session, store := newTestSession(t, server.URL)

	require.NoError(t, session.SignIn(context.Background(), "amy@example.com", "secret"))
	session.SignOut()

	assert.Equal(t, StateAnonymous, session.State())
	assert.Nil(t, session.User())
	assert.Empty(t, store.Load())
}

func TestSessionHandleAuthFailure(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()
	session, store := newTestSession(t, server.URL)
	require.NoError(t, session.SignIn(context.Background(), "amy@example.com", "secret"))

	assert.False(t, session.HandleAuthFailure(&APIError{Kind: KindTransport}))
	assert.Equal(t, StateAuthenticated, session.State())

	assert.True(t, session.HandleAuthFailure(&APIError{Kind: KindAuth, Message: "Invalid or expired token"}))
	assert.Equal(t, StateAnonymous, session.State())
	assert.Empty(t, store.Load())
}
