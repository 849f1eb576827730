package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootandbloom/garden-center/internal/model"
)

// authServer fakes login and me with a single valid credential pair.
func authServer(t *testing.T, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	user := model.User{ID: 1, Email: "staff@rootandbloom.test", Name: "Staff", Role: model.RoleAdmin}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		switch r.URL.Path {
		case "/v1/auth/login":
			var req loginRequest
			readJSON(t, r, &req)
			if req.Email == "staff@rootandbloom.test" && req.Password == "secret" {
				writeOK(w, http.StatusOK, authPayload{Token: "good-token", User: &user})
				return
			}
			writeErr(w, http.StatusUnauthorized, "invalid credentials")
		case "/v1/auth/me":
			if r.Header.Get("Authorization") == "Bearer good-token" {
				writeOK(w, http.StatusOK, user)
				return
			}
			writeErr(w, http.StatusUnauthorized, "unauthorized")
		default:
			writeErr(w, http.StatusNotFound, "not found")
		}
	}))
}

func TestSessionLoginSuccess(t *testing.T) {
	srv := authServer(t, nil)
	defer srv.Close()

	storage := &MemoryTokenStorage{}
	s := NewSessionStore(NewGateway(srv.URL), storage)
	require.NoError(t, s.Login(context.Background(), "staff@rootandbloom.test", "secret"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "good-token", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "Staff", s.User().Name)
	assert.Empty(t, s.Err())

	// Only the token is persisted.
	tok, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "good-token", tok)
}

func TestSessionLoginFailure(t *testing.T) {
	srv := authServer(t, nil)
	defer srv.Close()

	s := NewSessionStore(NewGateway(srv.URL), &MemoryTokenStorage{})
	err := s.Login(context.Background(), "staff@rootandbloom.test", "wrong")
	require.Error(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.Equal(t, "invalid credentials", s.Err())
}

func TestSessionFailedLoginKeepsPriorSession(t *testing.T) {
	srv := authServer(t, nil)
	defer srv.Close()

	s := NewSessionStore(NewGateway(srv.URL), &MemoryTokenStorage{})
	require.NoError(t, s.Login(context.Background(), "staff@rootandbloom.test", "secret"))

	require.Error(t, s.Login(context.Background(), "staff@rootandbloom.test", "wrong"))
	assert.Equal(t, "good-token", s.Token(), "a failed login must not tear down a valid session")
	assert.NotNil(t, s.User())
	assert.Equal(t, "invalid credentials", s.Err())
}

func TestSessionLoginThenLogoutRestoresInitialState(t *testing.T) {
	srv := authServer(t, nil)
	defer srv.Close()

	storage := &MemoryTokenStorage{}
	s := NewSessionStore(NewGateway(srv.URL), storage)
	require.NoError(t, s.Login(context.Background(), "staff@rootandbloom.test", "secret"))
	s.Logout()

	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Err())
	tok, _ := storage.Load()
	assert.Empty(t, tok, "logout clears the persisted token")
}

func TestVerifyAuthWithoutTokenMakesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	srv := authServer(t, &calls)
	defer srv.Close()

	s := NewSessionStore(NewGateway(srv.URL), &MemoryTokenStorage{})
	assert.False(t, s.VerifyAuth(context.Background()))
	assert.Equal(t, int64(0), calls.Load())
}

func TestVerifyAuthRejectedTokenPurgesSession(t *testing.T) {
	srv := authServer(t, nil)
	defer srv.Close()

	storage := &MemoryTokenStorage{}
	require.NoError(t, storage.Save("stale-token"))
	s := NewSessionStore(NewGateway(srv.URL), storage)
	require.Equal(t, "stale-token", s.Token(), "persisted token is loaded on construction")

	assert.False(t, s.VerifyAuth(context.Background()))
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	assert.False(t, s.IsAuthenticated())
	tok, _ := storage.Load()
	assert.Empty(t, tok)
}

func TestVerifyAuthRefreshesIdentity(t *testing.T) {
	srv := authServer(t, nil)
	defer srv.Close()

	storage := &MemoryTokenStorage{}
	require.NoError(t, storage.Save("good-token"))
	s := NewSessionStore(NewGateway(srv.URL), storage)

	// The loaded token alone does not make the session authenticated.
	assert.False(t, s.IsAuthenticated())

	assert.True(t, s.VerifyAuth(context.Background()))
	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, "staff@rootandbloom.test", s.User().Email)
}
