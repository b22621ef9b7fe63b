package identity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealerdesk/config"
	"dealerdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) service.IdentityProvider {
	cfg := &config.Config{}
	cfg.Identity.BaseURL = baseURL
	cfg.Identity.Timeout = 2 * time.Second

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_LoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "dealer@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access":  "acc-1",
			"refresh": "ref-1",
			"user":    map[string]any{"id": 7},
		})
	}))
	defer server.Close()

	grant, err := newTestClient(server.URL).Login(context.Background(), "dealer@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", grant.Access)
	assert.Equal(t, "ref-1", grant.Refresh)
	assert.JSONEq(t, `{"id":7}`, string(grant.User))
}

func TestClient_LoginRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "x@example.com", "bad")
	require.ErrorIs(t, err, service.ErrIdentityRejected)
}

func TestClient_LoginRejectsTokenlessOK(t *testing.T) {
	// Some identity deployments answer 200 with an error body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "account locked"})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "x@example.com", "pw")
	require.ErrorIs(t, err, service.ErrIdentityRejected)
}

func TestClient_LoginUnreachable(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").Login(context.Background(), "x@example.com", "pw")
	require.ErrorIs(t, err, service.ErrIdentityUnavailable)
}

func TestClient_RefreshSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/token/refresh", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ref-old", body["refresh"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access": "acc-new", "refresh": "ref-new"})
	}))
	defer server.Close()

	grant, err := newTestClient(server.URL).Refresh(context.Background(), "ref-old")
	require.NoError(t, err)
	assert.Equal(t, "acc-new", grant.Access)
	assert.Equal(t, "ref-new", grant.Refresh)
}

func TestClient_RefreshMissingBothTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Refresh(context.Background(), "ref-old")
	require.ErrorIs(t, err, service.ErrIdentityRejected)
}

func TestClient_FetchUserSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/user/", r.URL.Path)
		assert.Equal(t, "Bearer acc-1", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "email": "dealer@example.com"})
	}))
	defer server.Close()

	user, err := newTestClient(server.URL).FetchUser(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"email":"dealer@example.com"}`, string(user))
}

func TestClient_FetchUserInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchUser(context.Background(), "acc-1")
	require.ErrorIs(t, err, service.ErrIdentityRejected)
}
