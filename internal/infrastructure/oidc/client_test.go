package oidc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-identity/internal/domain/service"
)

const tokenBody = `{
	"access_token": "eyJ.access",
	"expires_in": 300,
	"refresh_token": "eyJ.refresh",
	"refresh_expires_in": 1800,
	"token_type": "Bearer",
	"not-before-policy": 0,
	"session_state": "7d1b-session",
	"scope": "user profile email"
}`

func newTokenServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthorizeByPassword(t *testing.T) {
	srv := newTokenServer(t, http.StatusOK, tokenBody, func(r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "CLEAN_ARCHITECTURE_IMPLEMENTATION", r.PostForm.Get("client_id"))
		assert.Equal(t, "s3cret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "u@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "pw", r.PostForm.Get("password"))
		assert.Equal(t, "user", r.PostForm.Get("scope"))
	})

	c := NewClient(Config{TokenURL: srv.URL, ClientID: "CLEAN_ARCHITECTURE_IMPLEMENTATION", ClientSecret: "s3cret"})
	scope := "user"
	tok, err := c.AuthorizeByPassword(context.Background(), "u@example.com", "pw", &scope)
	require.NoError(t, err)

	assert.Equal(t, service.AuthorizationToken{
		AccessToken:      "eyJ.access",
		ExpiresIn:        300,
		RefreshToken:     "eyJ.refresh",
		RefreshExpiresIn: 1800,
		TokenType:        "Bearer",
		NotBeforePolicy:  0,
		SessionState:     "7d1b-session",
		Scope:            "user profile email",
	}, tok)
}

func TestAuthorizeByPasswordOmitsNilScope(t *testing.T) {
	srv := newTokenServer(t, http.StatusOK, tokenBody, func(r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, present := r.PostForm["scope"]
		assert.False(t, present)
	})

	_, err := NewClient(Config{TokenURL: srv.URL, ClientID: "c"}).AuthorizeByPassword(context.Background(), "u", "p", nil)
	require.NoError(t, err)
}

func TestAuthorizeByPasswordRejected(t *testing.T) {
	srv := newTokenServer(t, http.StatusUnauthorized,
		`{"error":"invalid_grant","error_description":"Invalid user credentials"}`, nil)

	_, err := NewClient(Config{TokenURL: srv.URL, ClientID: "c"}).AuthorizeByPassword(context.Background(), "u", "bad", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrCredentialsRejected))
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestAuthorizeByPasswordProviderFailure(t *testing.T) {
	srv := newTokenServer(t, http.StatusInternalServerError, `{"error":"server_error"}`, nil)

	_, err := NewClient(Config{TokenURL: srv.URL, ClientID: "c"}).AuthorizeByPassword(context.Background(), "u", "p", nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrCredentialsRejected))
}

func TestAuthorizeByPasswordRejectedKeepsCause(t *testing.T) {
	srv := newTokenServer(t, http.StatusBadRequest,
		`{"error":"invalid_grant","error_description":"Invalid user credentials"}`, nil)

	_, err := NewClient(Config{TokenURL: srv.URL, ClientID: "c"}).AuthorizeByPassword(context.Background(), "u", "bad", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrCredentialsRejected))

	var re *oauth2.RetrieveError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusBadRequest, re.Response.StatusCode)
	assert.Equal(t, "invalid_grant", re.ErrorCode)
}

func TestAuthorizeByPasswordClientSetupErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"invalid scope", http.StatusBadRequest, `{"error":"invalid_scope"}`},
		{"unsupported grant", http.StatusBadRequest, `{"error":"unauthorized_client"}`},
		{"invalid client", http.StatusUnauthorized, `{"error":"invalid_client"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTokenServer(t, tc.status, tc.body, nil)

			_, err := NewClient(Config{TokenURL: srv.URL, ClientID: "c"}).AuthorizeByPassword(context.Background(), "u", "p", nil)
			require.Error(t, err)
			assert.False(t, errors.Is(err, service.ErrCredentialsRejected))

			var re *oauth2.RetrieveError
			assert.True(t, errors.As(err, &re))
		})
	}
}
