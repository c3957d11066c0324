package oidc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/oksasatya/go-ddd-identity/internal/domain/service"
)

const defaultTimeout = 10 * time.Second

// Config describes the confidential client registered in the realm.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	HTTPClient   *http.Client
}

// Client exchanges credentials at the provider's token endpoint using the
// resource owner password grant.
type Client struct {
	oauth      oauth2.Config
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: hc,
		timeout:    timeout,
	}
}

func (c *Client) AuthorizeByPassword(ctx context.Context, username, password string, scope *string) (service.AuthorizationToken, error) {
	conf := c.oauth
	if scope != nil && *scope != "" {
		conf.Scopes = []string{*scope}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && credentialsRejected(re) {
			return service.AuthorizationToken{}, fmt.Errorf("%w: %w", service.ErrCredentialsRejected, err)
		}
		return service.AuthorizationToken{}, fmt.Errorf("password grant: %w", err)
	}

	return service.AuthorizationToken{
		AccessToken:      tok.AccessToken,
		ExpiresIn:        extraInt(tok, "expires_in"),
		RefreshToken:     tok.RefreshToken,
		RefreshExpiresIn: extraInt(tok, "refresh_expires_in"),
		TokenType:        tok.TokenType,
		NotBeforePolicy:  extraInt(tok, "not-before-policy"),
		SessionState:     extraString(tok, "session_state"),
		Scope:            extraString(tok, "scope"),
	}, nil
}

// credentialsRejected tells a user error apart from a client setup error.
// Misconfigured client id, secret or scope must not look like a wrong password.
func credentialsRejected(re *oauth2.RetrieveError) bool {
	if re.Response == nil {
		return false
	}
	switch re.Response.StatusCode {
	case http.StatusBadRequest:
		return re.ErrorCode == "invalid_grant"
	case http.StatusUnauthorized:
		return re.ErrorCode != "invalid_client"
	default:
		return false
	}
}

// extraInt reads a numeric field oauth2 does not map itself. JSON bodies
// decode numbers as float64, form bodies as int64 or string.
func extraInt(tok *oauth2.Token, key string) int {
	switch v := tok.Extra(key).(type) {
	case float64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

func extraString(tok *oauth2.Token, key string) string {
	if s, ok := tok.Extra(key).(string); ok {
		return s
	}
	return ""
}

var _ service.AuthService = (*Client)(nil)
