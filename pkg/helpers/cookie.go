package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// sessionMargin makes the cookie expire before the provider session does.
const sessionMargin = 180

type Manager struct {
	Name   string
	Domain string
	Secure bool
}

func NewCookie(name, domain string, secure bool) *Manager {
	return &Manager{Name: name, Domain: domain, Secure: secure}
}

// SetAccessToken stores the provider access token in an HttpOnly cookie.
// expiresIn is the token lifetime in seconds as reported by the provider.
func (m *Manager) SetAccessToken(c *gin.Context, token string, expiresIn int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, token, MaxAgeFor(expiresIn), "/", m.Domain, m.Secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, "", -1, "/", m.Domain, m.Secure, true)
}

// MaxAgeFor returns the cookie max-age for a token living expiresIn seconds.
// A token too short-lived for the margin gets -1, which gin sends as
// Max-Age=0 so the browser drops the cookie at once.
func MaxAgeFor(expiresIn int) int {
	sec := expiresIn - sessionMargin
	if sec <= 0 {
		return -1
	}
	return sec
}
