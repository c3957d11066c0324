package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-identity/internal/interface/http"
	"github.com/oksasatya/go-ddd-identity/internal/interface/middleware"
)

// AuthModule serves the public auth routes:
//
//	POST /api/v1/auth/sign-in   limited per IP and route to slow down password guessing
//	POST /api/v1/auth/sign-out  clears the auth cookie
type AuthModule struct {
	Handler *handlers.AuthHandler
	Limits  Limits
}

func NewAuthModule(h *handlers.AuthHandler, limits Limits) *AuthModule {
	return &AuthModule{Handler: h, Limits: limits}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signInLimiter := m.Limits.limit(m.Limits.SignIn, middleware.KeyByIPAndPath())
	rg.POST("/v1/auth/sign-in", signInLimiter, m.Handler.SignIn)
	rg.POST("/v1/auth/sign-out", m.Limits.limit(m.Limits.API, middleware.KeyByIP()), m.Handler.SignOut)
}
