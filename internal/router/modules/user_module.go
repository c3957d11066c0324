package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-identity/internal/interface/http"
	"github.com/oksasatya/go-ddd-identity/internal/interface/middleware"
)

// UserModule serves the user resource. Both routes need the "user" scope:
//
//	POST /api/v1/users
//	GET  /api/v1/users/:userId
type UserModule struct {
	Handler    *handlers.UserHandler
	CookieName string
	Limits     Limits
}

func NewUserModule(h *handlers.UserHandler, cookieName string, limits Limits) *UserModule {
	return &UserModule{Handler: h, CookieName: cookieName, Limits: limits}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/v1/users")
	users.Use(
		m.Limits.limit(m.Limits.API, middleware.KeyByIP()),
		middleware.RequireScope(m.CookieName, handlers.ScopeUser),
	)
	{
		users.POST("", m.Handler.CreateUser)
		users.GET("/:userId", m.Handler.GetUser)
	}
}
