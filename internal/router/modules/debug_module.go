package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-identity/internal/interface/middleware"
)

type DebugModule struct {
	Limits Limits
}

func NewDebugModule(limits Limits) *DebugModule { return &DebugModule{Limits: limits} }

// Register mounts expvar at /api/debug/vars, rate-limited per IP.
func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := m.Limits.limit(m.Limits.API, middleware.KeyByIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
