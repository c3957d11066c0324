package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-identity/internal/interface/middleware"
)

// Limits configures the Redis-backed limiters shared by the modules.
// A nil Store turns every limiter into a pass-through.
type Limits struct {
	Store  redis.Scripter
	Window time.Duration
	SignIn int
	API    int
	Allow  middleware.AllowFunc
	Logger *logrus.Logger
}

func (l Limits) limit(max int, key middleware.KeyFunc) gin.HandlerFunc {
	return middleware.RateLimit(l.Store, max, l.Window, key, l.Allow, l.Logger)
}
