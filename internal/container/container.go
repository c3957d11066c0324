package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-identity/config"
	"github.com/oksasatya/go-ddd-identity/internal/application"
	"github.com/oksasatya/go-ddd-identity/internal/domain/repository"
	"github.com/oksasatya/go-ddd-identity/internal/domain/service"
	"github.com/oksasatya/go-ddd-identity/internal/infrastructure/cache"
	"github.com/oksasatya/go-ddd-identity/pkg/helpers"
)

// Container holds the components built once at startup. It is passed to the
// router explicitly; nothing here is global.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	// Optional. Nil disables the profile cache and rate limiting.
	Redis *redis.Client
	// Optional. Nil disables welcome emails.
	Queue *helpers.RabbitQueue

	Users repository.UserRepository
	Auth  service.AuthService

	CreateUser  *application.CreateUserUseCase
	GetUserInfo *application.GetUserInfoUseCase
	SignIn      *application.SignInUseCase
}

type Option func(*Container)

// WithRedis enables the read-through profile cache and the rate limiters.
func WithRedis(rdb *redis.Client) Option {
	return func(c *Container) { c.Redis = rdb }
}

func WithQueue(q *helpers.RabbitQueue) Option {
	return func(c *Container) { c.Queue = q }
}

// New wires the use cases on top of the given ports.
func New(cfg *config.Config, logger *logrus.Logger, users repository.UserRepository, auth service.AuthService, opts ...Option) *Container {
	c := &Container{Config: cfg, Logger: logger, Users: users, Auth: auth}
	for _, opt := range opts {
		opt(c)
	}
	if c.Redis != nil {
		c.Users = cache.NewUserRepository(users, c.Redis, cfg.UserCacheTTL, logger)
	}

	c.CreateUser = application.NewCreateUserUseCase(c.Users)
	c.GetUserInfo = application.NewGetUserInfoUseCase(c.Users)
	c.SignIn = application.NewSignInUseCase(c.Auth)
	return c
}

// RateStore returns the Redis client as a limiter backend, or a nil interface
// when Redis is not configured so the limiters pass through.
func (c *Container) RateStore() redis.Scripter {
	if c.Redis == nil {
		return nil
	}
	return c.Redis
}
