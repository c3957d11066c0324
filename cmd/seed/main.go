package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-identity/config"
	"github.com/oksasatya/go-ddd-identity/internal/application"
	pginfra "github.com/oksasatya/go-ddd-identity/internal/infrastructure/postgres"
	"github.com/oksasatya/go-ddd-identity/pkg/helpers"
)

// seed registers a demo user through the same use case the API uses, so the
// row passes the email and name rules.
func main() {
	email := flag.String("email", "demo@example.com", "email of the seeded user")
	name := flag.String("name", "demoUser", "name of the seeded user")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	create := application.NewCreateUserUseCase(pginfra.NewUserRepository(pool))
	out, err := create.Execute(ctx, application.CreateUserInput{Email: *email, Name: *name})
	if err != nil {
		logger.WithError(err).WithField("kind", application.KindOf(err).String()).Fatal("failed to seed user")
	}
	helpers.LogInfo(logger, "seeded user", logrus.Fields{
		"user_id": out.UserID.String(),
		"email":   *email,
		"name":    *name,
	})
}
