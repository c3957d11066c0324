package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-ddd-identity/internal/domain/repository"
	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

// DBTX is the subset of *pgxpool.Pool (and pgx.Tx) the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const (
	findUserByIDSQL = `
		SELECT id::text, email, name
		FROM users
		WHERE id = $1
	`
	upsertUserSQL = `
		INSERT INTO users (id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, updated_at = now()
	`
	deleteUserSQL = `
		DELETE FROM users
		WHERE id = $1
	`
)

func (r *UserRepository) FindByID(ctx context.Context, id user.ID) (*user.User, error) {
	var rec userRecord
	row := r.db.QueryRow(ctx, findUserByIDSQL, id.String())
	if err := row.Scan(&rec.ID, &rec.Email, &rec.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %s: %w", id, err)
	}
	return rec.toDomain()
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	rec := recordFromUser(u)
	if _, err := r.db.Exec(ctx, upsertUserSQL, rec.ID, rec.Email, rec.Name); err != nil {
		return fmt.Errorf("upsert user %s: %w", rec.ID, err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, u *user.User) error {
	if _, err := r.db.Exec(ctx, deleteUserSQL, u.ID().String()); err != nil {
		return fmt.Errorf("delete user %s: %w", u.ID(), err)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
