package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-identity/internal/domain/repository"
	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

const DefaultTTL = 5 * time.Minute

func userKey(id user.ID) string { return "user:profile:" + id.String() }

type cachedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func encodeUser(u *user.User) ([]byte, error) {
	return json.Marshal(cachedUser{ID: u.ID().String(), Email: u.Email().Value(), Name: u.Name().Value()})
}

func decodeUser(b []byte) (*user.User, error) {
	var c cachedUser
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	id, err := user.ParseID(c.ID)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(c.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(c.Name)
	if err != nil {
		return nil, err
	}
	return user.Reconstitute(id, email, name), nil
}

// UserRepository is a read-through Redis cache in front of another
// repository. Writes go to the inner repository first and then evict the
// cached entry. Redis failures never fail a call; they are logged and the
// inner repository answers instead.
type UserRepository struct {
	inner  repository.UserRepository
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *logrus.Logger
}

func NewUserRepository(inner repository.UserRepository, rdb redis.Cmdable, ttl time.Duration, logger *logrus.Logger) *UserRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &UserRepository{inner: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func (r *UserRepository) FindByID(ctx context.Context, id user.ID) (*user.User, error) {
	key := userKey(id)
	b, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		u, derr := decodeUser(b)
		if derr == nil {
			return u, nil
		}
		r.warn(derr, key, "drop undecodable cache entry")
		_ = r.rdb.Del(ctx, key).Err()
	case !errors.Is(err, redis.Nil):
		r.warn(err, key, "redis get failed")
	}

	u, err := r.inner.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	if b, err := encodeUser(u); err == nil {
		if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
			r.warn(err, key, "redis set failed")
		}
	}
	return u, nil
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	if err := r.inner.Save(ctx, u); err != nil {
		return err
	}
	r.evict(ctx, u.ID())
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, u *user.User) error {
	if err := r.inner.Delete(ctx, u); err != nil {
		return err
	}
	r.evict(ctx, u.ID())
	return nil
}

func (r *UserRepository) evict(ctx context.Context, id user.ID) {
	key := userKey(id)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.warn(err, key, "redis del failed")
	}
}

func (r *UserRepository) warn(err error, key, msg string) {
	if r.logger != nil {
		r.logger.WithError(err).WithField("key", key).Warn(msg)
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
