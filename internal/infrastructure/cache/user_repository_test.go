package cache

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

type memRepo struct {
	users map[user.ID]*user.User
	finds int
	err   error
}

func newMemRepo() *memRepo { return &memRepo{users: map[user.ID]*user.User{}} }

func (m *memRepo) FindByID(_ context.Context, id user.ID) (*user.User, error) {
	m.finds++
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *memRepo) Save(_ context.Context, u *user.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[u.ID()] = u
	return nil
}

func (m *memRepo) Delete(_ context.Context, u *user.User) error {
	if m.err != nil {
		return m.err
	}
	delete(m.users, u.ID())
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sampleUser(t *testing.T) *user.User {
	t.Helper()
	email, err := user.NewEmail("a@b.com")
	require.NoError(t, err)
	name, err := user.NewName("Al")
	require.NoError(t, err)
	return user.Create(email, name)
}

// unreachable points at a closed port so every command fails fast.
func unreachable() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestEncodeDecodeUser(t *testing.T) {
	u := sampleUser(t)
	b, err := encodeUser(u)
	require.NoError(t, err)

	got, err := decodeUser(b)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.ID())
	assert.Equal(t, u.Email(), got.Email())
	assert.Equal(t, u.Name(), got.Name())
}

func TestDecodeUserRejectsInvalidPayload(t *testing.T) {
	_, err := decodeUser([]byte(`{"id":"x","email":"a@b.com","name":"Al"}`))
	assert.Error(t, err)
	_, err = decodeUser([]byte(`not json`))
	assert.Error(t, err)
}

func TestFallsBackWhenRedisIsDown(t *testing.T) {
	rdb := unreachable()
	defer func() { _ = rdb.Close() }()

	inner := newMemRepo()
	repo := NewUserRepository(inner, rdb, time.Minute, quietLogger())
	u := sampleUser(t)

	require.NoError(t, repo.Save(context.Background(), u))
	got, err := repo.FindByID(context.Background(), u.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equals(u))
	assert.Equal(t, 1, inner.finds)

	require.NoError(t, repo.Delete(context.Background(), u))
	gone, err := repo.FindByID(context.Background(), u.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestInnerErrorsAreReturned(t *testing.T) {
	rdb := unreachable()
	defer func() { _ = rdb.Close() }()

	boom := errors.New("db down")
	inner := newMemRepo()
	inner.err = boom
	repo := NewUserRepository(inner, rdb, 0, quietLogger())

	_, err := repo.FindByID(context.Background(), user.GenerateID())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.Save(context.Background(), sampleUser(t)), boom)
}

func TestReadThroughAgainstRedis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer func() { _ = rdb.Close() }()

	inner := newMemRepo()
	repo := NewUserRepository(inner, rdb, time.Minute, quietLogger())
	u := sampleUser(t)
	require.NoError(t, repo.Save(ctx, u))

	for i := 0; i < 3; i++ {
		got, err := repo.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.True(t, got.Equals(u))
	}
	assert.Equal(t, 1, inner.finds)

	require.NoError(t, repo.Delete(ctx, u))
	n, err := rdb.Exists(ctx, userKey(u.ID())).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}
