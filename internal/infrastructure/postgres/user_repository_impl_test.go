package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

type fakeRow struct {
	values []string
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		*(d.(*string)) = r.values[i]
	}
	return nil
}

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	row     fakeRow
	execErr error
	execs   []execCall
	queries []execCall
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, execCall{sql: sql, args: args})
	return f.row
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	email, err := user.NewEmail("a@b.com")
	require.NoError(t, err)
	name, err := user.NewName("Al")
	require.NoError(t, err)
	return user.Create(email, name)
}

func TestFindByIDMapsRow(t *testing.T) {
	id := user.GenerateID()
	db := &fakeDB{row: fakeRow{values: []string{id.String(), "a@b.com", "Al"}}}

	u, err := NewUserRepository(db).FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID())
	assert.Equal(t, "a@b.com", u.Email().Value())
	assert.Equal(t, "Al", u.Name().Value())
	require.Len(t, db.queries, 1)
	assert.Equal(t, []any{id.String()}, db.queries[0].args)
}

func TestFindByIDAbsent(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	u, err := NewUserRepository(db).FindByID(context.Background(), user.GenerateID())
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFindByIDCorruptRow(t *testing.T) {
	id := user.GenerateID()
	db := &fakeDB{row: fakeRow{values: []string{id.String(), "not-an-email", "Al"}}}

	_, err := NewUserRepository(db).FindByID(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt user row")
}

func TestFindByIDScanFailure(t *testing.T) {
	boom := errors.New("conn reset")
	db := &fakeDB{row: fakeRow{err: boom}}

	_, err := NewUserRepository(db).FindByID(context.Background(), user.GenerateID())
	assert.ErrorIs(t, err, boom)
}

func TestSaveUpserts(t *testing.T) {
	db := &fakeDB{}
	u := newTestUser(t)

	require.NoError(t, NewUserRepository(db).Save(context.Background(), u))
	require.Len(t, db.execs, 1)
	assert.True(t, strings.Contains(db.execs[0].sql, "ON CONFLICT (id) DO UPDATE"))
	assert.Equal(t, []any{u.ID().String(), "a@b.com", "Al"}, db.execs[0].args)
}

func TestSaveWrapsFailure(t *testing.T) {
	boom := errors.New("unique violation")
	db := &fakeDB{execErr: boom}

	err := NewUserRepository(db).Save(context.Background(), newTestUser(t))
	assert.ErrorIs(t, err, boom)
}

func TestDelete(t *testing.T) {
	db := &fakeDB{}
	u := newTestUser(t)

	require.NoError(t, NewUserRepository(db).Delete(context.Background(), u))
	require.Len(t, db.execs, 1)
	assert.Contains(t, db.execs[0].sql, "DELETE FROM users")
	assert.Equal(t, []any{u.ID().String()}, db.execs[0].args)
}
