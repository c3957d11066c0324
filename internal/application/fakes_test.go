package application

import (
	"context"

	"github.com/oksasatya/go-ddd-identity/internal/domain/service"
	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

type fakeUserRepository struct {
	users     map[user.ID]*user.User
	saved     []*user.User
	deleted   []*user.User
	findCalls int
	saveErr   error
	findErr   error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[user.ID]*user.User{}}
}

func (r *fakeUserRepository) FindByID(_ context.Context, id user.ID) (*user.User, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users[id], nil
}

func (r *fakeUserRepository) Save(_ context.Context, u *user.User) error {
	r.saved = append(r.saved, u)
	if r.saveErr != nil {
		return r.saveErr
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, u *user.User) error {
	r.deleted = append(r.deleted, u)
	delete(r.users, u.ID())
	return nil
}

type stubAuthService struct {
	token service.AuthorizationToken
	err   error

	gotUsername string
	gotPassword string
	gotScope    *string
	calls       int
}

func (s *stubAuthService) AuthorizeByPassword(_ context.Context, username, password string, scope *string) (service.AuthorizationToken, error) {
	s.calls++
	s.gotUsername, s.gotPassword, s.gotScope = username, password, scope
	if s.err != nil {
		return service.AuthorizationToken{}, s.err
	}
	return s.token, nil
}
