package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

func TestCreateUserSavesOnce(t *testing.T) {
	repo := newFakeUserRepository()
	uc := NewCreateUserUseCase(repo)

	out, err := uc.Execute(context.Background(), CreateUserInput{Email: "a@b.com", Name: "Al"})
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]
	assert.Equal(t, "a@b.com", saved.Email().Value())
	assert.Equal(t, "Al", saved.Name().Value())
	assert.Equal(t, saved.ID(), out.UserID)
}

func TestCreateUserIsNotIdempotent(t *testing.T) {
	repo := newFakeUserRepository()
	uc := NewCreateUserUseCase(repo)

	first, err := uc.Execute(context.Background(), CreateUserInput{Email: "a@b.com", Name: "Al"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), CreateUserInput{Email: "a@b.com", Name: "Al"})
	require.NoError(t, err)

	assert.NotEqual(t, first.UserID, second.UserID)
	assert.Len(t, repo.users, 2)
}

func TestCreateUserValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     CreateUserInput
		reason user.Reason
	}{
		{name: "bad email", in: CreateUserInput{Email: "nope", Name: "Al"}, reason: user.ReasonInvalidEmail},
		{name: "bad name", in: CreateUserInput{Email: "a@b.com", Name: "<b>"}, reason: user.ReasonInvalidName},
		{name: "email checked first", in: CreateUserInput{Email: "", Name: ""}, reason: user.ReasonInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepository()
			_, err := NewCreateUserUseCase(repo).Execute(context.Background(), tt.in)

			var ve *user.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.reason, ve.Reason)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Empty(t, repo.saved)
		})
	}
}

func TestCreateUserPropagatesRepositoryFailure(t *testing.T) {
	boom := errors.New("connection refused")
	repo := newFakeUserRepository()
	repo.saveErr = boom

	_, err := NewCreateUserUseCase(repo).Execute(context.Background(), CreateUserInput{Email: "a@b.com", Name: "Al"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, KindUpstream, KindOf(err))
	assert.Len(t, repo.saved, 1)
}
