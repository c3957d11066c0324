package application

import (
	"context"

	"github.com/oksasatya/go-ddd-identity/internal/domain/repository"
	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

type CreateUserInput struct {
	Email string
	Name  string
}

type CreateUserOutput struct {
	UserID user.ID
}

// CreateUserUseCase registers a new user. Calling it twice with the same
// input creates two users.
type CreateUserUseCase struct {
	repo repository.UserRepository
}

func NewCreateUserUseCase(repo repository.UserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{repo: repo}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, in CreateUserInput) (CreateUserOutput, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return CreateUserOutput{}, err
	}
	name, err := user.NewName(in.Name)
	if err != nil {
		return CreateUserOutput{}, err
	}

	u := user.Create(email, name)
	if err := uc.repo.Save(ctx, u); err != nil {
		return CreateUserOutput{}, upstream("save user", err)
	}
	return CreateUserOutput{UserID: u.ID()}, nil
}
