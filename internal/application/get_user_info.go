package application

import (
	"context"

	"github.com/oksasatya/go-ddd-identity/internal/domain/repository"
	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

type GetUserInfoInput struct {
	UserID string
}

type GetUserInfoOutput struct {
	UserID user.ID
	Email  string
	Name   string
}

// GetUserInfoUseCase looks a user up by id. Read only.
type GetUserInfoUseCase struct {
	repo repository.UserRepository
}

func NewGetUserInfoUseCase(repo repository.UserRepository) *GetUserInfoUseCase {
	return &GetUserInfoUseCase{repo: repo}
}

func (uc *GetUserInfoUseCase) Execute(ctx context.Context, in GetUserInfoInput) (GetUserInfoOutput, error) {
	id, err := user.ParseID(in.UserID)
	if err != nil {
		return GetUserInfoOutput{}, err
	}

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return GetUserInfoOutput{}, upstream("find user", err)
	}
	if u == nil {
		return GetUserInfoOutput{}, &UserNotFoundError{UserID: id}
	}

	return GetUserInfoOutput{
		UserID: u.ID(),
		Email:  u.Email().Value(),
		Name:   u.Name().Value(),
	}, nil
}
