package application

import (
	"context"

	"github.com/oksasatya/go-ddd-identity/internal/domain/service"
)

type SignInInput struct {
	Username string
	Password string
	Scope    *string
}

type SignInOutput struct {
	AccessToken      string
	ExpiresIn        int
	RefreshToken     string
	RefreshExpiresIn int
	TokenType        string
	NotBeforePolicy  int
	SessionState     string
	Scope            string
}

// SignInUseCase delegates the credential exchange to the identity provider
// and republishes the token bundle unchanged. Nothing is stored locally.
type SignInUseCase struct {
	auth service.AuthService
}

func NewSignInUseCase(auth service.AuthService) *SignInUseCase {
	return &SignInUseCase{auth: auth}
}

func (uc *SignInUseCase) Execute(ctx context.Context, in SignInInput) (SignInOutput, error) {
	tok, err := uc.auth.AuthorizeByPassword(ctx, in.Username, in.Password, in.Scope)
	if err != nil {
		return SignInOutput{}, upstream("authorize by password", err)
	}
	return SignInOutput{
		AccessToken:      tok.AccessToken,
		ExpiresIn:        tok.ExpiresIn,
		RefreshToken:     tok.RefreshToken,
		RefreshExpiresIn: tok.RefreshExpiresIn,
		TokenType:        tok.TokenType,
		NotBeforePolicy:  tok.NotBeforePolicy,
		SessionState:     tok.SessionState,
		Scope:            tok.Scope,
	}, nil
}
