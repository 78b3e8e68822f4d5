package ports

import (
	"context"

	"github.com/bnema/insightly-cli/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.LoginResult, error)
	Register(ctx context.Context, registration domain.Registration) (domain.LoginResult, error)
	GoogleAuth(ctx context.Context, code string) (domain.LoginResult, error)
	CurrentUser(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, goal domain.Goal) (domain.User, error)
	Logout(ctx context.Context, refreshToken string) error
}
