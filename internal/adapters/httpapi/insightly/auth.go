package insightly

import (
	"context"

	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	"github.com/bnema/insightly-cli/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleAuthRequest struct {
	Code string `json:"code"`
}

type profileRequest struct {
	PrimaryGoal domain.Goal `json:"primary_goal,omitempty"`
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

func (a *API) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	return post[domain.LoginResult](ctx, a, "/auth/login/", loginRequest{Email: email, Password: password})
}

func (a *API) Register(ctx context.Context, registration domain.Registration) (domain.LoginResult, error) {
	return post[domain.LoginResult](ctx, a, "/auth/register/", registration)
}

func (a *API) GoogleAuth(ctx context.Context, code string) (domain.LoginResult, error) {
	return post[domain.LoginResult](ctx, a, "/auth/google/", googleAuthRequest{Code: code})
}

func (a *API) CurrentUser(ctx context.Context) (domain.User, error) {
	return get[domain.User](ctx, a, "/auth/user/", nil)
}

func (a *API) UpdateProfile(ctx context.Context, goal domain.Goal) (domain.User, error) {
	return patch[domain.User](ctx, a, "/auth/profile/", profileRequest{PrimaryGoal: goal})
}

func (a *API) Logout(ctx context.Context, refreshToken string) error {
	resp, err := a.client.Post(ctx, "/auth/logout/", logoutRequest{Refresh: refreshToken})
	if err != nil {
		return err
	}
	return httpapi.Check(resp)
}
