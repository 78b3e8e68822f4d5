package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/logging"
	"github.com/bnema/insightly-cli/internal/ports"
	"github.com/bnema/insightly-cli/internal/querycache"
)

// ErrLogoutNotConfirmed means local state was cleared but the server did not
// acknowledge the logout.
var ErrLogoutNotConfirmed = errors.New("server did not confirm logout")

type AuthService struct {
	api   ports.AuthAPI
	creds ports.CredentialStore
	cache *querycache.Cache
}

func NewAuthService(api ports.AuthAPI, creds ports.CredentialStore, cache *querycache.Cache) *AuthService {
	return &AuthService{api: api, creds: creds, cache: cache}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.LoginResult{}, errors.New("email is required")
	}
	if password == "" {
		return domain.LoginResult{}, errors.New("password is required")
	}

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return result, s.startSession(ctx, result)
}

// Register creates an account and signs it in. New accounts always go
// through onboarding, so IsNewUser is forced on.
func (s *AuthService) Register(ctx context.Context, registration domain.Registration) (domain.LoginResult, error) {
	registration.Username = strings.TrimSpace(registration.Username)
	registration.Email = strings.TrimSpace(registration.Email)
	if err := registration.Validate(); err != nil {
		return domain.LoginResult{}, err
	}

	result, err := s.api.Register(ctx, registration)
	if err != nil {
		return domain.LoginResult{}, err
	}
	result.IsNewUser = true
	return result, s.startSession(ctx, result)
}

func (s *AuthService) GoogleAuth(ctx context.Context, code string) (domain.LoginResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.LoginResult{}, errors.New("authorization code is required")
	}

	result, err := s.api.GoogleAuth(ctx, code)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return result, s.startSession(ctx, result)
}

func (s *AuthService) startSession(ctx context.Context, result domain.LoginResult) error {
	if err := s.creds.SetTokens(ctx, result.Tokens.Access, result.Tokens.Refresh); err != nil {
		return fmt.Errorf("store session tokens: %w", err)
	}

	user := result.User
	s.cache.Set(KeyUser, &user)
	logging.Debug().Int64("user_id", user.ID).Msg("session started")
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	if err := s.requireSession(ctx); err != nil {
		return nil, err
	}

	return querycache.Fetch(ctx, s.cache, KeyUser, StaleUser, func(ctx context.Context) (*domain.User, error) {
		user, err := s.api.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}
		return &user, nil
	})
}

func (s *AuthService) UpdateProfile(ctx context.Context, goal domain.Goal) (*domain.User, error) {
	goal, err := domain.ParseGoal(string(goal))
	if err != nil {
		return nil, err
	}
	if err := s.requireSession(ctx); err != nil {
		return nil, err
	}

	user, err := s.api.UpdateProfile(ctx, goal)
	if err != nil {
		return nil, err
	}

	s.cache.Set(KeyUser, &user)
	s.cache.Invalidate(KeyUser)
	return &user, nil
}

// Logout always clears local credentials and cached data. A server failure
// is reported wrapped in ErrLogoutNotConfirmed.
func (s *AuthService) Logout(ctx context.Context) error {
	refresh, err := s.creds.RefreshToken(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("could not read refresh token for logout")
	}

	var serverErr error
	if refresh != "" {
		serverErr = s.api.Logout(ctx, refresh)
	}

	s.cache.Clear()
	if err := s.creds.ClearTokens(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	if serverErr != nil {
		logging.Warn().Err(serverErr).Msg("server logout failed, signed out locally")
		return fmt.Errorf("%w: %w", ErrLogoutNotConfirmed, serverErr)
	}
	return nil
}

func (s *AuthService) requireSession(ctx context.Context) error {
	access, err := s.creds.AccessToken(ctx)
	if err != nil {
		return err
	}
	if access == "" {
		return domain.ErrNotAuthenticated
	}
	return nil
}
