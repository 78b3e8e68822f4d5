package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports"
)

const (
	AccessTokenKey  = "insightly/access_token"
	RefreshTokenKey = "insightly/refresh_token"
)

// Store keeps the session token pair in a SecretStore with an in-memory
// copy. The copy is loaded once and then kept in step with every write.
type Store struct {
	secrets ports.SecretStore
	clock   ports.Clock

	mu     sync.RWMutex
	loaded bool
	creds  domain.Credentials
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(secrets ports.SecretStore, clock ports.Clock) *Store {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Store{secrets: secrets, clock: clock}
}

func (s *Store) Credentials(ctx context.Context) (domain.Credentials, error) {
	s.mu.RLock()
	if s.loaded {
		creds := s.creds
		s.mu.RUnlock()
		return creds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return domain.Credentials{}, err
	}
	return s.creds, nil
}

func (s *Store) AccessToken(ctx context.Context) (string, error) {
	creds, err := s.Credentials(ctx)
	return creds.Access, err
}

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	creds, err := s.Credentials(ctx)
	return creds.Refresh, err
}

func (s *Store) IsAuthenticated(ctx context.Context) bool {
	creds, err := s.Credentials(ctx)
	return err == nil && creds.Access != ""
}

func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	access = strings.TrimSpace(access)
	refresh = strings.TrimSpace(refresh)
	if access == "" {
		return errors.New("access token is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return err
	}

	if err := s.secrets.Put(ctx, AccessTokenKey, access); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	s.creds.Access = access

	if refresh != "" {
		if err := s.secrets.Put(ctx, RefreshTokenKey, refresh); err != nil {
			return fmt.Errorf("store refresh token: %w", err)
		}
		s.creds.Refresh = refresh
	}

	return nil
}

// ClearTokens forgets the pair in memory even when a backend delete fails.
func (s *Store) ClearTokens(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = domain.Credentials{}
	s.loaded = true

	var errs []error
	for _, key := range []string{AccessTokenKey, RefreshTokenKey} {
		if err := s.secrets.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Store) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	access, err := s.readSecret(ctx, AccessTokenKey)
	if err != nil {
		return err
	}
	refresh, err := s.readSecret(ctx, RefreshTokenKey)
	if err != nil {
		return err
	}

	s.creds = domain.Credentials{Access: access, Refresh: refresh}
	s.loaded = true
	return nil
}

func (s *Store) readSecret(ctx context.Context, key string) (string, error) {
	value, err := s.secrets.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return strings.TrimSpace(value), nil
}

// Session describes the stored access token without verifying it.
type Session struct {
	Authenticated bool
	HasRefresh    bool
	Subject       string
	ExpiresAt     *time.Time
	Expired       bool
}

// Session decodes the access token claims for display. Tokens that are not
// JWTs report an unknown subject and expiry.
func (s *Store) Session(ctx context.Context) (Session, error) {
	creds, err := s.Credentials(ctx)
	if err != nil {
		return Session{}, err
	}

	session := Session{Authenticated: creds.Access != "", HasRefresh: creds.Refresh != ""}
	if !session.Authenticated {
		return session, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(creds.Access, claims); err != nil {
		return session, nil
	}

	session.Subject = subjectOf(claims)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt := exp.Time
		session.ExpiresAt = &expiresAt
		session.Expired = !s.clock.Now().Before(expiresAt)
	}

	return session, nil
}

func subjectOf(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	// SimpleJWT puts the user id in user_id
	switch userID := claims["user_id"].(type) {
	case string:
		return userID
	case float64:
		return fmt.Sprintf("%.0f", userID)
	}
	return ""
}
