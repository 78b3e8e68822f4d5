package ports

import "context"

// CredentialStore owns the access/refresh pair of the current session.
type CredentialStore interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	// SetTokens persists both tokens. An empty refresh keeps the stored one.
	SetTokens(ctx context.Context, access, refresh string) error
	ClearTokens(ctx context.Context) error
}
