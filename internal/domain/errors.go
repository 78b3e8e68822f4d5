package domain

import "errors"

var (
	ErrSecretNotFound   = errors.New("secret not found")
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrInvalidStatus   = errors.New("invalid insight status")
	ErrInvalidSeverity = errors.New("invalid insight severity")
	ErrInvalidGoal     = errors.New("invalid primary goal")
	ErrInvalidProvider = errors.New("invalid integration provider")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrUnknownFeature  = errors.New("unknown feature flag")
)
