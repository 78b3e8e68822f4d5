package ports

import (
	"context"

	"github.com/bnema/insightly-cli/internal/domain"
)

type PreferenceRepository interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}
