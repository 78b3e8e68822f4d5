package ports

import (
	"context"

	"github.com/bnema/insightly-cli/internal/domain"
)

type IntegrationAPI interface {
	Integrations(ctx context.Context) ([]domain.IntegrationAccount, error)
	ConnectGoogle(ctx context.Context, code string) (domain.GoogleConnection, error)
	ConnectMeta(ctx context.Context, code string) (domain.MetaConnection, error)
	ConnectClarity(ctx context.Context, apiKey, projectID string) (domain.ClarityConnection, error)
	Disconnect(ctx context.Context, provider domain.Provider) error
	GAProperties(ctx context.Context) ([]domain.GAProperty, error)
	SelectGAProperties(ctx context.Context, propertyIDs []string) ([]domain.GAProperty, error)
	MetaAccounts(ctx context.Context) ([]domain.MetaAdAccount, error)
	SelectMetaAccounts(ctx context.Context, accountIDs []string) ([]domain.MetaAdAccount, error)
}
