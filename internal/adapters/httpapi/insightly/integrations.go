package insightly

import (
	"context"
	"fmt"

	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	"github.com/bnema/insightly-cli/internal/domain"
)

type connectRequest struct {
	Code string `json:"code"`
}

type connectClarityRequest struct {
	APIKey    string `json:"api_key"`
	ProjectID string `json:"project_id"`
}

type selectPropertiesRequest struct {
	PropertyIDs []string `json:"property_ids"`
}

type selectAccountsRequest struct {
	AccountIDs []string `json:"account_ids"`
}

func (a *API) Integrations(ctx context.Context) ([]domain.IntegrationAccount, error) {
	return get[[]domain.IntegrationAccount](ctx, a, "/integrations/", nil)
}

func (a *API) ConnectGoogle(ctx context.Context, code string) (domain.GoogleConnection, error) {
	return post[domain.GoogleConnection](ctx, a, "/integrations/google/connect/", connectRequest{Code: code})
}

func (a *API) ConnectMeta(ctx context.Context, code string) (domain.MetaConnection, error) {
	return post[domain.MetaConnection](ctx, a, "/integrations/meta/connect/", connectRequest{Code: code})
}

func (a *API) ConnectClarity(ctx context.Context, apiKey, projectID string) (domain.ClarityConnection, error) {
	return post[domain.ClarityConnection](ctx, a, "/integrations/clarity/connect/", connectClarityRequest{APIKey: apiKey, ProjectID: projectID})
}

func (a *API) Disconnect(ctx context.Context, provider domain.Provider) error {
	if _, err := domain.ParseProvider(string(provider)); err != nil {
		return err
	}
	resp, err := a.client.Delete(ctx, fmt.Sprintf("/integrations/%s/disconnect/", provider))
	if err != nil {
		return err
	}
	return httpapi.Check(resp)
}

func (a *API) GAProperties(ctx context.Context) ([]domain.GAProperty, error) {
	return get[[]domain.GAProperty](ctx, a, "/ga/properties/", nil)
}

func (a *API) SelectGAProperties(ctx context.Context, propertyIDs []string) ([]domain.GAProperty, error) {
	return post[[]domain.GAProperty](ctx, a, "/ga/properties/select/", selectPropertiesRequest{PropertyIDs: propertyIDs})
}

func (a *API) MetaAccounts(ctx context.Context) ([]domain.MetaAdAccount, error) {
	return get[[]domain.MetaAdAccount](ctx, a, "/meta/accounts/", nil)
}

func (a *API) SelectMetaAccounts(ctx context.Context, accountIDs []string) ([]domain.MetaAdAccount, error) {
	return post[[]domain.MetaAdAccount](ctx, a, "/meta/accounts/select/", selectAccountsRequest{AccountIDs: accountIDs})
}
