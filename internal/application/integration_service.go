package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports"
	"github.com/bnema/insightly-cli/internal/querycache"
)

type IntegrationService struct {
	api   ports.IntegrationAPI
	cache *querycache.Cache
}

func NewIntegrationService(api ports.IntegrationAPI, cache *querycache.Cache) *IntegrationService {
	return &IntegrationService{api: api, cache: cache}
}

func (s *IntegrationService) List(ctx context.Context) ([]domain.IntegrationAccount, error) {
	return querycache.Fetch(ctx, s.cache, KeyIntegrationList, StaleIntegrations, s.api.Integrations)
}

func (s *IntegrationService) ConnectGoogle(ctx context.Context, code string) (domain.GoogleConnection, error) {
	code, err := requireCode(code)
	if err != nil {
		return domain.GoogleConnection{}, err
	}

	conn, err := s.api.ConnectGoogle(ctx, code)
	if err != nil {
		return domain.GoogleConnection{}, err
	}
	s.cache.Invalidate(KeyIntegrationList)
	return conn, nil
}

func (s *IntegrationService) ConnectMeta(ctx context.Context, code string) (domain.MetaConnection, error) {
	code, err := requireCode(code)
	if err != nil {
		return domain.MetaConnection{}, err
	}

	conn, err := s.api.ConnectMeta(ctx, code)
	if err != nil {
		return domain.MetaConnection{}, err
	}
	s.cache.Invalidate(KeyIntegrationList)
	return conn, nil
}

func (s *IntegrationService) ConnectClarity(ctx context.Context, apiKey, projectID string) (domain.ClarityConnection, error) {
	apiKey = strings.TrimSpace(apiKey)
	projectID = strings.TrimSpace(projectID)
	if apiKey == "" || projectID == "" {
		return domain.ClarityConnection{}, errors.New("api key and project id are required")
	}

	conn, err := s.api.ConnectClarity(ctx, apiKey, projectID)
	if err != nil {
		return domain.ClarityConnection{}, err
	}
	s.cache.Invalidate(KeyIntegrationList)
	return conn, nil
}

// Disconnect removes provider. Its selections go stale along with the list.
func (s *IntegrationService) Disconnect(ctx context.Context, provider domain.Provider) error {
	provider, err := domain.ParseProvider(string(provider))
	if err != nil {
		return err
	}

	if err := s.api.Disconnect(ctx, provider); err != nil {
		return err
	}
	s.cache.Invalidate(KeyIntegrationList)
	s.cache.Invalidate(KeyGAProperties)
	s.cache.Invalidate(KeyMetaAccounts)
	return nil
}

func (s *IntegrationService) GAProperties(ctx context.Context) ([]domain.GAProperty, error) {
	return querycache.Fetch(ctx, s.cache, KeyGAProperties, StaleIntegrations, s.api.GAProperties)
}

func (s *IntegrationService) SelectGAProperties(ctx context.Context, propertyIDs []string) ([]domain.GAProperty, error) {
	ids, err := normalizeIDs(propertyIDs, "property")
	if err != nil {
		return nil, err
	}

	properties, err := s.api.SelectGAProperties(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(KeyGAProperties)
	return properties, nil
}

func (s *IntegrationService) MetaAccounts(ctx context.Context) ([]domain.MetaAdAccount, error) {
	return querycache.Fetch(ctx, s.cache, KeyMetaAccounts, StaleIntegrations, s.api.MetaAccounts)
}

func (s *IntegrationService) SelectMetaAccounts(ctx context.Context, accountIDs []string) ([]domain.MetaAdAccount, error) {
	ids, err := normalizeIDs(accountIDs, "ad account")
	if err != nil {
		return nil, err
	}

	accounts, err := s.api.SelectMetaAccounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(KeyMetaAccounts)
	return accounts, nil
}

func requireCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.New("authorization code is required")
	}
	return code, nil
}

// normalizeIDs trims ids and drops blanks and duplicates, keeping order.
func normalizeIDs(ids []string, kind string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one %s id is required", kind)
	}
	return out, nil
}
