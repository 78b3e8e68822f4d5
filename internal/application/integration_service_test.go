package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports/mocks"
	"github.com/bnema/insightly-cli/internal/querycache"
)

func seededIntegrationCache() *querycache.Cache {
	cache := querycache.New()
	cache.Set(KeyIntegrationList, []domain.IntegrationAccount{{ID: 1, Provider: domain.ProviderGoogle}})
	cache.Set(KeyGAProperties, []domain.GAProperty{{ID: 1, PropertyID: "123"}})
	cache.Set(KeyMetaAccounts, []domain.MetaAdAccount{{ID: 1, AdAccountID: "act_1"}})
	return cache
}

func TestIntegrationServiceListIsCached(t *testing.T) {
	api := mocks.NewMockIntegrationAPI(t)
	service := NewIntegrationService(api, querycache.New())

	api.EXPECT().Integrations(mockAnyContext()).Return([]domain.IntegrationAccount{{ID: 3}}, nil).Once()

	for i := 0; i < 2; i++ {
		list, err := service.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)
	}
}

func TestIntegrationServiceConnectInvalidatesList(t *testing.T) {
	api := mocks.NewMockIntegrationAPI(t)
	cache := seededIntegrationCache()
	service := NewIntegrationService(api, cache)

	api.EXPECT().ConnectGoogle(mockAnyContext(), "google-code").Return(domain.GoogleConnection{}, nil)
	api.EXPECT().ConnectMeta(mockAnyContext(), "meta-code").Return(domain.MetaConnection{}, nil)
	api.EXPECT().ConnectClarity(mockAnyContext(), "key", "proj").Return(domain.ClarityConnection{}, nil)

	_, err := service.ConnectGoogle(context.Background(), " google-code ")
	require.NoError(t, err)
	_, err = service.ConnectMeta(context.Background(), "meta-code")
	require.NoError(t, err)
	_, err = service.ConnectClarity(context.Background(), "key", "proj")
	require.NoError(t, err)

	assert.True(t, cache.IsStale(KeyIntegrationList, time.Hour))
	assert.False(t, cache.IsStale(KeyGAProperties, time.Hour))
	assert.False(t, cache.IsStale(KeyMetaAccounts, time.Hour))
}

func TestIntegrationServiceConnectValidatesInput(t *testing.T) {
	service := NewIntegrationService(mocks.NewMockIntegrationAPI(t), querycache.New())

	_, err := service.ConnectGoogle(context.Background(), "")
	require.Error(t, err)
	_, err = service.ConnectClarity(context.Background(), "key", " ")
	require.Error(t, err)
}

func TestIntegrationServiceDisconnectInvalidatesSelections(t *testing.T) {
	api := mocks.NewMockIntegrationAPI(t)
	cache := seededIntegrationCache()
	service := NewIntegrationService(api, cache)

	api.EXPECT().Disconnect(mockAnyContext(), domain.ProviderMeta).Return(nil)

	require.NoError(t, service.Disconnect(context.Background(), "META"))
	assert.True(t, cache.IsStale(KeyIntegrationList, time.Hour))
	assert.True(t, cache.IsStale(KeyGAProperties, time.Hour))
	assert.True(t, cache.IsStale(KeyMetaAccounts, time.Hour))
}

func TestIntegrationServiceDisconnectFailureKeepsCache(t *testing.T) {
	api := mocks.NewMockIntegrationAPI(t)
	cache := seededIntegrationCache()
	service := NewIntegrationService(api, cache)

	api.EXPECT().Disconnect(mockAnyContext(), domain.ProviderGoogle).Return(errors.New("Integration not found"))

	require.EqualError(t, service.Disconnect(context.Background(), domain.ProviderGoogle), "Integration not found")
	assert.False(t, cache.IsStale(KeyIntegrationList, time.Hour))

	require.ErrorIs(t, service.Disconnect(context.Background(), "tiktok"), domain.ErrInvalidProvider)
}

func TestIntegrationServiceSelectGAPropertiesNormalizesIDs(t *testing.T) {
	api := mocks.NewMockIntegrationAPI(t)
	cache := seededIntegrationCache()
	service := NewIntegrationService(api, cache)

	api.EXPECT().SelectGAProperties(mockAnyContext(), []string{"123", "456"}).Return([]domain.GAProperty{{PropertyID: "123"}, {PropertyID: "456"}}, nil)

	properties, err := service.SelectGAProperties(context.Background(), []string{" 123", "", "456", "123"})
	require.NoError(t, err)
	assert.Len(t, properties, 2)
	assert.True(t, cache.IsStale(KeyGAProperties, time.Hour))
	assert.False(t, cache.IsStale(KeyMetaAccounts, time.Hour))

	_, err = service.SelectGAProperties(context.Background(), []string{" "})
	require.Error(t, err)
}

func TestIntegrationServiceSelectMetaAccountsInvalidatesAccounts(t *testing.T) {
	api := mocks.NewMockIntegrationAPI(t)
	cache := seededIntegrationCache()
	service := NewIntegrationService(api, cache)

	api.EXPECT().SelectMetaAccounts(mockAnyContext(), []string{"act_1"}).Return([]domain.MetaAdAccount{{AdAccountID: "act_1"}}, nil)

	_, err := service.SelectMetaAccounts(context.Background(), []string{"act_1"})
	require.NoError(t, err)
	assert.True(t, cache.IsStale(KeyMetaAccounts, time.Hour))
	assert.False(t, cache.IsStale(KeyGAProperties, time.Hour))
}

func TestIntegrationServiceListsSelections(t *testing.T) {
	api := mocks.NewMockIntegrationAPI(t)
	service := NewIntegrationService(api, querycache.New())

	api.EXPECT().GAProperties(mockAnyContext()).Return([]domain.GAProperty{{PropertyID: "1"}}, nil)
	api.EXPECT().MetaAccounts(mockAnyContext()).Return([]domain.MetaAdAccount{{AdAccountID: "act_9"}}, nil)

	properties, err := service.GAProperties(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", properties[0].PropertyID)

	accounts, err := service.MetaAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "act_9", accounts[0].AdAccountID)
}
