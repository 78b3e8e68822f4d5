package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/insightly-cli/internal/adapters/credentials"
	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	"github.com/bnema/insightly-cli/internal/adapters/httpapi/insightly"
	tomlrepo "github.com/bnema/insightly-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/insightly-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/insightly-cli/internal/adapters/secrets/file"
	"github.com/bnema/insightly-cli/internal/application"
	"github.com/bnema/insightly-cli/internal/config"
	"github.com/bnema/insightly-cli/internal/logging"
	"github.com/bnema/insightly-cli/internal/notifications"
	"github.com/bnema/insightly-cli/internal/ports"
	"github.com/bnema/insightly-cli/internal/querycache"
	"github.com/bnema/insightly-cli/internal/version"
)

type app struct {
	cfg          config.Config
	client       *httpapi.Client
	credentials  *credentials.Store
	cache        *querycache.Cache
	auth         *application.AuthService
	insights     *application.InsightService
	coordinator  *application.StatusCoordinator
	integrations *application.IntegrationService
	preferences  *application.PreferenceService
	notices      *notifications.Center
	now          func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	secretStore, err := newSecretStore(cfg.Secrets)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	creds := credentials.NewStore(secretStore, clock)

	client, err := httpapi.NewClient(httpapi.Options{
		BaseURL:     cfg.API.BaseURL,
		Credentials: creds,
		Timeout:     cfg.API.Timeout,
		RateLimit:   cfg.API.RateLimit,
		Breaker:     cfg.API.BreakerEnabled,
		UserAgent:   "insightly-cli/" + version.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	notices := notifications.NewCenter(notifications.WithClock(clock))
	client.Subscribe(notices.HandleEvent)

	prefsRepo, err := tomlrepo.NewPreferenceRepository(cfg.Preferences.Path)
	if err != nil {
		return nil, fmt.Errorf("wire preference repository: %w", err)
	}

	api := insightly.New(client)
	cache := application.NewQueryCache(querycache.WithClock(clock))

	return &app{
		cfg:          cfg,
		client:       client,
		credentials:  creds,
		cache:        cache,
		auth:         application.NewAuthService(api, creds, cache),
		insights:     application.NewInsightService(api, cache, clock),
		coordinator:  application.NewStatusCoordinator(api, cache, clock),
		integrations: application.NewIntegrationService(api, cache),
		preferences:  application.NewPreferenceService(prefsRepo),
		notices:      notices,
		now:          time.Now,
	}, nil
}

func newSecretStore(cfg config.SecretsConfig) (ports.SecretStore, error) {
	switch cfg.Backend {
	case "file":
		return filestore.NewStore(cfg.Dir), nil
	default:
		store, err := chainstore.NewPassFirstWithFileFallback(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	}
}
