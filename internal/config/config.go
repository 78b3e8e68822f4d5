package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "INSIGHTLY"

	DefaultBaseURL = "http://127.0.0.1:8000/api"
	DefaultTimeout = 30 * time.Second
	configDirName  = ".insightly"
)

const (
	keyBaseURL        = "api.base_url"
	keyTimeout        = "api.timeout"
	keyRateLimit      = "api.rate_limit"
	keyBreakerEnabled = "api.breaker.enabled"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyPrefsPath      = "preferences.path"
	keySecretsDir     = "secrets.dir"
	keySecretsBackend = "secrets.backend"
)

type Config struct {
	API         APIConfig
	Log         LogConfig
	Preferences PreferencesConfig
	Secrets     SecretsConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit caps outgoing requests per second. Zero disables pacing.
	RateLimit      float64
	BreakerEnabled bool
}

type LogConfig struct {
	Level  string
	Format string
}

type PreferencesConfig struct {
	Path string
}

type SecretsConfig struct {
	Dir string
	// Backend is "chain" (pass, then file) or "file".
	Backend string
}

// Dir returns the directory holding config, preferences and secrets.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, configDirName)
}

// Load reads ~/.insightly/config.toml when present and applies INSIGHTLY_*
// environment overrides, e.g. INSIGHTLY_API_BASE_URL.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir := Dir(homeDir)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyBaseURL, DefaultBaseURL)
	v.SetDefault(keyTimeout, DefaultTimeout)
	v.SetDefault(keyRateLimit, 0)
	v.SetDefault(keyBreakerEnabled, false)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "console")
	v.SetDefault(keyPrefsPath, filepath.Join(dir, "preferences.toml"))
	v.SetDefault(keySecretsDir, filepath.Join(dir, "secrets"))
	v.SetDefault(keySecretsBackend, "chain")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL:        strings.TrimRight(strings.TrimSpace(v.GetString(keyBaseURL)), "/"),
			Timeout:        v.GetDuration(keyTimeout),
			RateLimit:      v.GetFloat64(keyRateLimit),
			BreakerEnabled: v.GetBool(keyBreakerEnabled),
		},
		Log: LogConfig{
			Level:  v.GetString(keyLogLevel),
			Format: v.GetString(keyLogFormat),
		},
		Preferences: PreferencesConfig{Path: v.GetString(keyPrefsPath)},
		Secrets: SecretsConfig{
			Dir:     v.GetString(keySecretsDir),
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(keySecretsBackend))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base url is empty")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("api base url host is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api rate limit must not be negative, got %v", c.API.RateLimit)
	}
	switch c.Secrets.Backend {
	case "chain", "file":
	default:
		return fmt.Errorf("unsupported secrets backend %q", c.Secrets.Backend)
	}
	return nil
}
