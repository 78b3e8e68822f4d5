package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/insightly-cli/internal/domain"
)

func newRepo(t *testing.T) (*PreferenceRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "preferences.toml")
	repo, err := NewPreferenceRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	repo, _ := newRepo(t)

	prefs, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestPreferencesRoundTrip(t *testing.T) {
	t.Parallel()

	repo, path := newRepo(t)
	want := domain.Preferences{
		Theme:               domain.ThemeDark,
		SidebarOpen:         false,
		OnboardingCompleted: true,
		OnboardingStep:      0,
		Features: domain.FeatureFlags{
			BetaFeatures:       true,
			AdvancedReports:    false,
			EmailNotifications: false,
		},
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(preferencesFileMode), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "dark")
}

func TestLoadFillsOmittedFieldsWithDefaults(t *testing.T) {
	t.Parallel()

	repo, path := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("theme = \"dark\"\n\n[onboarding]\nstep = 2\n"), 0o600))

	prefs, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
	assert.True(t, prefs.SidebarOpen)
	assert.Equal(t, 2, prefs.OnboardingStep)
	assert.True(t, prefs.Features.EmailNotifications)
}

func TestLoadRejectsUnsupportedSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, path := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported preferences schema version 99")
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	repo, path := newRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("theme = \"neon\"\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}

func TestSaveRejectsInvalidTheme(t *testing.T) {
	t.Parallel()

	repo, path := newRepo(t)
	prefs := domain.DefaultPreferences()
	prefs.Theme = "neon"

	assert.ErrorIs(t, repo.Save(context.Background(), prefs), domain.ErrInvalidTheme)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRepositoriesShareLockPerPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.toml")
	first, err := NewPreferenceRepository(path)
	require.NoError(t, err)
	second, err := NewPreferenceRepository(path)
	require.NoError(t, err)
	assert.Same(t, first.mu, second.mu)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(step int) {
			defer wg.Done()
			prefs := domain.DefaultPreferences()
			prefs.OnboardingStep = step
			repo := first
			if step%2 == 0 {
				repo = second
			}
			assert.NoError(t, repo.Save(context.Background(), prefs))
		}(i)
	}
	wg.Wait()

	prefs, err := first.Load(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prefs.OnboardingStep, 0)
	assert.Less(t, prefs.OnboardingStep, 10, strconv.Itoa(prefs.OnboardingStep))
}

func TestLoadHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
