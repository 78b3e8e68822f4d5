package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports"
)

const (
	preferencesFileMode = 0o600
	preferencesDirMode  = 0o700
	tempFilePattern     = ".preferences-*.toml.tmp"
)

// PreferenceRepository persists UI preferences in a TOML file. Fields the
// file omits keep their defaults.
type PreferenceRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PreferenceRepository = (*PreferenceRepository)(nil)

func NewPreferenceRepository(path string) (*PreferenceRepository, error) {
	if path == "" {
		return nil, errors.New("preferences path is empty")
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &PreferenceRepository{path: normalized, mu: lockForPath(normalized)}, nil
}

func (r *PreferenceRepository) Path() string {
	return r.path
}

func (r *PreferenceRepository) Load(ctx context.Context) (domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preferences{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Preferences{}, err
	}

	prefs, err := fromSchema(file)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("decode preferences file: %w", err)
	}

	return prefs, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, prefs domain.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := domain.ParseTheme(string(prefs.Theme)); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(prefs))
}

func (r *PreferenceRepository) readSchema() (preferencesSchema, error) {
	file := toSchema(domain.DefaultPreferences())

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return preferencesSchema{}, fmt.Errorf("read preferences file: %w", err)
	}

	file.Version = 0
	if err := toml.Unmarshal(data, &file); err != nil {
		return preferencesSchema{}, fmt.Errorf("decode preferences file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return preferencesSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *PreferenceRepository) writeSchema(file preferencesSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), preferencesDirMode); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode preferences file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp preferences file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp preferences file: %w", err)
	}

	if err := tempFile.Chmod(preferencesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp preferences file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp preferences file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace preferences file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve preferences path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
