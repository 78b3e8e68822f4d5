package application

import (
	"context"
	"fmt"

	"github.com/bnema/insightly-cli/internal/domain"
	"github.com/bnema/insightly-cli/internal/ports"
)

const (
	FirstOnboardingStep = 1
	LastOnboardingStep  = 5
)

// PreferenceService edits the local preferences file. Each change is a
// load-modify-save of the whole document.
type PreferenceService struct {
	repo ports.PreferenceRepository
}

func NewPreferenceService(repo ports.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

func (s *PreferenceService) Get(ctx context.Context) (domain.Preferences, error) {
	return s.repo.Load(ctx)
}

func (s *PreferenceService) SetTheme(ctx context.Context, raw string) (domain.Preferences, error) {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return domain.Preferences{}, err
	}
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.Theme = theme
		return nil
	})
}

func (s *PreferenceService) SetSidebar(ctx context.Context, open bool) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.SidebarOpen = open
		return nil
	})
}

func (s *PreferenceService) ToggleSidebar(ctx context.Context) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.SidebarOpen = !prefs.SidebarOpen
		return nil
	})
}

func (s *PreferenceService) SetFeature(ctx context.Context, feature domain.Feature, enabled bool) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		return prefs.Features.Set(feature, enabled)
	})
}

func (s *PreferenceService) ToggleFeature(ctx context.Context, feature domain.Feature) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		enabled, err := prefs.Features.Get(feature)
		if err != nil {
			return err
		}
		return prefs.Features.Set(feature, !enabled)
	})
}

// SetOnboardingStep jumps to step, which must lie in 0..LastOnboardingStep.
func (s *PreferenceService) SetOnboardingStep(ctx context.Context, step int) (domain.Preferences, error) {
	if step < 0 || step > LastOnboardingStep {
		return domain.Preferences{}, fmt.Errorf("onboarding step must be between 0 and %d, got %d", LastOnboardingStep, step)
	}
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.OnboardingStep = step
		return nil
	})
}

func (s *PreferenceService) NextOnboardingStep(ctx context.Context) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.OnboardingStep = min(prefs.OnboardingStep+1, LastOnboardingStep)
		return nil
	})
}

func (s *PreferenceService) PrevOnboardingStep(ctx context.Context) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.OnboardingStep = max(prefs.OnboardingStep-1, FirstOnboardingStep)
		return nil
	})
}

func (s *PreferenceService) CompleteOnboarding(ctx context.Context) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.OnboardingCompleted = true
		return nil
	})
}

func (s *PreferenceService) ResetOnboarding(ctx context.Context) (domain.Preferences, error) {
	return s.modify(ctx, func(prefs *domain.Preferences) error {
		prefs.OnboardingCompleted = false
		prefs.OnboardingStep = 0
		return nil
	})
}

func (s *PreferenceService) modify(ctx context.Context, fn func(*domain.Preferences) error) (domain.Preferences, error) {
	prefs, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	if err := fn(&prefs); err != nil {
		return domain.Preferences{}, err
	}
	if err := s.repo.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return prefs, nil
}
