package toml

import (
	"fmt"

	"github.com/bnema/insightly-cli/internal/domain"
)

const currentSchemaVersion = 1

type preferencesSchema struct {
	Version     int              `toml:"version"`
	Theme       string           `toml:"theme"`
	SidebarOpen bool             `toml:"sidebar_open"`
	Onboarding  onboardingSchema `toml:"onboarding"`
	Features    featuresSchema   `toml:"features"`
}

type onboardingSchema struct {
	Completed bool `toml:"completed"`
	Step      int  `toml:"step"`
}

type featuresSchema struct {
	BetaFeatures       bool `toml:"beta_features"`
	AdvancedReports    bool `toml:"advanced_reports"`
	EmailNotifications bool `toml:"email_notifications"`
}

func (s *preferencesSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Theme == "" {
		s.Theme = string(domain.ThemeLight)
	}
}

func (s preferencesSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported preferences schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(prefs domain.Preferences) preferencesSchema {
	return preferencesSchema{
		Version:     currentSchemaVersion,
		Theme:       string(prefs.Theme),
		SidebarOpen: prefs.SidebarOpen,
		Onboarding: onboardingSchema{
			Completed: prefs.OnboardingCompleted,
			Step:      prefs.OnboardingStep,
		},
		Features: featuresSchema{
			BetaFeatures:       prefs.Features.BetaFeatures,
			AdvancedReports:    prefs.Features.AdvancedReports,
			EmailNotifications: prefs.Features.EmailNotifications,
		},
	}
}

func fromSchema(schema preferencesSchema) (domain.Preferences, error) {
	theme, err := domain.ParseTheme(schema.Theme)
	if err != nil {
		return domain.Preferences{}, err
	}

	step := schema.Onboarding.Step
	if step < 0 {
		step = 0
	}

	return domain.Preferences{
		Theme:               theme,
		SidebarOpen:         schema.SidebarOpen,
		OnboardingCompleted: schema.Onboarding.Completed,
		OnboardingStep:      step,
		Features: domain.FeatureFlags{
			BetaFeatures:       schema.Features.BetaFeatures,
			AdvancedReports:    schema.Features.AdvancedReports,
			EmailNotifications: schema.Features.EmailNotifications,
		},
	}, nil
}
