package domain

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(raw string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(raw)))
	switch theme {
	case ThemeLight, ThemeDark:
		return theme, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
}

type Feature string

const (
	FeatureBeta               Feature = "beta-features"
	FeatureAdvancedReports    Feature = "advanced-reports"
	FeatureEmailNotifications Feature = "email-notifications"
)

type FeatureFlags struct {
	BetaFeatures       bool `json:"beta_features"`
	AdvancedReports    bool `json:"advanced_reports"`
	EmailNotifications bool `json:"email_notifications"`
}

func (f FeatureFlags) Get(feature Feature) (bool, error) {
	switch feature {
	case FeatureBeta:
		return f.BetaFeatures, nil
	case FeatureAdvancedReports:
		return f.AdvancedReports, nil
	case FeatureEmailNotifications:
		return f.EmailNotifications, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}
}

func (f *FeatureFlags) Set(feature Feature, enabled bool) error {
	switch feature {
	case FeatureBeta:
		f.BetaFeatures = enabled
	case FeatureAdvancedReports:
		f.AdvancedReports = enabled
	case FeatureEmailNotifications:
		f.EmailNotifications = enabled
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
	}
	return nil
}

type Preferences struct {
	Theme               Theme        `json:"theme"`
	SidebarOpen         bool         `json:"sidebar_open"`
	OnboardingCompleted bool         `json:"onboarding_completed"`
	OnboardingStep      int          `json:"onboarding_step"`
	Features            FeatureFlags `json:"features"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:       ThemeLight,
		SidebarOpen: true,
		Features: FeatureFlags{
			EmailNotifications: true,
		},
	}
}
