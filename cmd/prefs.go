package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/insightly-cli/internal/application"
	"github.com/bnema/insightly-cli/internal/domain"
)

func newPrefsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prefs",
		Aliases: []string{"preferences"},
		Short:   "Show and change local preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsThemeCmd(app),
		newPrefsSidebarCmd(app),
		newPrefsFeatureCmd(app),
		newPrefsOnboardingCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			prefs, err := app.preferences.Get(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), prefs)
			}
			return writePreferences(cmd.OutOrStdout(), prefs)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPrefsThemeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme <light|dark>",
		Short:     "Set the color theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			prefs, err := app.preferences.SetTheme(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			app.notices.Success(fmt.Sprintf("Theme set to %s", prefs.Theme))
			return nil
		}),
	}
}

func newPrefsSidebarCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "sidebar <open|closed|toggle>",
		Short:     "Open, close or toggle the sidebar",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"open", "closed", "toggle"},
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			var (
				prefs domain.Preferences
				err   error
			)
			switch args[0] {
			case "open":
				prefs, err = app.preferences.SetSidebar(cmd.Context(), true)
			case "closed", "close":
				prefs, err = app.preferences.SetSidebar(cmd.Context(), false)
			case "toggle":
				prefs, err = app.preferences.ToggleSidebar(cmd.Context())
			default:
				return fmt.Errorf("unknown sidebar state %q (want open, closed or toggle)", args[0])
			}
			if err != nil {
				return err
			}
			app.notices.Info("sidebar: " + openLabel(prefs.SidebarOpen))
			return nil
		}),
	}
}

func newPrefsFeatureCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feature <name> [on|off|toggle]",
		Short: "Enable, disable or toggle a feature flag",
		Long:  "Feature flags: beta-features, advanced-reports, email-notifications. Without a state the flag is toggled.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			feature := domain.Feature(args[0])
			state := "toggle"
			if len(args) == 2 {
				state = args[1]
			}

			var (
				prefs domain.Preferences
				err   error
			)
			switch state {
			case "on":
				prefs, err = app.preferences.SetFeature(cmd.Context(), feature, true)
			case "off":
				prefs, err = app.preferences.SetFeature(cmd.Context(), feature, false)
			case "toggle":
				prefs, err = app.preferences.ToggleFeature(cmd.Context(), feature)
			default:
				return fmt.Errorf("unknown feature state %q (want on, off or toggle)", state)
			}
			if err != nil {
				return err
			}

			enabled, _ := prefs.Features.Get(feature)
			app.notices.Info(fmt.Sprintf("%s: %s", feature, onOff(enabled)))
			return nil
		}),
	}
}

func newPrefsOnboardingCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "onboarding <next|prev|complete|reset|step N>",
		Short:     "Move through the onboarding steps",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"next", "prev", "complete", "reset", "step"},
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				prefs domain.Preferences
				err   error
			)
			switch args[0] {
			case "next":
				prefs, err = app.preferences.NextOnboardingStep(ctx)
			case "prev":
				prefs, err = app.preferences.PrevOnboardingStep(ctx)
			case "complete":
				if _, err := app.preferences.CompleteOnboarding(ctx); err != nil {
					return err
				}
				app.notices.Success("Onboarding complete! Welcome to Insightly.")
				return nil
			case "reset":
				prefs, err = app.preferences.ResetOnboarding(ctx)
			case "step":
				if len(args) != 2 {
					return fmt.Errorf("onboarding step needs a step number")
				}
				step, convErr := strconv.Atoi(args[1])
				if convErr != nil {
					return fmt.Errorf("invalid onboarding step %q", args[1])
				}
				prefs, err = app.preferences.SetOnboardingStep(ctx, step)
			default:
				return fmt.Errorf("unknown onboarding action %q", args[0])
			}
			if err != nil {
				return err
			}

			app.notices.Info(fmt.Sprintf("onboarding step %d of %d", prefs.OnboardingStep, application.LastOnboardingStep))
			return nil
		}),
	}
}

func writePreferences(w io.Writer, prefs domain.Preferences) error {
	onboarding := fmt.Sprintf("step %d of %d", prefs.OnboardingStep, application.LastOnboardingStep)
	if prefs.OnboardingCompleted {
		onboarding = "completed"
	}

	_, err := fmt.Fprintf(w,
		"theme: %s\nsidebar: %s\nonboarding: %s\n%s: %s\n%s: %s\n%s: %s\n",
		prefs.Theme,
		openLabel(prefs.SidebarOpen),
		onboarding,
		domain.FeatureBeta, onOff(prefs.Features.BetaFeatures),
		domain.FeatureAdvancedReports, onOff(prefs.Features.AdvancedReports),
		domain.FeatureEmailNotifications, onOff(prefs.Features.EmailNotifications),
	)
	return err
}

func openLabel(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
