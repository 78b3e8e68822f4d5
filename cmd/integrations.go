package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	insightsrender "github.com/bnema/insightly-cli/internal/adapters/render/insights"
	"github.com/bnema/insightly-cli/internal/domain"
)

func newIntegrationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "integrations",
		Aliases: []string{"integration"},
		Short:   "Connect and configure GA4, Meta and Clarity",
	}

	cmd.AddCommand(
		newIntegrationsListCmd(app),
		newIntegrationsConnectCmd(app),
		newIntegrationsDisconnectCmd(app),
		newIntegrationsGACmd(app),
		newIntegrationsMetaCmd(app),
	)

	return cmd
}

func newIntegrationsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connected integrations",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			accounts, err := fetchWithSpinner(cmd, "Fetching integrations...", asJSON, app.integrations.List)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), accounts)
			}
			rendered, renderErr := insightsrender.RenderIntegrations(accounts)
			return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newIntegrationsConnectCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect a data source",
	}

	var googleCode string
	google := &cobra.Command{
		Use:   "google",
		Short: "Connect Google Analytics with an OAuth authorization code",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			conn, err := app.integrations.ConnectGoogle(cmd.Context(), googleCode)
			if err != nil {
				return err
			}
			app.notices.Success("Google connected! Select your properties.")
			return writeAvailable(cmd.OutOrStdout(), "insightly integrations ga select", conn.AvailableProperties)
		}),
	}
	google.Flags().StringVar(&googleCode, "code", "", "Authorization code returned by Google")
	_ = google.MarkFlagRequired("code")

	var metaCode string
	meta := &cobra.Command{
		Use:   "meta",
		Short: "Connect Meta Ads with an OAuth authorization code",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			conn, err := app.integrations.ConnectMeta(cmd.Context(), metaCode)
			if err != nil {
				return err
			}
			app.notices.Success("Meta connected! Select your ad accounts.")
			return writeAvailable(cmd.OutOrStdout(), "insightly integrations meta select", conn.AvailableAdAccounts)
		}),
	}
	meta.Flags().StringVar(&metaCode, "code", "", "Authorization code returned by Meta")
	_ = meta.MarkFlagRequired("code")

	var apiKey, projectID string
	clarity := &cobra.Command{
		Use:   "clarity",
		Short: "Connect Microsoft Clarity with an API key",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			if _, err := app.integrations.ConnectClarity(cmd.Context(), apiKey, projectID); err != nil {
				return err
			}
			app.notices.Success("Clarity connected successfully!")
			return nil
		}),
	}
	clarity.Flags().StringVar(&apiKey, "api-key", "", "Clarity API key")
	clarity.Flags().StringVar(&projectID, "project-id", "", "Clarity project ID")
	_ = clarity.MarkFlagRequired("api-key")
	_ = clarity.MarkFlagRequired("project-id")

	cmd.AddCommand(google, meta, clarity)

	return cmd
}

func writeAvailable(w io.Writer, selectCmd string, available []domain.AvailableProperty) error {
	if len(available) == 0 {
		return nil
	}
	for _, item := range available {
		line := fmt.Sprintf("  %s  %s", item.ID, item.Name)
		if item.Account != "" {
			line += "  (" + item.Account + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "select with: %s <id>...\n", selectCmd)
	return err
}

func newIntegrationsDisconnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "disconnect <google|meta|clarity>",
		Short:     "Disconnect a data source",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ProviderGoogle), string(domain.ProviderMeta), string(domain.ProviderClarity)},
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			provider, err := domain.ParseProvider(args[0])
			if err != nil {
				return err
			}
			if err := app.integrations.Disconnect(cmd.Context(), provider); err != nil {
				return err
			}
			app.notices.Success(fmt.Sprintf("%s disconnected", provider))
			return nil
		}),
	}
}

func newIntegrationsGACmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ga",
		Short: "Google Analytics properties",
	}

	var asJSON bool
	properties := &cobra.Command{
		Use:   "properties",
		Short: "List selected GA4 properties",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			list, err := fetchWithSpinner(cmd, "Fetching properties...", asJSON, app.integrations.GAProperties)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			rendered, renderErr := insightsrender.RenderGAProperties(list)
			return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
		}),
	}
	properties.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	selectCmd := &cobra.Command{
		Use:   "select <property-id>...",
		Short: "Choose which GA4 properties to monitor",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			if _, err := app.integrations.SelectGAProperties(cmd.Context(), args); err != nil {
				return err
			}
			app.notices.Success("Properties saved!")
			return nil
		}),
	}

	cmd.AddCommand(properties, selectCmd)

	return cmd
}

func newIntegrationsMetaCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Meta ad accounts",
	}

	var asJSON bool
	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "List selected Meta ad accounts",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			list, err := fetchWithSpinner(cmd, "Fetching ad accounts...", asJSON, app.integrations.MetaAccounts)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), list)
			}
			rendered, renderErr := insightsrender.RenderMetaAccounts(list)
			return writeRendered(cmd.OutOrStdout(), rendered, renderErr)
		}),
	}
	accounts.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	selectCmd := &cobra.Command{
		Use:   "select <account-id>...",
		Short: "Choose which Meta ad accounts to monitor",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			if _, err := app.integrations.SelectMetaAccounts(cmd.Context(), args); err != nil {
				return err
			}
			app.notices.Success("Ad accounts saved!")
			return nil
		}),
	}

	cmd.AddCommand(accounts, selectCmd)

	return cmd
}
