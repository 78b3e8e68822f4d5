package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/insightly-cli/internal/application"
	"github.com/bnema/insightly-cli/internal/domain"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign out and inspect the current session",
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthRegisterCmd(app),
		newAuthGoogleCmd(app),
		newAuthLogoutCmd(app),
		newAuthStatusCmd(app),
		newAuthWhoamiCmd(app),
		newAuthProfileCmd(app),
	)

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var email string
	var password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			secret, err := resolvePassword(cmd.InOrStdin(), password, passwordStdin)
			if err != nil {
				return err
			}

			if _, err := app.auth.Login(cmd.Context(), email, secret); err != nil {
				return err
			}
			app.notices.Success("Successfully logged in!")
			return nil
		}),
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("email")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func newAuthRegisterCmd(app *app) *cobra.Command {
	var registration domain.Registration
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			if passwordStdin {
				secret, err := resolvePassword(cmd.InOrStdin(), "", true)
				if err != nil {
					return err
				}
				registration.Password = secret
			}
			if registration.Password2 == "" {
				registration.Password2 = registration.Password
			}

			if _, err := app.auth.Register(cmd.Context(), registration); err != nil {
				return err
			}
			app.notices.Success("Account created! Welcome to Insightly.")
			app.notices.Info("Next: connect your data with `insightly integrations connect google`.")
			return nil
		}),
	}

	cmd.Flags().StringVar(&registration.Username, "username", "", "Username")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&registration.Password, "password", "", "Password")
	cmd.Flags().StringVar(&registration.Password2, "password-confirm", "", "Password again (default: same as --password)")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthGoogleCmd(app *app) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "google",
		Short: "Sign in with a Google OAuth authorization code",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			result, err := app.auth.GoogleAuth(cmd.Context(), code)
			if err != nil {
				return err
			}
			if result.IsNewUser {
				app.notices.Success("Account created! Welcome to Insightly.")
				app.notices.Info("Next: connect your data with `insightly integrations connect google`.")
				return nil
			}
			app.notices.Success("Successfully logged in!")
			return nil
		}),
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code returned by Google")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget stored tokens",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			err := app.auth.Logout(cmd.Context())
			if errors.Is(err, application.ErrLogoutNotConfirmed) {
				app.notices.Warning("Signed out locally; the server did not confirm the logout.")
				return nil
			}
			if err != nil {
				return err
			}
			app.notices.Success("Signed out.")
			return nil
		}),
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether tokens are stored and when they expire",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			session, err := app.credentials.Session(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !session.Authenticated {
				_, err := fmt.Fprintln(out, "not signed in")
				return err
			}

			subject := session.Subject
			if subject == "" {
				subject = "unknown"
			}
			expires := "unknown"
			if session.ExpiresAt != nil {
				expires = session.ExpiresAt.Local().Format(time.RFC3339)
				if session.Expired {
					expires += " (expired, will refresh on next request)"
				}
			}

			_, err = fmt.Fprintf(out, "signed in\nuser: %s\naccess token expires: %s\nrefresh token: %s\n",
				subject, expires, presence(session.HasRefresh))
			return err
		}),
	}
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			user, err := fetchWithSpinner(cmd, "Loading profile...", asJSON, app.auth.CurrentUser)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), user)
			}
			return writeUser(cmd.OutOrStdout(), user)
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAuthProfileCmd(app *app) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the primary business goal",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			user, err := app.auth.UpdateProfile(cmd.Context(), domain.Goal(goal))
			if err != nil {
				return err
			}
			app.notices.Success("Goal updated successfully")
			return writeUser(cmd.OutOrStdout(), user)
		}),
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Primary goal (conversions|roas|traffic|revenue)")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func writeUser(w io.Writer, user *domain.User) error {
	plan := string(user.PlanType)
	if user.IsPremium {
		plan += " (premium)"
	}
	goal := string(user.PrimaryGoal)
	if goal == "" {
		goal = "not set"
	}
	_, err := fmt.Fprintf(w, "%s <%s>\nplan: %s\ngoal: %s\n", user.Username, user.Email, plan, goal)
	return err
}

func resolvePassword(in io.Reader, flagValue string, fromStdin bool) (string, error) {
	if !fromStdin {
		if flagValue == "" {
			return "", errors.New("password is required: use --password or --password-stdin")
		}
		return flagValue, nil
	}

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return "", errors.New("no password on stdin")
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

func presence(ok bool) string {
	if ok {
		return "stored"
	}
	return "missing"
}
