package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	"github.com/bnema/insightly-cli/internal/domain"
)

var errLoginRequired = errors.New("run `insightly auth login` to sign in")

// runE wraps a command so gateway notices and confirmations queued while it
// ran are printed, and session errors tell the user how to recover.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		a.flushNotices(cmd)

		switch {
		case errors.Is(err, httpapi.ErrSessionExpired), errors.Is(err, domain.ErrNotAuthenticated):
			return fmt.Errorf("%w: %w", err, errLoginRequired)
		default:
			return err
		}
	}
}

func (a *app) flushNotices(cmd *cobra.Command) {
	for _, notice := range a.notices.Drain() {
		switch notice.Kind {
		case domain.NotificationSuccess, domain.NotificationInfo:
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), notice.Message)
		default:
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", notice.Kind, notice.Message)
		}
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeRendered(w io.Writer, rendered string, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

func parseInsightID(raw string) (domain.InsightID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid insight id %q", raw)
	}
	return domain.InsightID(id), nil
}
