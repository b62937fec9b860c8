package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/controller"
)

// withApp builds the application container for one command invocation and
// releases the local storage when the command returns.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	configPath, _ := cmd.Flags().GetString("config")

	a, err := app.NewApp(configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(cmd.Context(), a)
}

// confirmer returns the destructive-action gate for a delete command. The
// --yes flag bypasses the prompt; otherwise the user is asked on stdin.
func confirmer(cmd *cobra.Command, yes bool) controller.Confirmer {
	if yes {
		return controller.ConfirmAll
	}
	return func(prompt string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

// newTable returns a tab-aligned writer for list output. Callers must Flush.
func newTable(cmd *cobra.Command) *tabwriter.Writer {
	return tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
}

// warnBanner prints the surfaced error banner from a load cycle, if any.
// Partial failures degrade to empty slots, so the command still renders.
func warnBanner(cmd *cobra.Command, banner string) {
	if banner != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", banner)
	}
}

// applyChangedFlags copies each flag the user actually set into the
// corresponding form field, leaving seeded values alone otherwise.
func applyChangedFlags(cmd *cobra.Command, form interface{ Set(field, value string) }, flagToField map[string]string) {
	for flag, field := range flagToField {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			form.Set(field, value)
		}
	}
}
