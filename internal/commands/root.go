// Package commands wires the resource services into a cobra command tree.
// Every command builds a fresh App, runs one load or mutation cycle against
// the backend, prints the result as a table, and exits.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/common"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "zenmoney",
		Short:   "Personal finance dashboard client",
		Version: common.GetFullVersion(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file path (default zenmoney.toml)")

	rootCmd.AddCommand(newLoginCommand())
	rootCmd.AddCommand(newLogoutCommand())
	rootCmd.AddCommand(newMeCommand())
	rootCmd.AddCommand(newBanksCommand())
	rootCmd.AddCommand(newTransactionsCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newInvestmentsCommand())
	rootCmd.AddCommand(newLoansCommand())
	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
