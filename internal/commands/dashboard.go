package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/common"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the account summary for the current month",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				common.PrintBanner(a.Config)

				if !a.LoggedIn() {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in. Run `zenmoney login` first.")
					return nil
				}

				a.Report.Load(ctx)
				warnBanner(cmd, a.Report.Err())

				summary := a.Report.Summarize(time.Now())

				w := newTable(cmd)
				fmt.Fprintf(w, "Total balance\t%s\n", summary.TotalBalance.StringFixed(2))
				fmt.Fprintf(w, "Monthly income\t%s\n", summary.MonthlyIncome.StringFixed(2))
				fmt.Fprintf(w, "Monthly expense\t%s\n", summary.MonthlyExpense.StringFixed(2))
				fmt.Fprintf(w, "Accounts\t%d\n", summary.Accounts)
				fmt.Fprintf(w, "Transactions\t%d\n", summary.Transactions)
				w.Flush()
				return nil
			})
		},
	}
}
