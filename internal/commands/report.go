package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/services/report"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render report charts",
	}
	cmd.AddCommand(newReportCashflowCommand())
	cmd.AddCommand(newReportBalancesCommand())
	return cmd
}

func newReportCashflowCommand() *cobra.Command {
	var months int
	var out string

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Render the monthly income/expense chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Report.Load(ctx)
				if banner := a.Report.Err(); banner != "" {
					return fmt.Errorf("report data incomplete: %s", banner)
				}

				points := a.Report.MonthlyCashflow(time.Now(), months)
				png, err := report.RenderCashflowChart(points)
				if err != nil {
					return err
				}

				if err := os.WriteFile(out, png, 0o644); err != nil {
					return fmt.Errorf("writing chart: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "number of months to chart")
	cmd.Flags().StringVar(&out, "out", "cashflow.png", "output PNG path")

	return cmd
}

func newReportBalancesCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Render the per-account balance chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Report.Load(ctx)
				if banner := a.Report.Err(); banner != "" {
					return fmt.Errorf("report data incomplete: %s", banner)
				}

				png, err := report.RenderBalanceChart(a.Report.Banks())
				if err != nil {
					return err
				}

				if err := os.WriteFile(out, png, 0o644); err != nil {
					return fmt.Errorf("writing chart: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "balances.png", "output PNG path")

	return cmd
}
