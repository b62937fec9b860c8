package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

func newInvestmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "investments",
		Short: "Investment holdings",
	}
	cmd.AddCommand(newInvestmentsListCommand())
	cmd.AddCommand(newInvestmentsAddCommand())
	cmd.AddCommand(newInvestmentsUpdateCommand())
	cmd.AddCommand(newInvestmentsDeleteCommand())
	return cmd
}

func newInvestmentsListCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List investment holdings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Investments.Load(ctx)
				warnBanner(cmd, a.Investments.Err())

				w := newTable(cmd)
				fmt.Fprintln(w, "ID\tNAME\tINVESTED\tCURRENT\tCHANGE%")
				for _, inv := range a.Investments.Search(query) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						inv.ID, inv.Name,
						inv.InvestedAmount.StringFixed(2),
						inv.CurrentValue.StringFixed(2),
						models.ComputeChangePercent(inv.InvestedAmount, inv.CurrentValue).StringFixed(2))
				}
				w.Flush()

				value, invested, gain := a.Investments.PortfolioTotals()
				fmt.Fprintf(cmd.OutOrStdout(), "\nPortfolio: value %s, invested %s, gain %s\n",
					value.StringFixed(2), invested.StringFixed(2), gain.StringFixed(2))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "filter by name substring")

	return cmd
}

var investmentFlagFields = map[string]string{
	"name":     "name",
	"invested": "invested",
	"current":  "current",
}

func newInvestmentsAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an investment holding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				form := a.Investments.OpenForm(nil)
				applyChangedFlags(cmd, form, investmentFlagFields)
				if err := a.Investments.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Investment created")
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "holding name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("invested", "0", "amount invested")
	cmd.Flags().String("current", "0", "current value")

	return cmd
}

func newInvestmentsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an investment holding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				inv, err := findInvestment(ctx, a, args[0])
				if err != nil {
					return err
				}

				form := a.Investments.OpenForm(&inv)
				applyChangedFlags(cmd, form, investmentFlagFields)
				if err := a.Investments.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Investment updated")
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "holding name")
	cmd.Flags().String("invested", "", "amount invested")
	cmd.Flags().String("current", "", "current value")

	return cmd
}

func newInvestmentsDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an investment holding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				inv, err := findInvestment(ctx, a, args[0])
				if err != nil {
					return err
				}
				return a.Investments.Delete(ctx, inv, confirmer(cmd, yes))
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func findInvestment(ctx context.Context, a *app.App, id string) (models.Investment, error) {
	a.Investments.Load(ctx)
	for _, inv := range a.Investments.Items() {
		if inv.ID == id {
			return inv, nil
		}
	}
	return models.Investment{}, fmt.Errorf("investment %s not found", id)
}
