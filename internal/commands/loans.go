package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

func newLoansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Loans",
	}
	cmd.AddCommand(newLoansListCommand())
	cmd.AddCommand(newLoansAddCommand())
	cmd.AddCommand(newLoansUpdateCommand())
	cmd.AddCommand(newLoansDeleteCommand())
	return cmd
}

func newLoansListCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Loans.Load(ctx)
				warnBanner(cmd, a.Loans.Err())

				w := newTable(cmd)
				fmt.Fprintln(w, "ID\tNAME\tEMI\tBALANCE\tRATE\tPROGRESS\tMONTHS LEFT")
				for _, l := range a.Loans.Search(query) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%%\t%.1f%%\t%d\n",
						l.ID, l.Name,
						l.EMI.StringFixed(2),
						l.RemainingBalance.StringFixed(2),
						l.InterestRate.StringFixed(2),
						l.Progress(),
						l.RemainingMonths())
				}
				w.Flush()

				debt, emi := a.Loans.DebtTotals()
				fmt.Fprintf(cmd.OutOrStdout(), "\nOutstanding debt: %s, monthly EMI: %s\n",
					debt.StringFixed(2), emi.StringFixed(2))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "filter by name substring")

	return cmd
}

var loanFlagFields = map[string]string{
	"name":         "name",
	"emi":          "emi",
	"balance":      "balance",
	"rate":         "rate",
	"total-months": "total_months",
	"paid-months":  "paid_months",
}

func addLoanFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "loan name")
	cmd.Flags().String("emi", "", "monthly installment")
	cmd.Flags().String("balance", "", "remaining balance")
	cmd.Flags().String("rate", "", "interest rate percent")
	cmd.Flags().String("total-months", "", "total duration in months")
	cmd.Flags().String("paid-months", "", "months already paid")
}

func newLoansAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				form := a.Loans.OpenForm(nil)
				applyChangedFlags(cmd, form, loanFlagFields)
				if err := a.Loans.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Loan created")
				return nil
			})
		},
	}

	addLoanFlags(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLoansUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				loan, err := findLoan(ctx, a, args[0])
				if err != nil {
					return err
				}

				form := a.Loans.OpenForm(&loan)
				applyChangedFlags(cmd, form, loanFlagFields)
				if err := a.Loans.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Loan updated")
				return nil
			})
		},
	}

	addLoanFlags(cmd)

	return cmd
}

func newLoansDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				loan, err := findLoan(ctx, a, args[0])
				if err != nil {
					return err
				}
				return a.Loans.Delete(ctx, loan, confirmer(cmd, yes))
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func findLoan(ctx context.Context, a *app.App, id string) (models.Loan, error) {
	a.Loans.Load(ctx)
	for _, l := range a.Loans.Items() {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Loan{}, fmt.Errorf("loan %s not found", id)
}
