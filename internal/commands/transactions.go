package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

func newTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Transactions",
	}
	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsAddCommand())
	cmd.AddCommand(newTransactionsUpdateCommand())
	cmd.AddCommand(newTransactionsDeleteCommand())
	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Transactions.Load(ctx)
				warnBanner(cmd, a.Transactions.Err())

				w := newTable(cmd)
				fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tCATEGORY\tBANK\tDESCRIPTION")
				for _, tx := range a.Transactions.Search(query) {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
						tx.ID,
						tx.Date.Format("2006-01-02"),
						tx.Type,
						tx.Amount.StringFixed(2),
						a.Transactions.CategoryName(tx),
						a.Transactions.BankName(tx),
						tx.Description,
					)
				}
				w.Flush()

				income, expense := a.Transactions.MonthlyTotals(time.Now())
				fmt.Fprintf(cmd.OutOrStdout(), "\nThis month: income %s, expense %s\n",
					income.StringFixed(2), expense.StringFixed(2))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "filter by description substring")

	return cmd
}

var transactionFlagFields = map[string]string{
	"amount":      "amount",
	"type":        "type",
	"category-id": "category_id",
	"bank-id":     "bank_id",
	"description": "description",
	"date":        "date",
}

func addTransactionFlags(cmd *cobra.Command) {
	cmd.Flags().String("amount", "", "amount (non-negative)")
	cmd.Flags().String("type", "", "income or expense")
	cmd.Flags().String("category-id", "", "category id")
	cmd.Flags().String("bank-id", "", "bank account id")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("date", "", "timestamp (RFC 3339, default now)")
}

func newTransactionsAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				// Load first so the form can default to the first available
				// category and bank, and so the session user is known.
				a.Transactions.Load(ctx)
				warnBanner(cmd, a.Transactions.Err())

				form := a.Transactions.OpenForm(nil)
				applyChangedFlags(cmd, form, transactionFlagFields)
				if err := a.Transactions.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Transaction recorded")
				return nil
			})
		},
	}

	addTransactionFlags(cmd)
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransactionsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				tx, err := findTransaction(ctx, a, args[0])
				if err != nil {
					return err
				}

				form := a.Transactions.OpenForm(&tx)
				applyChangedFlags(cmd, form, transactionFlagFields)
				if err := a.Transactions.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Transaction updated")
				return nil
			})
		},
	}

	addTransactionFlags(cmd)

	return cmd
}

func newTransactionsDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				tx, err := findTransaction(ctx, a, args[0])
				if err != nil {
					return err
				}
				return a.Transactions.Delete(ctx, tx, confirmer(cmd, yes))
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func findTransaction(ctx context.Context, a *app.App, rawID string) (models.Transaction, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid transaction id %q", rawID)
	}

	a.Transactions.Load(ctx)
	for _, tx := range a.Transactions.Items() {
		if tx.ID == id {
			return tx, nil
		}
	}
	return models.Transaction{}, fmt.Errorf("transaction %d not found", id)
}
