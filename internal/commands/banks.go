package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

func newBanksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banks",
		Short: "Bank accounts",
	}
	cmd.AddCommand(newBanksListCommand())
	cmd.AddCommand(newBanksAddCommand())
	cmd.AddCommand(newBanksUpdateCommand())
	cmd.AddCommand(newBanksDeleteCommand())
	return cmd
}

func newBanksListCommand() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bank accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Banks.Load(ctx)
				warnBanner(cmd, a.Banks.Err())

				w := newTable(cmd)
				fmt.Fprintln(w, "ID\tNAME\tTYPE\tBALANCE")
				for _, b := range a.Banks.Search(query) {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.Name, b.AccountType, b.Balance.StringFixed(2))
				}
				w.Flush()

				fmt.Fprintf(cmd.OutOrStdout(), "\nTotal balance: %s\n", a.Banks.TotalBalance().StringFixed(2))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "filter by name substring")

	return cmd
}

var bankFlagFields = map[string]string{
	"name":    "name",
	"balance": "balance",
	"type":    "account_type",
}

func newBanksAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bank account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				form := a.Banks.OpenForm(nil)
				applyChangedFlags(cmd, form, bankFlagFields)
				if err := a.Banks.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Bank account created")
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("balance", "0", "opening balance")
	cmd.Flags().String("type", string(models.AccountChecking), "account type (checking|savings)")

	return cmd
}

func newBanksUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				bank, err := findBank(ctx, a, args[0])
				if err != nil {
					return err
				}

				form := a.Banks.OpenForm(&bank)
				applyChangedFlags(cmd, form, bankFlagFields)
				if err := a.Banks.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Bank account updated")
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "account name")
	cmd.Flags().String("balance", "", "balance")
	cmd.Flags().String("type", "", "account type (checking|savings)")

	return cmd
}

func newBanksDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				bank, err := findBank(ctx, a, args[0])
				if err != nil {
					return err
				}
				return a.Banks.Delete(ctx, bank, confirmer(cmd, yes))
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func findBank(ctx context.Context, a *app.App, rawID string) (models.Bank, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return models.Bank{}, fmt.Errorf("invalid bank id %q", rawID)
	}

	a.Banks.Load(ctx)
	for _, b := range a.Banks.Items() {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Bank{}, fmt.Errorf("bank account %d not found", id)
}
