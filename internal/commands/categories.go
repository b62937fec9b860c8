package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zenmoney/zenmoney-cli/internal/app"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

func newCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Transaction categories",
	}
	cmd.AddCommand(newCategoriesListCommand())
	cmd.AddCommand(newCategoriesAddCommand())
	cmd.AddCommand(newCategoriesUpdateCommand())
	cmd.AddCommand(newCategoriesDeleteCommand())
	return cmd
}

func newCategoriesListCommand() *cobra.Command {
	var tab string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories for one tab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				a.Categories.SetActiveTab(models.CategoryType(tab))
				a.Categories.Load(ctx)
				warnBanner(cmd, a.Categories.Err())

				w := newTable(cmd)
				fmt.Fprintln(w, "ID\tNAME\tTYPE\tICON\tCOLOUR\tSUBCATEGORIES")
				for _, c := range a.Categories.Visible(query) {
					id := "-"
					if c.ID != nil {
						id = strconv.FormatInt(*c.ID, 10)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
						id, c.Name, c.Type, c.Icon, c.Colour, len(c.SubCategories))
				}
				w.Flush()
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tab, "tab", string(models.CategoryExpense), "tab (income|expense|transfer)")
	cmd.Flags().StringVar(&query, "query", "", "filter by name substring")

	return cmd
}

var categoryFlagFields = map[string]string{
	"name":   "name",
	"icon":   "icon",
	"colour": "colour",
}

func newCategoriesAddCommand() *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category to one tab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				// New categories inherit their type from the active tab.
				a.Categories.SetActiveTab(models.CategoryType(tab))

				form := a.Categories.OpenForm(nil)
				applyChangedFlags(cmd, form, categoryFlagFields)
				if err := a.Categories.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Category created")
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "category name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("icon", "", "icon")
	cmd.Flags().String("colour", "", "colour hex code")
	cmd.Flags().StringVar(&tab, "tab", string(models.CategoryExpense), "tab (income|expense|transfer)")

	return cmd
}

func newCategoriesUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				cat, err := findCategory(ctx, a, args[0])
				if err != nil {
					return err
				}

				form := a.Categories.OpenForm(&cat)
				applyChangedFlags(cmd, form, categoryFlagFields)
				if err := a.Categories.Submit(ctx, form); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Category updated")
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "category name")
	cmd.Flags().String("icon", "", "icon")
	cmd.Flags().String("colour", "", "colour hex code")

	return cmd
}

func newCategoriesDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				cat, err := findCategory(ctx, a, args[0])
				if err != nil {
					return err
				}
				return a.Categories.Delete(ctx, cat, confirmer(cmd, yes))
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

func findCategory(ctx context.Context, a *app.App, rawID string) (models.Category, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return models.Category{}, fmt.Errorf("invalid category id %q", rawID)
	}

	a.Categories.Load(ctx)
	for _, c := range a.Categories.Items() {
		if c.ID != nil && *c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("category %d not found", id)
}
