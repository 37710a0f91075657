package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

func newCategoryCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories and subcategories",
	}

	cmd.AddCommand(
		newCategoryListCommand(opts),
		newCategoryAddCommand(opts),
		newCategoryRemoveCommand(opts),
		newSubcategoryCommand(opts),
	)

	return cmd
}

func newCategoryListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			cats := ws.catalog.Categories()
			if len(cats) == 0 {
				fmt.Println("No categories")
				return nil
			}
			for _, c := range cats {
				fmt.Printf("%s %-20s %-8s (id %s)\n", c.Icon, c.Name, c.Type, c.ID)
				for _, sub := range c.Subcategories {
					fmt.Printf("  %s %-18s (id %s)\n", sub.Icon, sub.Name, sub.ID)
				}
			}
			return nil
		},
	}
}

func newCategoryAddCommand(opts *rootOptions) *cobra.Command {
	var (
		icon     string
		txType   string
		limitStr string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Long: "Adds a category. Expense categories also get a budget entry " +
			"seeded with --limit (or the configured default).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}

			limit := decimal.NewFromInt(ws.cfg.Budgets.DefaultLimit)
			if limitStr != "" {
				limit, err = decimal.NewFromString(limitStr)
				if err != nil {
					return fmt.Errorf("invalid limit %q: %w", limitStr, err)
				}
			}

			c, err := ws.catalog.AddCategory(args[0], icon, model.TxType(txType), limit)
			if err != nil {
				return err
			}
			fmt.Printf("Added category %s %s — id %s\n", c.Icon, c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	cmd.Flags().StringVar(&txType, "type", "expense", "category type (income|expense)")
	cmd.Flags().StringVar(&limitStr, "limit", "", "budget limit for expense categories")

	return cmd
}

func newCategoryRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a category and its budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			if err := ws.catalog.DeleteCategory(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed category %s\n", args[0])
			return nil
		},
	}
}

func newSubcategoryCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage subcategories",
	}

	var icon string
	add := &cobra.Command{
		Use:   "add [category-id] [name]",
		Short: "Add a subcategory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			sub, err := ws.catalog.AddSubcategory(args[0], args[1], icon)
			if err != nil {
				return err
			}
			fmt.Printf("Added subcategory %s %s — id %s\n", sub.Icon, sub.Name, sub.ID)
			return nil
		},
	}
	add.Flags().StringVar(&icon, "icon", "", "display icon (defaults to the parent's)")

	rm := &cobra.Command{
		Use:   "rm [category-id] [sub-id]",
		Short: "Remove a subcategory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			if err := ws.catalog.DeleteSubcategory(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed subcategory %s\n", args[1])
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}
