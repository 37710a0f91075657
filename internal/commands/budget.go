package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/money"
	"github.com/moneytrail-dev/moneytrail/internal/report"
)

func newBudgetCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category spending limits",
	}

	cmd.AddCommand(
		newBudgetListCommand(opts),
		newBudgetAddCommand(opts),
		newBudgetSetCommand(opts),
		newBudgetRemoveCommand(opts),
	)

	return cmd
}

func newBudgetListCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show budgets with the selected month's spending",
	}

	resolve := monthFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(opts)
		if err != nil {
			return err
		}
		year, month, err := resolve()
		if err != nil {
			return err
		}

		budgets := ws.catalog.Budgets()
		if len(budgets) == 0 {
			fmt.Println("No budgets")
			return nil
		}

		spending := report.CategorySpending(ws.ledger.All(), year, month)
		for _, b := range budgets {
			spent := spending[b.Category]
			status := ""
			if spent.GreaterThan(b.Limit) {
				status = "  OVER"
			}
			fmt.Printf("%-20s %12s of %-12s%s  (id %s)\n",
				b.Name, money.FormatINR(spent), money.FormatINR(b.Limit), status, b.ID)
		}
		return nil
	}

	return cmd
}

func newBudgetAddCommand(opts *rootOptions) *cobra.Command {
	var (
		categoryID string
		limitStr   string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			limit, err := decimal.NewFromString(limitStr)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", limitStr, err)
			}
			b, err := ws.catalog.AddBudget(categoryID, args[0], limit)
			if err != nil {
				return err
			}
			fmt.Printf("Added budget %s (%s) — id %s\n", b.Name, money.FormatINR(b.Limit), b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category-id", "", "tie the budget to an existing category id")
	cmd.Flags().StringVar(&limitStr, "limit", "", "monthly limit in rupees (required)")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func newBudgetSetCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [id] [limit]",
		Short: "Change a budget's limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			limit, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}
			if err := ws.catalog.SetBudgetLimit(args[0], limit); err != nil {
				return err
			}
			fmt.Printf("Set budget %s to %s\n", args[0], money.FormatINR(limit))
			return nil
		},
	}

	return cmd
}

func newBudgetRemoveCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			if err := ws.catalog.DeleteBudget(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed budget %s\n", args[0])
			return nil
		},
	}

	return cmd
}
