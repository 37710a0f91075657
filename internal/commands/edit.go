package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/ledger"
	"github.com/moneytrail-dev/moneytrail/internal/model"
)

func newEditCommand(opts *rootOptions) *cobra.Command {
	var (
		txType      string
		amountStr   string
		category    string
		subcategory string
		description string
		mode        string
		dateStr     string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change fields on a transaction",
		Long: "Changes only the fields whose flags are given; the rest keep " +
			"their stored values.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}

			txID := args[0]
			if _, ok := ws.ledger.Get(txID); !ok {
				return fmt.Errorf("transaction %s not found", txID)
			}

			var patch ledger.Patch
			if cmd.Flags().Changed("type") {
				t := model.TxType(txType)
				if t != model.TypeIncome && t != model.TypeExpense {
					return fmt.Errorf("invalid type %q (want income or expense)", txType)
				}
				patch.Type = &t
			}
			if cmd.Flags().Changed("amount") {
				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", amountStr, err)
				}
				patch.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("subcategory") {
				patch.Subcategory = &subcategory
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("mode") {
				patch.PaymentMode = &mode
			}
			if cmd.Flags().Changed("date") {
				d, err := parseDateFlag(dateStr)
				if err != nil {
					return err
				}
				patch.Date = &d
			}
			if cmd.Flags().Changed("status") {
				s := model.TxStatus(status)
				if s != model.StatusConfirmed && s != model.StatusPending {
					return fmt.Errorf("invalid status %q (want confirmed or pending)", status)
				}
				patch.Status = &s
			}

			if err := ws.ledger.Update(txID, patch); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", txID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "", "transaction type (income|expense)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount in rupees")
	cmd.Flags().StringVar(&category, "category", "", "category slug")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory")
	cmd.Flags().StringVar(&description, "description", "", "display text")
	cmd.Flags().StringVar(&mode, "mode", "", "payment mode slug")
	cmd.Flags().StringVar(&dateStr, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "status (confirmed|pending)")

	return cmd
}

func newRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}
			if _, ok := ws.ledger.Get(args[0]); !ok {
				return fmt.Errorf("transaction %s not found", args[0])
			}
			if err := ws.ledger.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
