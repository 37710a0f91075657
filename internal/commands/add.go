package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/activity"
	"github.com/moneytrail-dev/moneytrail/internal/model"
	"github.com/moneytrail-dev/moneytrail/internal/money"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var (
		txType      string
		amountStr   string
		category    string
		subcategory string
		description string
		mode        string
		dateStr     string
		pending     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			txn := model.Transaction{
				Type:        model.TxType(txType),
				Amount:      amount,
				Category:    category,
				Subcategory: subcategory,
				Description: description,
				PaymentMode: mode,
			}
			if pending {
				txn.Status = model.StatusPending
			}
			if dateStr != "" {
				d, err := parseDateFlag(dateStr)
				if err != nil {
					return err
				}
				txn.Date = d
			}

			stored, err := ws.ledger.Add(txn)
			if err != nil {
				return err
			}

			if err := activity.Append(ws.dir, []activity.Entry{{
				Timestamp:     time.Now(),
				Action:        "add",
				Details:       fmt.Sprintf("%s %s, %s", stored.Type, stored.Amount, stored.Category),
				TransactionID: stored.ID,
			}}); err != nil {
				ws.log.Warn().Err(err).Msg("activity log write failed")
			}

			fmt.Printf("Recorded %s %s (%s) — id %s\n",
				stored.Type, money.FormatINR(stored.Amount), stored.Category, stored.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (income|expense)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount in rupees (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", "other", "category slug")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory")
	cmd.Flags().StringVar(&description, "description", "", "display text")
	cmd.Flags().StringVar(&mode, "mode", "cash", "payment mode slug")
	cmd.Flags().StringVar(&dateStr, "date", "", "date (YYYY-MM-DD, defaults to now)")
	cmd.Flags().BoolVar(&pending, "pending", false, "mark as pending instead of confirmed")

	return cmd
}
