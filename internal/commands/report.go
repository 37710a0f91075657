package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/calendar"
	"github.com/moneytrail-dev/moneytrail/internal/model"
	"github.com/moneytrail-dev/moneytrail/internal/money"
	"github.com/moneytrail-dev/moneytrail/internal/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var (
		breakdownType string
		months        int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show monthly totals, trends, and category breakdown",
	}

	resolve := monthFlags(cmd)
	cmd.Flags().StringVar(&breakdownType, "type", "expense", "breakdown side (income|expense)")
	cmd.Flags().IntVar(&months, "months", 6, "trailing months in the series")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(opts)
		if err != nil {
			return err
		}
		year, month, err := resolve()
		if err != nil {
			return err
		}

		txType := model.TxType(breakdownType)
		if txType != model.TypeIncome && txType != model.TypeExpense {
			return fmt.Errorf("invalid type %q (want income or expense)", breakdownType)
		}

		log := ws.ledger.All()
		totals := report.MonthTotals(log, year, month)
		previous := report.PreviousMonthTotals(log, year, month)

		fmt.Printf("%s, %s\n\n", calendar.Greeting(time.Now().Hour()), ws.settings.UserName)
		fmt.Printf("%s %d\n\n", month, year)
		fmt.Printf("  Income    %12s  (%+d%% vs last month)\n",
			money.FormatINR(totals.Income),
			report.PercentageChange(totals.Income, previous.Income))
		fmt.Printf("  Expenses  %12s  (%+d%% vs last month)\n",
			money.FormatINR(totals.Expenses),
			report.PercentageChange(totals.Expenses, previous.Expenses))
		fmt.Printf("  Savings   %12s\n", money.FormatINR(totals.Savings))

		if breakdown := report.CategoryBreakdown(log, year, month, txType); len(breakdown) > 0 {
			fmt.Printf("\nBy category (%s):\n", txType)
			for _, c := range breakdown {
				fmt.Printf("  %-20s %12s\n", c.Category, money.FormatINR(c.Amount))
			}
		}

		if months > 0 {
			fmt.Println("\nTrailing months:")
			for _, p := range report.MonthlySeries(log, year, month, months) {
				fmt.Printf("  %s %d  income %12s  expense %12s\n",
					calendar.ShortMonthName(p.Month), p.Year,
					money.FormatINR(p.Income), money.FormatINR(p.Expense))
			}
		}

		stats := report.AutoSyncStats(log, year, month)
		fmt.Printf("\nCaptured: %d total (%d upi, %d sms, %d manual), %d pending\n",
			stats.Total, stats.UPI, stats.SMS, stats.Manual, stats.Pending)
		return nil
	}

	return cmd
}
