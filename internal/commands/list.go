package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/model"
	"github.com/moneytrail-dev/moneytrail/internal/money"
	"github.com/moneytrail-dev/moneytrail/internal/report"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var (
		txType string
		source string
		search string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
	}

	resolve := monthFlags(cmd)
	cmd.Flags().StringVar(&txType, "type", "", "filter by type (income|expense)")
	cmd.Flags().StringVar(&source, "source", "", "filter by capture source")
	cmd.Flags().StringVar(&search, "search", "", "match description or category, case-insensitive")
	cmd.Flags().BoolVar(&all, "all", false, "ignore the month selector and list everything")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(opts)
		if err != nil {
			return err
		}

		txns := ws.ledger.All()
		if !all {
			year, month, err := resolve()
			if err != nil {
				return err
			}
			txns = report.MonthTransactions(txns, year, month)
		}

		needle := strings.ToLower(search)
		var out []model.Transaction
		for _, t := range txns {
			if txType != "" && t.Type != model.TxType(txType) {
				continue
			}
			if source != "" && t.Source != model.TxSource(source) {
				continue
			}
			if needle != "" &&
				!strings.Contains(strings.ToLower(t.Description), needle) &&
				!strings.Contains(strings.ToLower(t.Category), needle) {
				continue
			}
			out = append(out, t)
		}

		if len(out) == 0 {
			fmt.Println("No transactions")
			return nil
		}

		groups := report.GroupByDay(out)
		days := make([]time.Time, 0, len(groups))
		for day := range groups {
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

		for _, day := range days {
			fmt.Printf("%s\n", day.Format("Mon, 02 Jan 2006"))
			for _, t := range report.SortByDateDesc(groups[day]) {
				sign := "-"
				if t.Type == model.TypeIncome {
					sign = "+"
				}
				status := ""
				if t.Status == model.StatusPending {
					status = " [pending]"
				}
				fmt.Printf("  %s%-12s  %-15s %-12s %s%s\n",
					sign, money.FormatINR(t.Amount),
					t.Category, t.PaymentMode, t.Description, status)
			}
		}
		fmt.Printf("\n%s\n", formatCount(len(out), "transaction"))
		return nil
	}

	return cmd
}
