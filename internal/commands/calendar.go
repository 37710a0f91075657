package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/calendar"
	"github.com/moneytrail-dev/moneytrail/internal/money"
	"github.com/moneytrail-dev/moneytrail/internal/report"
)

func newCalendarCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month grid with per-day spending",
		Long: "Prints a calendar for the selected month. Days with activity " +
			"are marked, and per-day totals follow the grid.",
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

		daily := report.DailyTotals(ws.ledger.All(), year, month)

		fmt.Printf("%s %d\n", month, year)
		fmt.Println(" Su  Mo  Tu  We  Th  Fr  Sa")

		var row strings.Builder
		row.WriteString(strings.Repeat("    ", int(calendar.FirstWeekday(year, month))))

		days := calendar.DaysInMonth(year, month)
		for day := 1; day <= days; day++ {
			mark := " "
			if _, ok := daily[day]; ok {
				mark = "*"
			}
			row.WriteString(fmt.Sprintf("%3d%s", day, mark))

			weekday := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Weekday()
			if weekday == time.Saturday || day == days {
				fmt.Println(strings.TrimRight(row.String(), " "))
				row.Reset()
			}
		}

		if len(daily) == 0 {
			fmt.Println("\nNo transactions this month")
			return nil
		}

		fmt.Println()
		for day := 1; day <= days; day++ {
			d, ok := daily[day]
			if !ok {
				continue
			}
			today := ""
			if calendar.IsToday(time.Date(year, month, day, 0, 0, 0, 0, time.Local)) {
				today = " (today)"
			}
			fmt.Printf("  %s %2d: income %s, expense %s, net %s%s\n",
				calendar.ShortMonthName(month), day,
				money.FormatINR(d.Income), money.FormatINR(d.Expense), money.FormatINR(d.Net), today)
		}
		return nil
	}

	return cmd
}
