// Package report derives all displayed figures from a transaction log.
// Every function is pure and read-only over its snapshot; nothing here
// caches results across mutations.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrail-dev/moneytrail/internal/calendar"
	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// Totals summarizes one month. Savings may be negative.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// CategoryAmount is one slice of a category breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// MonthPoint is one month of a trailing series.
type MonthPoint struct {
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// SyncStats counts a month's transactions by capture source.
type SyncStats struct {
	UPI     int
	SMS     int
	Manual  int
	Pending int
	Total   int
}

// DayTotals summarizes a single calendar day.
type DayTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// MonthTransactions returns transactions whose local calendar month and
// year match the selector.
func MonthTransactions(log []model.Transaction, year int, month time.Month) []model.Transaction {
	var out []model.Transaction
	for _, t := range log {
		if t.Date.Year() == year && t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// DateTransactions returns transactions on the same local calendar day
// as the given date; time of day is ignored.
func DateTransactions(log []model.Transaction, date time.Time) []model.Transaction {
	var out []model.Transaction
	for _, t := range log {
		if calendar.SameDay(t.Date, date) {
			out = append(out, t)
		}
	}
	return out
}

// MonthTotals sums the selected month by type. An empty month yields
// all-zero totals.
func MonthTotals(log []model.Transaction, year int, month time.Month) Totals {
	return sumByType(MonthTransactions(log, year, month))
}

// PreviousMonthTotals is MonthTotals shifted back one month, rolling
// January over to December of the prior year.
func PreviousMonthTotals(log []model.Transaction, year int, month time.Month) Totals {
	prevYear, prevMonth := calendar.PreviousMonth(year, month)
	return MonthTotals(log, prevYear, prevMonth)
}

// PercentageChange reports the month-over-month swing, rounded to the
// nearest whole percent. A zero previous value yields 100 when current
// is positive (spending appeared from nothing) and 0 otherwise; it never
// divides by zero. Trend arrows downstream rely on the rounded sign.
func PercentageChange(current, previous decimal.Decimal) int64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// CategorySpending maps category to summed expense amount for the
// selected month. Income transactions are excluded.
func CategorySpending(log []model.Transaction, year int, month time.Month) map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, t := range MonthTransactions(log, year, month) {
		if t.Type != model.TypeExpense {
			continue
		}
		spending[t.Category] = spending[t.Category].Add(t.Amount)
	}
	return spending
}

// CategoryBreakdown sums the selected type by category for the selected
// month, ordered by descending amount. Ties keep first-seen order, which
// is all the determinism slice ordering needs.
func CategoryBreakdown(log []model.Transaction, year int, month time.Month, txType model.TxType) []CategoryAmount {
	sums := make(map[string]int)
	var out []CategoryAmount
	for _, t := range MonthTransactions(log, year, month) {
		if t.Type != txType {
			continue
		}
		if i, ok := sums[t.Category]; ok {
			out[i].Amount = out[i].Amount.Add(t.Amount)
			continue
		}
		sums[t.Category] = len(out)
		out = append(out, CategoryAmount{Category: t.Category, Amount: t.Amount})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// MonthlySeries produces the trailing window of months ending at the
// selector (inclusive), oldest first, each with summed income and
// expense. Month arithmetic rolls over year boundaries.
func MonthlySeries(log []model.Transaction, year int, month time.Month, window int) []MonthPoint {
	if window <= 0 {
		return nil
	}

	out := make([]MonthPoint, window)
	y, m := year, month
	for i := window - 1; i >= 0; i-- {
		totals := MonthTotals(log, y, m)
		out[i] = MonthPoint{
			Year:    y,
			Month:   m,
			Income:  totals.Income,
			Expense: totals.Expenses,
		}
		y, m = calendar.PreviousMonth(y, m)
	}
	return out
}

// AutoSyncStats counts the month's transactions by source plus pending
// status. Only the upi, sms, and manual sources are broken out; Total
// covers every source.
func AutoSyncStats(log []model.Transaction, year int, month time.Month) SyncStats {
	var stats SyncStats
	for _, t := range MonthTransactions(log, year, month) {
		switch t.Source {
		case model.SourceUPI:
			stats.UPI++
		case model.SourceSMS:
			stats.SMS++
		case model.SourceManual:
			stats.Manual++
		}
		if t.Status == model.StatusPending {
			stats.Pending++
		}
		stats.Total++
	}
	return stats
}

// GroupByDay buckets transactions by local calendar day, keyed by
// midnight of that day. Within a bucket, input order is preserved.
func GroupByDay(log []model.Transaction) map[time.Time][]model.Transaction {
	groups := make(map[time.Time][]model.Transaction)
	for _, t := range log {
		day := time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.Local)
		groups[day] = append(groups[day], t)
	}
	return groups
}

// DailyTotals maps day-of-month to summed income/expense/net for the
// selected month. Days without transactions are absent from the map.
func DailyTotals(log []model.Transaction, year int, month time.Month) map[int]DayTotals {
	totals := make(map[int]DayTotals)
	for _, t := range MonthTransactions(log, year, month) {
		day := totals[t.Date.Day()]
		if t.Type == model.TypeIncome {
			day.Income = day.Income.Add(t.Amount)
		} else {
			day.Expense = day.Expense.Add(t.Amount)
		}
		day.Net = day.Income.Sub(day.Expense)
		totals[t.Date.Day()] = day
	}
	return totals
}

// SortByDateDesc returns a copy of the transactions ordered newest
// first, for display. Storage order is not meaningful.
func SortByDateDesc(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func sumByType(txns []model.Transaction) Totals {
	var t Totals
	for _, txn := range txns {
		switch txn.Type {
		case model.TypeIncome:
			t.Income = t.Income.Add(txn.Amount)
		case model.TypeExpense:
			t.Expenses = t.Expenses.Add(txn.Amount)
		}
	}
	t.Savings = t.Income.Sub(t.Expenses)
	return t
}

