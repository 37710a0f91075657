package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrail-dev/moneytrail/internal/catalog"
	"github.com/moneytrail-dev/moneytrail/internal/id"
	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// StatementParser parses the generic statement CSV layout, which is also
// what Export writes: Date, Amount, Type, Category, Sub Category,
// Description, Payment Mode, Status.
type StatementParser struct{}

// Header is the statement CSV header row.
const Header = "Date,Amount,Type,Category,Sub Category,Description,Payment Mode,Status"

const (
	numFields = 8
	colDate   = 0
	colAmount = 1
	colType   = 2
	colCat    = 3
	colSubcat = 4
	colDesc   = 5
	colMode   = 6
	colStatus = 7
)

// Dates are accepted in day-first or ISO form.
var dateFormats = []string{"02/01/2006", "2006-01-02"}

// Format returns the parser name.
func (p *StatementParser) Format() string { return "statement" }

// Parse reads a statement CSV. Rows missing a parseable date or amount
// are skipped and counted, never fatal. Each produced transaction
// carries a fresh id and source=import.
func (p *StatementParser) Parse(r io.Reader) ([]model.Transaction, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, 0, nil
	}

	var txns []model.Transaction
	skipped := 0
	for _, rec := range records[1:] {
		txn, ok := parseRow(rec)
		if !ok {
			skipped++
			continue
		}
		txns = append(txns, txn)
	}
	return txns, skipped, nil
}

func parseRow(rec []string) (model.Transaction, bool) {
	date, ok := parseDate(rec[colDate])
	if !ok {
		return model.Transaction{}, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(rec[colAmount], ",", ""))
	if err != nil || amount.IsNegative() {
		return model.Transaction{}, false
	}

	txType := model.TxType(strings.ToLower(rec[colType]))
	if txType == "" {
		txType = model.TypeExpense
	}
	if txType != model.TypeIncome && txType != model.TypeExpense {
		return model.Transaction{}, false
	}

	category := catalog.Slug(rec[colCat])
	if category == "" {
		category = "other"
	}
	mode := catalog.Slug(rec[colMode])
	if mode == "" {
		mode = "cash"
	}
	description := rec[colDesc]
	if description == "" {
		description = "Imported Transaction"
	}
	status := model.TxStatus(strings.ToLower(rec[colStatus]))
	if status != model.StatusPending {
		status = model.StatusConfirmed
	}

	return model.Transaction{
		ID:          id.New(),
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Subcategory: rec[colSubcat],
		Description: description,
		PaymentMode: mode,
		Date:        date,
		Status:      status,
		Source:      model.SourceImport,
	}, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
