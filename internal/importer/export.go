package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// Export writes transactions of one type as a statement CSV. The layout
// round-trips through StatementParser, so an export can be re-imported.
func Export(w io.Writer, txns []model.Transaction, txType model.TxType) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if t.Type != txType {
			continue
		}
		row := make([]string, numFields)
		row[colDate] = t.Date.Format("02/01/2006")
		row[colAmount] = t.Amount.String()
		row[colType] = string(t.Type)
		row[colCat] = t.Category
		row[colSubcat] = t.Subcategory
		row[colDesc] = t.Description
		row[colMode] = t.PaymentMode
		row[colStatus] = string(t.Status)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
