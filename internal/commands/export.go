package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/importer"
	"github.com/moneytrail-dev/moneytrail/internal/model"
	"github.com/moneytrail-dev/moneytrail/internal/report"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as income and expense CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}

			txns := report.SortByDateDesc(ws.ledger.All())
			stamp := time.Now().Format("2006-01-02")

			sides := []struct {
				txType model.TxType
				name   string
			}{
				{model.TypeIncome, fmt.Sprintf("income_%s.csv", stamp)},
				{model.TypeExpense, fmt.Sprintf("expenses_%s.csv", stamp)},
			}

			for _, side := range sides {
				path := filepath.Join(ws.dir, "exports", side.name)
				if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
					return fmt.Errorf("creating exports dir: %w", err)
				}
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("creating %s: %w", side.name, err)
				}
				if err := importer.Export(f, txns, side.txType); err != nil {
					f.Close()
					return fmt.Errorf("exporting %s: %w", side.name, err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("closing %s: %w", side.name, err)
				}
				fmt.Printf("Wrote %s\n", path)
			}
			return nil
		},
	}

	return cmd
}
