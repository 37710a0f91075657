package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/activity"
	"github.com/moneytrail-dev/moneytrail/internal/importer"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var (
		format string
		dedupe bool
	)

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import transactions from a statement CSV",
		Long: "Imports the given statement file, or every CSV waiting in the " +
			"workspace import/ directory when no file is named. Rows missing " +
			"a date or amount are skipped and counted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(opts)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", format)
			}

			if len(args) == 1 {
				return importFile(ws, parser, args[0], dedupe, false)
			}

			files, err := importer.Scan(ws.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("Nothing to import (drop statement CSVs into import/)")
				return nil
			}
			for _, f := range files {
				if err := importFile(ws, parser, f.Path, dedupe, true); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "statement", "statement format")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "drop rows whose fingerprint matches an existing transaction")

	return cmd
}

func importFile(ws *workspace, parser importer.Parser, path string, dedupe, markProcessed bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, skipped, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	duplicates := 0
	if dedupe {
		txns, duplicates = importer.Dedupe(txns, ws.ledger.All())
	}

	if err := ws.ledger.BulkImport(txns); err != nil {
		return err
	}

	name := filepath.Base(path)
	if err := activity.Append(ws.dir, []activity.Entry{{
		Timestamp: time.Now(),
		Action:    "import",
		Details: fmt.Sprintf("%s: %d imported, %d skipped, %d duplicate",
			name, len(txns), skipped, duplicates),
	}}); err != nil {
		ws.log.Warn().Err(err).Msg("activity log write failed")
	}

	if markProcessed {
		if err := importer.MarkProcessed(ws.dir, name); err != nil {
			return err
		}
	}

	fmt.Printf("%s: imported %s, skipped %s, dropped %s\n",
		name,
		formatCount(len(txns), "transaction"),
		formatCount(skipped, "row"),
		formatCount(duplicates, "duplicate"))
	return nil
}
