package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/catalog"
	"github.com/moneytrail-dev/moneytrail/internal/config"
	"github.com/moneytrail-dev/moneytrail/internal/logger"
	"github.com/moneytrail-dev/moneytrail/internal/model"
	"github.com/moneytrail-dev/moneytrail/internal/store"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new moneytrail workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.dir
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "User", "profile name")

	return cmd
}

func runInit(dir, name string) error {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return fmt.Errorf("workspace already initialized at %s", dir)
	}

	// Create directory structure.
	dirs := []string{
		"data",
		"logs",
		"import",
		filepath.Join("import", "processed"),
		"exports",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write moneytrail.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the five collections.
	st := store.New(dir, logger.Nop())
	if err := st.SaveTransactions([]model.Transaction{}); err != nil {
		return fmt.Errorf("seeding transactions: %w", err)
	}
	if err := st.SaveCategories(catalog.DefaultCategories()); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}
	if err := st.SavePaymentModes(catalog.DefaultPaymentModes()); err != nil {
		return fmt.Errorf("seeding payment modes: %w", err)
	}
	if err := st.SaveBudgets(catalog.DefaultBudgets()); err != nil {
		return fmt.Errorf("seeding budgets: %w", err)
	}
	settings := model.DefaultSettings()
	settings.UserName = name
	if err := st.SaveSettings(settings); err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}

	fmt.Printf("Initialized moneytrail workspace at %s\n", dir)
	return nil
}
