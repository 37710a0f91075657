package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moneytrail-dev/moneytrail/internal/catalog"
	"github.com/moneytrail-dev/moneytrail/internal/config"
	"github.com/moneytrail-dev/moneytrail/internal/ledger"
	"github.com/moneytrail-dev/moneytrail/internal/logger"
	"github.com/moneytrail-dev/moneytrail/internal/model"
	"github.com/moneytrail-dev/moneytrail/internal/store"
)

// workspace bundles everything a command needs: config, the store, and
// the two state-owning services loaded from it.
type workspace struct {
	dir      string
	cfg      *config.Config
	store    *store.Store
	ledger   *ledger.Service
	catalog  *catalog.Service
	settings model.Settings
	log      zerolog.Logger
}

// openWorkspace loads a workspace rooted at opts.dir. All five
// collections are read here, once, at startup.
func openWorkspace(opts *rootOptions) (*workspace, error) {
	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a moneytrail workspace (run 'moneytrail init' first): %w", err)
	}

	log := logger.New(os.Stderr, opts.verbose)
	st := store.New(dir, log)

	txns, err := st.LoadTransactions()
	if err != nil {
		return nil, err
	}
	cats, err := st.LoadCategories()
	if err != nil {
		return nil, err
	}
	modes, err := st.LoadPaymentModes()
	if err != nil {
		return nil, err
	}
	budgets, err := st.LoadBudgets()
	if err != nil {
		return nil, err
	}
	settings, err := st.LoadSettings()
	if err != nil {
		return nil, err
	}

	return &workspace{
		dir:      dir,
		cfg:      cfg,
		store:    st,
		ledger:   ledger.NewService(log, st, txns),
		catalog:  catalog.NewService(log, st, cats, modes, budgets),
		settings: settings,
		log:      log,
	}, nil
}

// monthFlags adds --month/--year selectors defaulting to the current
// month, and returns a resolver for them.
func monthFlags(cmd *cobra.Command) func() (int, time.Month, error) {
	now := time.Now()
	month := cmd.Flags().Int("month", int(now.Month()), "month to select (1-12)")
	year := cmd.Flags().Int("year", now.Year(), "year to select")

	return func() (int, time.Month, error) {
		if *month < 1 || *month > 12 {
			return 0, 0, fmt.Errorf("month must be 1-12, got %d", *month)
		}
		return *year, time.Month(*month), nil
	}
}

// parseDateFlag accepts a date as YYYY-MM-DD, with an optional HH:MM.
func parseDateFlag(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")", s)
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
