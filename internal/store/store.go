// Package store persists the five data collections as independently
// keyed JSON files under <workspace>/data/. Each collection is read in
// full at startup and rewritten in full on every mutation; there are no
// partial or delta writes.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

const (
	dataDir          = "data"
	transactionsFile = "transactions.json"
	budgetsFile      = "budgets.json"
	settingsFile     = "settings.json"
	categoriesFile   = "categories.json"
	paymentModesFile = "payment_modes.json"
)

// Store reads and writes the JSON collections of one workspace.
type Store struct {
	dir string
	log zerolog.Logger
}

// New creates a Store rooted at a workspace directory.
func New(dir string, log zerolog.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// LoadTransactions returns the transaction log, or nil when the
// collection has never been written.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := s.read(transactionsFile, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// SaveTransactions rewrites the transaction collection.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	return s.write(transactionsFile, txns)
}

// LoadBudgets returns the budget collection, or nil when absent.
func (s *Store) LoadBudgets() ([]model.Budget, error) {
	var budgets []model.Budget
	if err := s.read(budgetsFile, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SaveBudgets rewrites the budget collection.
func (s *Store) SaveBudgets(budgets []model.Budget) error {
	return s.write(budgetsFile, budgets)
}

// LoadSettings returns the persisted settings, or the defaults when the
// collection has never been written.
func (s *Store) LoadSettings() (model.Settings, error) {
	settings := model.DefaultSettings()
	if err := s.read(settingsFile, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// SaveSettings rewrites the settings collection.
func (s *Store) SaveSettings(settings model.Settings) error {
	return s.write(settingsFile, settings)
}

// LoadCategories returns the category collection, or nil when absent.
func (s *Store) LoadCategories() ([]model.Category, error) {
	var cats []model.Category
	if err := s.read(categoriesFile, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// SaveCategories rewrites the category collection.
func (s *Store) SaveCategories(cats []model.Category) error {
	return s.write(categoriesFile, cats)
}

// LoadPaymentModes returns the payment mode collection, or nil when absent.
func (s *Store) LoadPaymentModes() ([]model.PaymentMode, error) {
	var modes []model.PaymentMode
	if err := s.read(paymentModesFile, &modes); err != nil {
		return nil, err
	}
	return modes, nil
}

// SavePaymentModes rewrites the payment mode collection.
func (s *Store) SavePaymentModes(modes []model.PaymentMode) error {
	return s.write(paymentModesFile, modes)
}

// read unmarshals one collection file into v. A missing file leaves v
// untouched so the caller's seed value stands.
func (s *Store) read(name string, v any) error {
	path := filepath.Join(s.dir, dataDir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	dir := filepath.Join(s.dir, dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	s.log.Debug().Str("collection", name).Msg("collection saved")
	return nil
}
