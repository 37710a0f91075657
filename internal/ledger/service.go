// Package ledger owns the ordered transaction log. It is the single
// writer of the transactions collection; aggregation consumers take
// read-only snapshots via All.
package ledger

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/moneytrail-dev/moneytrail/internal/id"
	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// Writer persists the full transaction collection. Invoked after every
// mutation; the write is whole-collection, never a delta.
type Writer interface {
	SaveTransactions([]model.Transaction) error
}

// Service provides create/update/delete/bulk-import over the in-memory
// transaction log, persisting through its Writer on each mutation.
type Service struct {
	log          zerolog.Logger
	writer       Writer
	transactions []model.Transaction
}

// NewService creates a Service over a previously loaded log.
func NewService(log zerolog.Logger, w Writer, initial []model.Transaction) *Service {
	return &Service{log: log, writer: w, transactions: initial}
}

// Patch holds the fields an Update may change. Nil fields are left
// unchanged on the stored record.
type Patch struct {
	Type        *model.TxType
	Amount      *decimal.Decimal
	Category    *string
	Subcategory *string
	Description *string
	PaymentMode *string
	Date        *time.Time
	Status      *model.TxStatus
}

// Add stores a new transaction at the head of the log and returns it
// with defaults applied: a fresh id when absent, status confirmed,
// source manual, date now. Callers with better values (the SMS path
// sets source sms_parser) set them before calling.
func (s *Service) Add(t model.Transaction) (model.Transaction, error) {
	if t.Amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("amount must be non-negative, got %s", t.Amount)
	}
	if t.Type != model.TypeIncome && t.Type != model.TypeExpense {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", t.Type)
	}

	if t.ID == "" {
		t.ID = id.New()
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	if t.Status == "" {
		t.Status = model.StatusConfirmed
	}
	if t.Source == "" {
		t.Source = model.SourceManual
	}

	next := append([]model.Transaction{t}, s.transactions...)
	if err := s.persistAs(next); err != nil {
		return model.Transaction{}, err
	}
	s.transactions = next

	s.log.Debug().
		Str("id", t.ID).
		Str("type", string(t.Type)).
		Str("amount", t.Amount.String()).
		Msg("transaction added")
	return t, nil
}

// Update merges the patch into the transaction with the given id.
// Unknown ids are a silent no-op; the log is never corrupted.
func (s *Service) Update(txID string, p Patch) error {
	if p.Amount != nil && p.Amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative, got %s", p.Amount)
	}

	for i := range s.transactions {
		if s.transactions[i].ID != txID {
			continue
		}
		apply(&s.transactions[i], p)
		return s.persist()
	}

	s.log.Debug().Str("id", txID).Msg("update target not found")
	return nil
}

// Delete removes the transaction with the given id. Unknown ids are a
// silent no-op.
func (s *Service) Delete(txID string) error {
	for i := range s.transactions {
		if s.transactions[i].ID != txID {
			continue
		}
		s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
		return s.persist()
	}

	s.log.Debug().Str("id", txID).Msg("delete target not found")
	return nil
}

// BulkImport prepends every record verbatim. Each record must already
// carry an id (the importer assigns them); no duplicate detection is
// performed here — that is the importer's call to make.
func (s *Service) BulkImport(txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	for i, t := range txns {
		if t.ID == "" {
			return fmt.Errorf("bulk import record %d has no id", i)
		}
	}

	next := append(append([]model.Transaction{}, txns...), s.transactions...)
	if err := s.persistAs(next); err != nil {
		return err
	}
	s.transactions = next

	s.log.Debug().Int("count", len(txns)).Msg("transactions imported")
	return nil
}

// All returns a snapshot copy of the log. Storage order is not
// meaningful; consumers re-sort by date for display.
func (s *Service) All() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Get returns the transaction with the given id.
func (s *Service) Get(txID string) (model.Transaction, bool) {
	for _, t := range s.transactions {
		if t.ID == txID {
			return t, true
		}
	}
	return model.Transaction{}, false
}

func (s *Service) persist() error {
	return s.persistAs(s.transactions)
}

func (s *Service) persistAs(txns []model.Transaction) error {
	if err := s.writer.SaveTransactions(txns); err != nil {
		return fmt.Errorf("persisting transactions: %w", err)
	}
	return nil
}

func apply(t *model.Transaction, p Patch) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Subcategory != nil {
		t.Subcategory = *p.Subcategory
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.PaymentMode != nil {
		t.PaymentMode = *p.PaymentMode
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
