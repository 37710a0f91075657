package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType classifies a transaction as money in or money out.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// TxStatus represents the verification state of a transaction.
type TxStatus string

const (
	StatusConfirmed TxStatus = "confirmed"
	StatusPending   TxStatus = "pending"
)

// TxSource records how a transaction entered the ledger. Display and
// filtering only; it carries no behavioral meaning after capture.
type TxSource string

const (
	SourceManual         TxSource = "manual"
	SourceUPI            TxSource = "upi"
	SourceSMS            TxSource = "sms"
	SourceSMSParser      TxSource = "sms_parser"
	SourceImport         TxSource = "import"
	SourceImportFallback TxSource = "import_fallback"
)

// Transaction is a single income or expense record. Amount is always
// non-negative; the sign of a transaction is derived from Type.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Description string          `json:"description"`
	PaymentMode string          `json:"paymentMode"`
	Date        time.Time       `json:"date"`
	Status      TxStatus        `json:"status"`
	Source      TxSource        `json:"source"`
	ReferenceID string          `json:"referenceId,omitempty"`
}
