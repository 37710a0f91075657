// Package sms turns raw bank notification text into candidate
// transactions, and fingerprints transactions for duplicate detection.
package sms

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// Parsed is the result of classifying one message. All fields except
// ReferenceID are populated for a non-nil result.
type Parsed struct {
	Type         model.TxType
	Amount       decimal.Decimal
	Date         time.Time
	PaymentMode  string
	ReferenceID  string // empty when the message carries no reference
	Description  string
	OriginalText string
}

// Messages must contain at least one of these to be considered a
// transaction at all.
var includeKeywords = []string{
	"debited", "credited", "spent", "received", "txn", "transaction", "upi",
}

// Promotional and OTP traffic. Any of these vetoes the message outright,
// no matter how many include keywords also match.
var excludeKeywords = []string{
	"otp", "offer", "cashback", "win", "reward", "sale",
}

// keywordRule maps a keyword set to a result. Rules are evaluated in
// order against the lowercased message; the first rule with any keyword
// present wins.
type keywordRule struct {
	keywords []string
	result   string
}

// Income keywords are checked before expense keywords, so a message
// containing both classifies as income. Inherited behavior; real
// messages rarely contain both.
var typeRules = []keywordRule{
	{keywords: []string{"credited", "received"}, result: string(model.TypeIncome)},
	{keywords: []string{"debited", "spent", "paid"}, result: string(model.TypeExpense)},
}

// "card" subsumes "debit card" and "credit card". The upi rule comes
// first: a card transaction routed over UPI reports as upi.
var modeRules = []keywordRule{
	{keywords: []string{"upi"}, result: "upi"},
	{keywords: []string{"card"}, result: "card"},
	{keywords: []string{"netbanking", "net banking"}, result: "netbanking"},
}

// Currency marker followed by a number with optional comma grouping and
// up to two decimal places. Matched against the original-case message.
var amountPattern = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)\s?([0-9,]+(?:\.[0-9]{1,2})?)`)

// Labeled reference token: "Ref no", "UPI Ref", "Txn ID", "Transaction ID"
// with flexible whitespace, then a separator and an alphanumeric run.
var referencePattern = regexp.MustCompile(`(?i)(?:ref\s?no|upi\s?ref|txn\s?id|transaction\s?id)[\s:\-]*([a-zA-Z0-9]+)`)

// Parse classifies a message and extracts transaction fields. It returns
// nil when the message is not a financial transaction or carries no
// parseable amount; it never returns a partial result.
//
// The parse date is stamped with the current time. Callers holding a more
// reliable timestamp (the message-received time) should override Date
// before persisting.
func Parse(message string) *Parsed {
	if message == "" {
		return nil
	}
	text := strings.ToLower(message)

	if !containsAny(text, includeKeywords) || containsAny(text, excludeKeywords) {
		return nil
	}

	txType := model.TxType(matchRules(text, typeRules, string(model.TypeExpense)))

	m := amountPattern.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}

	mode := matchRules(text, modeRules, "cash")

	var referenceID string
	if rm := referencePattern.FindStringSubmatch(message); rm != nil {
		referenceID = rm[1]
	}

	description := "SMS Transaction"
	if referenceID != "" {
		description = "Txn: " + referenceID
	}

	return &Parsed{
		Type:         txType,
		Amount:       amount,
		Date:         time.Now(),
		PaymentMode:  mode,
		ReferenceID:  referenceID,
		Description:  description,
		OriginalText: message,
	}
}

// Transaction converts a parse result into a ledger candidate tagged with
// the sms_parser source. The ledger assigns the id and status defaults.
func (p *Parsed) Transaction() model.Transaction {
	return model.Transaction{
		Type:        p.Type,
		Amount:      p.Amount,
		Description: p.Description,
		PaymentMode: p.PaymentMode,
		Date:        p.Date,
		Source:      model.SourceSMSParser,
		ReferenceID: p.ReferenceID,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func matchRules(text string, rules []keywordRule, fallback string) string {
	for _, r := range rules {
		if containsAny(text, r.keywords) {
			return r.result
		}
	}
	return fallback
}
