package sms

import (
	"strings"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

// noReference stands in for an absent reference id so that two
// reference-less transactions on the same day with the same amount still
// collide.
const noReference = "no_ref"

const fingerprintSep = "_"

// Fingerprint derives a duplicate-detection key from a transaction:
// amount, calendar day, and reference id (or a sentinel when absent).
// Deliberately coarse — description, category, and time of day do not
// participate, so a match means "probably a duplicate, ask the user",
// never an automatic reject. Returns "" for a nil transaction.
func Fingerprint(t *model.Transaction) string {
	if t == nil {
		return ""
	}
	ref := t.ReferenceID
	if ref == "" {
		ref = noReference
	}
	return strings.Join([]string{
		t.Amount.String(),
		t.Date.Format("2006-01-02"),
		ref,
	}, fingerprintSep)
}

// ParsedFingerprint fingerprints a parse result before it is stored.
func ParsedFingerprint(p *Parsed) string {
	if p == nil {
		return ""
	}
	t := p.Transaction()
	return Fingerprint(&t)
}
