package sms

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(amount string, date time.Time, ref string) *model.Transaction {
	return &model.Transaction{Amount: dec(amount), Date: date, ReferenceID: ref}
}

func TestFingerprint_Deterministic(t *testing.T) {
	day := time.Date(2025, time.March, 12, 9, 30, 0, 0, time.Local)

	a := Fingerprint(txn("1250.5", day, "ABC1"))
	b := Fingerprint(txn("1250.5", day, "ABC1"))
	assert.Equal(t, a, b)
	assert.Equal(t, "1250.5_2025-03-12_ABC1", a)
}

func TestFingerprint_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2025, time.March, 12, 8, 0, 0, 0, time.Local)
	evening := time.Date(2025, time.March, 12, 21, 45, 10, 0, time.Local)

	assert.Equal(t,
		Fingerprint(txn("500", morning, "R1")),
		Fingerprint(txn("500", evening, "R1")))
}

func TestFingerprint_SensitiveFields(t *testing.T) {
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)
	base := Fingerprint(txn("500", day, "R1"))

	assert.NotEqual(t, base, Fingerprint(txn("501", day, "R1")), "amount changes key")
	assert.NotEqual(t, base, Fingerprint(txn("500", day, "R2")), "reference changes key")
	assert.NotEqual(t, base, Fingerprint(txn("500", day.AddDate(0, 0, 1), "R1")), "day changes key")
}

func TestFingerprint_MissingReferenceSentinel(t *testing.T) {
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)

	a := Fingerprint(txn("80", day, ""))
	b := Fingerprint(txn("80", day, ""))
	assert.Equal(t, "80_2025-03-12_no_ref", a)
	assert.Equal(t, a, b)
}

func TestFingerprint_NilInput(t *testing.T) {
	assert.Empty(t, Fingerprint(nil))
	assert.Empty(t, ParsedFingerprint(nil))
}

func TestParsedFingerprint_MatchesStoredTransaction(t *testing.T) {
	p := Parse("Rs. 500 debited. UPI Ref XYZ9")
	require.NotNil(t, p)

	stored := p.Transaction()
	stored.ID = "some-assigned-id"
	stored.Status = model.StatusConfirmed

	assert.Equal(t, ParsedFingerprint(p), Fingerprint(&stored))
}
