package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

func testWorkspace(t *testing.T) *workspace {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Test"))
	ws, err := openWorkspace(&rootOptions{dir: dir})
	require.NoError(t, err)
	return ws
}

func TestCaptureMessage_StoresTransaction(t *testing.T) {
	ws := testWorkspace(t)

	outcome, err := captureMessage(ws, "Rs.500 debited from A/c via UPI Ref no 1234", "food", "", false)
	require.NoError(t, err)
	assert.Equal(t, captureStored, outcome)

	txns := ws.ledger.All()
	require.Len(t, txns, 1)
	assert.Equal(t, model.TypeExpense, txns[0].Type)
	assert.Equal(t, "food", txns[0].Category)
	assert.Equal(t, "upi", txns[0].PaymentMode)
	assert.Equal(t, "1234", txns[0].ReferenceID)
	assert.Equal(t, model.SourceSMSParser, txns[0].Source)
}

func TestCaptureMessage_SkipsNonTransaction(t *testing.T) {
	ws := testWorkspace(t)

	outcome, err := captureMessage(ws, "Your OTP is 123456", "other", "", false)
	require.NoError(t, err)
	assert.Equal(t, captureSkipped, outcome)
	assert.Empty(t, ws.ledger.All())
}

func TestCaptureMessage_DuplicateDetection(t *testing.T) {
	ws := testWorkspace(t)
	msg := "Rs.500 debited via UPI Ref no 9876"

	outcome, err := captureMessage(ws, msg, "other", "2025-06-10", false)
	require.NoError(t, err)
	assert.Equal(t, captureStored, outcome)

	// Same amount, day, and reference is caught and skipped.
	outcome, err = captureMessage(ws, msg, "other", "2025-06-10", false)
	require.NoError(t, err)
	assert.Equal(t, captureDuplicate, outcome)
	assert.Len(t, ws.ledger.All(), 1)

	// --allow-duplicate bypasses the check.
	outcome, err = captureMessage(ws, msg, "other", "2025-06-10", true)
	require.NoError(t, err)
	assert.Equal(t, captureStored, outcome)
	assert.Len(t, ws.ledger.All(), 2)
}

func TestCaptureMessage_DateOverride(t *testing.T) {
	ws := testWorkspace(t)

	outcome, err := captureMessage(ws, "Rs.250 credited to A/c", "salary", "2025-01-05", false)
	require.NoError(t, err)
	assert.Equal(t, captureStored, outcome)

	txns := ws.ledger.All()
	require.Len(t, txns, 1)
	assert.Equal(t, 2025, txns[0].Date.Year())
	assert.Equal(t, 5, txns[0].Date.Day())
	assert.Equal(t, model.TypeIncome, txns[0].Type)
}
