package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	ts := time.Date(2025, time.April, 3, 10, 30, 0, 0, time.UTC)
	require.NoError(t, Append(dir, []Entry{
		{Timestamp: ts, Action: "parse", Details: "Rs.450 debited via UPI", TransactionID: "t1"},
	}))
	require.NoError(t, Append(dir, []Entry{
		{Timestamp: ts.Add(time.Hour), Action: "import", Details: "april.csv: 12 imported, 1 skipped"},
	}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "parse", entries[0].Action)
	assert.Equal(t, "t1", entries[0].TransactionID)
	assert.True(t, entries[0].Timestamp.Equal(ts))

	assert.Equal(t, "import", entries[1].Action)
	assert.Empty(t, entries[1].TransactionID)
}

func TestRead_NoLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMarshalRoundTrip(t *testing.T) {
	e := Entry{
		Timestamp:     time.Date(2025, time.April, 3, 10, 30, 0, 0, time.UTC),
		Action:        "add",
		Details:       "manual expense, food",
		TransactionID: "abc-123",
	}

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e.Action, got.Action)
	assert.Equal(t, e.Details, got.Details)
	assert.Equal(t, e.TransactionID, got.TransactionID)
	assert.True(t, got.Timestamp.Equal(e.Timestamp))
}

func TestUnmarshal_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	require.Error(t, err)
}
