package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.Local), d)

	d, err = parseDateFlag("2025-06-15 14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, d.Hour())
	assert.Equal(t, 30, d.Minute())

	_, err = parseDateFlag("15/06/2025")
	require.Error(t, err)
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0 rows", formatCount(0, "row"))
	assert.Equal(t, "1 row", formatCount(1, "row"))
	assert.Equal(t, "3 rows", formatCount(3, "row"))
}
