package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, New())
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := New()
		require.False(t, seen[v], "duplicate id %s", v)
		seen[v] = true
	}
}

func TestNew_ValidUUID(t *testing.T) {
	_, err := uuid.Parse(New())
	require.NoError(t, err)
}
