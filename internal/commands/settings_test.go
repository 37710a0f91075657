package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytrail-dev/moneytrail/internal/model"
)

func TestApplySetting(t *testing.T) {
	s := model.DefaultSettings()

	s, err := applySetting(s, "userName", "Priya")
	require.NoError(t, err)
	assert.Equal(t, "Priya", s.UserName)

	s, err = applySetting(s, "theme", "light")
	require.NoError(t, err)
	assert.Equal(t, "light", s.Theme)

	s, err = applySetting(s, "autoSync.sms", "false")
	require.NoError(t, err)
	assert.False(t, s.AutoSync.SMS)

	s, err = applySetting(s, "notifications.dailySummary", "true")
	require.NoError(t, err)
	assert.True(t, s.Notifications.DailySummary)
}

func TestApplySetting_Invalid(t *testing.T) {
	s := model.DefaultSettings()

	_, err := applySetting(s, "theme", "solarized")
	require.Error(t, err)

	_, err = applySetting(s, "autoSync.upi", "maybe")
	require.Error(t, err)

	_, err = applySetting(s, "unknown.key", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}
