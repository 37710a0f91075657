package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("hidden")
	log.Info().Msg("also hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestNew_VerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Str("key", "value").Msg("debug line")
	assert.Contains(t, buf.String(), "debug line")
}
