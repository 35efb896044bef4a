//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := newConsoleLogger(&buf, config.LogLevelInfo)

	log.Info("registration created", "registration_id", "abc", "event", "copa-fkba")
	log.Warn("pix qr code unavailable")
	log.Debug("hidden at info level")

	output := buf.String()
	assert.Contains(t, output, "registration created")
	assert.Contains(t, output, "registration_id=abc")
	assert.Contains(t, output, "event=copa-fkba")
	assert.Contains(t, output, "pix qr code unavailable")
	assert.NotContains(t, output, "hidden at info level")
}

func TestConsoleLogger_FallsBackToSprint(t *testing.T) {
	var buf bytes.Buffer
	log := newConsoleLogger(&buf, config.LogLevelDebug)

	log.Info("Starting server on port ", 8000)

	assert.Contains(t, buf.String(), "Starting server on port 8000")
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	log := newConsoleLogger(&buf, config.LogLevelInfo)

	require.PanicsWithValue(t, "boom", func() { log.Panic("boom") })
	assert.Contains(t, buf.String(), "boom")
}

func TestSplitArgs(t *testing.T) {
	msg, attrs := splitArgs([]interface{}{"msg", "k", 1})
	assert.Equal(t, "msg", msg)
	assert.Equal(t, []any{"k", 1}, attrs)

	msg, attrs = splitArgs([]interface{}{"msg", 1, 2})
	assert.Equal(t, "msg1 2", msg)
	assert.Nil(t, attrs)

	msg, _ = splitArgs(nil)
	assert.Empty(t, msg)
}
