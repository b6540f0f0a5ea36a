package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(buf, slog.LevelDebug)

	logger.Debug("dataset loaded", "error", errors.New("boom"), "elapsed", 1500*time.Microsecond)

	out := buf.String()
	assert.Contains(t, out, "err=boom")
	assert.Contains(t, out, "elapsed_ms=1.5")
	assert.NotContains(t, out, "error=")
}

func TestNewWithWriter_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithWriter(buf, slog.LevelInfo)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}
