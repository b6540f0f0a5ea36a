package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	PrintBanner(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(bannerLines))
	assert.Contains(t, buf.String(), "|____/|_|_|")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer()
	require.NoError(t, err)

	out, err := render("## Calculating Trip Duration\n\n- **Total travel time**: 0:00:20\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Total travel time")
	assert.Contains(t, out, "0:00:20")
}
