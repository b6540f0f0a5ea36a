package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/bikeshare/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_Input(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("  Chicago  \nlast"), outBuf)

	val, err := handler.Input(context.Background(), "city? ")
	require.NoError(t, err)
	assert.Equal(t, "Chicago", val)

	// Final line without a newline is still delivered.
	val, err = handler.Input(context.Background(), "again? ")
	require.NoError(t, err)
	assert.Equal(t, "last", val)

	_, err = handler.Input(context.Background(), "more? ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "city? again? more? ", outBuf.String())
}

func TestTextHandler_InputRejectsInvalidUTF8(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("\xbd\xb2\nyes\n"), outBuf)

	val, err := handler.Input(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "yes", val)
	assert.Contains(t, outBuf.String(), "Please try again.")
}

func TestTextHandler_InputCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	handler := NewTextHandler(pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := handler.Input(ctx, "> ")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestTextHandler_Report(t *testing.T) {
	res := stats.Result{
		Title: "Calculating Trip Duration...",
		Lines: []stats.Line{{Label: "Total travel time", Value: "0:01:00"}},
	}

	t.Run("plain", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		handler := NewTextHandler(strings.NewReader(""), outBuf)
		require.NoError(t, handler.Report(context.Background(), res))
		assert.Equal(t, "\nCalculating Trip Duration...\n\nTotal travel time: 0:01:00\n", outBuf.String())
	})

	t.Run("rendered", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerRenderer(func(s string) (string, error) {
			return "Rendered: " + s, nil
		}))
		require.NoError(t, handler.Report(context.Background(), res))
		assert.True(t, strings.HasPrefix(outBuf.String(), "Rendered: ## Calculating Trip Duration"))
	})

	t.Run("renderer failure falls back to text", func(t *testing.T) {
		outBuf := &bytes.Buffer{}
		handler := NewTextHandler(strings.NewReader(""), outBuf, WithTextHandlerRenderer(func(s string) (string, error) {
			return "", errors.New("no tty")
		}))
		require.NoError(t, handler.Report(context.Background(), res))
		assert.Contains(t, outBuf.String(), "Total travel time: 0:01:00")
	})
}

func TestTextHandler_OutputAndSystem(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	require.NoError(t, handler.Output(context.Background(), "Hello"))
	require.NoError(t, handler.SystemOutput(context.Background(), "data missing"))
	assert.Equal(t, "Hello\n\n>>> data missing\n", outBuf.String())
}
