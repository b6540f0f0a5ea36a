package stats

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackMessage replaces an aggregator's statistics when they cannot be computed.
const FallbackMessage = "Nothing found!"

var (
	// ErrNoRecords is returned when the record set is empty.
	ErrNoRecords = errors.New("no records")
	// ErrMissingColumn is returned when the source lacks a column the statistic needs.
	ErrMissingColumn = errors.New("missing column")
	// ErrNoValues is returned when a column holds no usable value.
	ErrNoValues = errors.New("no values")
)

// Line is one labeled statistic.
type Line struct {
	Label string
	Value string
}

// Result is the outcome of one aggregator: either Lines, or Err for the fallback.
type Result struct {
	Aggregator string
	Title      string
	Lines      []Line
	Err        error
}

// Fallback reports whether the result is the "Nothing found!" outcome.
func (r Result) Fallback() bool {
	return r.Err != nil
}

// Body renders the statistics, one "Label: value" per line, or the fallback message.
func (r Result) Body() string {
	if r.Fallback() {
		return FallbackMessage
	}
	lines := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = fmt.Sprintf("%s: %s", l.Label, l.Value)
	}
	return strings.Join(lines, "\n")
}

// Text renders the title followed by the body as plain text.
func (r Result) Text() string {
	return fmt.Sprintf("\n%s\n\n%s\n", r.Title, r.Body())
}

// Markdown renders the result for a markdown renderer.
func (r Result) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", strings.TrimSuffix(r.Title, "..."))
	if r.Fallback() {
		fmt.Fprintf(&b, "_%s_\n", FallbackMessage)
		return b.String()
	}
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "- **%s**: %s\n", l.Label, l.Value)
	}
	return b.String()
}
