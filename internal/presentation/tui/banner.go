package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  ____  _ _        ____  _                    ", "#34d399"},
	{" | __ )(_) | _____/ ___|| |__   __ _ _ __ ___ ", "#2dd4bf"},
	{" |  _ \\| | |/ / _ \\___ \\| '_ \\ / _` | '__/ _ \\", "#22d3ee"},
	{" | |_) | |   <  __/___) | | | | (_| | | |  __/", "#38bdf8"},
	{" |____/|_|_|\\_\\___|____/|_| |_|\\__,_|_|  \\___|", "#60a5fa"},
}

// PrintBanner writes the BikeShare ASCII banner to w, colored for the terminal's profile.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
