package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Green-to-teal gradient.
	lines := []struct{ text, color string }{
		{"                              _             _ ", "#4ade80"},
		{"  _ __ ___   __ _ _ __ ___   __| | __ _ _ __ (_)", "#34d399"},
		{" | '_ ` _ \\ / _` | '_ ` _ \\ / _` |/ _` | '_ \\| |", "#2dd4bf"},
		{" | | | | | | (_| | | | | | | (_| | (_| | | | | |", "#22d3ee"},
		{" |_| |_| |_|\\__,_|_| |_| |_|\\__,_|\\__,_|_| |_|_|", "#38bdf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
