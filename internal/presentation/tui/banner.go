package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{`                      _ _ `, "#22d3ee"},
	{`  _ __ ___   ___ ___| | |`, "#38bdf8"},
	{` | '_ ' _ \ / __/ _ \ | |`, "#60a5fa"},
	{` | | | | | | (_|  __/ | |`, "#818cf8"},
	{` |_| |_| |_|\___\___|_|_|`, "#a78bfa"},
}

// PrintBanner writes the mcell banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
