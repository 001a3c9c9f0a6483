package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Success writes a green status line.
func Success(w io.Writer, format string, args ...any) {
	status(w, "#22c55e", format, args...)
}

// Failure writes a red status line.
func Failure(w io.Writer, format string, args ...any) {
	status(w, "#ef4444", format, args...)
}

// Warning writes a yellow status line.
func Warning(w io.Writer, format string, args ...any) {
	status(w, "#eab308", format, args...)
}

func status(w io.Writer, color, format string, args ...any) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String(fmt.Sprintf(format, args...)).Foreground(out.Color(color)))
}
