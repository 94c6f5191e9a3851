package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	isTTY bool

	// Colors (bun-style)
	cyan   = lipgloss.Color("6")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	// Styles - exported for use in other packages
	Primary = lipgloss.NewStyle().Foreground(cyan)
	Error   = lipgloss.NewStyle().Foreground(red)
	Warning = lipgloss.NewStyle().Foreground(yellow)
	Dim     = lipgloss.NewStyle().Foreground(dim)
	Bold    = lipgloss.NewStyle().Bold(true)
)

func init() {
	isTTY = term.IsTerminal(int(os.Stdout.Fd()))
	if !isTTY {
		// Disable colors in non-TTY
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsTTY returns whether stdout is a terminal
func IsTTY() bool {
	return isTTY
}

// Line writes one plain result line. Result lines are never styled so
// they stay pipe-friendly.
func Line(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

// WarnMsg prints a warning message
func WarnMsg(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", Warning.Render("warning:"), msg)
}

// ErrorMsg prints an error with formatting and optional hints
func ErrorMsg(w io.Writer, title string, err error, hints ...string) {
	fmt.Fprintf(w, "%s %s\n", Error.Render("✗"), title)
	if err != nil {
		fmt.Fprintf(w, "  %s\n", Dim.Render(err.Error()))
	}
	for _, hint := range hints {
		fmt.Fprintf(w, "  %s %s\n", Dim.Render("Hint:"), hint)
	}
}
