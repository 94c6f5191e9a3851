package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xschemadev/linecount/vocab"
)

// optionRow is one help line: all tokens sharing an effect, plus usage
type optionRow struct {
	tokens string
	usage  string
}

// Help prints usage information built from the vocabulary
func Help(w io.Writer, program string, v *vocab.Vocabulary) {
	fmt.Fprintln(w, Bold.Render(program))
	fmt.Fprintln(w, "count lines of a file or of the files in a directory")
	fmt.Fprintln(w)

	fmt.Fprintln(w, Bold.Render("USAGE:"))
	fmt.Fprintf(w, "  %s [OPTIONS]... PATH\n", program)
	fmt.Fprintln(w)

	rows := helpRows(v.Options())
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r.tokens))
	}
	tokenCol := lipgloss.NewStyle().Width(width + 2)

	fmt.Fprintln(w, Bold.Render("OPTIONS:"))
	for _, r := range rows {
		fmt.Fprintf(w, "  %s%s\n", tokenCol.Render(Primary.Render(r.tokens)), r.usage)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s the last argument is always the path.\n", Dim.Render("Note:"))
}

// helpRows merges consecutive aliases (same kind, same format) into one row
func helpRows(options []vocab.Option) []optionRow {
	var rows []optionRow
	var group []vocab.Option

	flush := func() {
		if len(group) == 0 {
			return
		}
		tokens := make([]string, len(group))
		for i, o := range group {
			tokens[i] = o.Token
		}
		row := optionRow{tokens: strings.Join(tokens, ", "), usage: group[0].Usage}
		if arg := group[0].Arg; arg != "" {
			row.tokens += " " + arg
		}
		rows = append(rows, row)
		group = group[:0]
	}

	for _, o := range options {
		if len(group) > 0 && (group[0].Kind != o.Kind || group[0].Format != o.Format) {
			flush()
		}
		group = append(group, o)
	}
	flush()
	return rows
}
