// Package ui renders the check and status reports for interactive terminals.
// Styling degrades gracefully on non-TTY output via lipgloss.
package ui

import (
	"fmt"
	"strings"
)

// Header renders a report title with an underline.
func Header(title string) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(title) + "\n")
	b.WriteString("  " + dimStyle.Render(strings.Repeat("─", len(title))) + "\n")
	return b.String()
}

// Row renders a pass/fail line with an optional detail column.
func Row(ok bool, name, extra string) string {
	mark := okStyle.Render(checkMark)
	if !ok {
		mark = failStyle.Render(crossMark)
	}
	return renderRow(mark, name, extra)
}

// WarnRow renders a non-fatal finding.
func WarnRow(name, extra string) string {
	return renderRow(warnStyle.Render(warnMark), name, extra)
}

func renderRow(mark, name, extra string) string {
	if extra != "" {
		return fmt.Sprintf("  %s %-28s %s\n", mark, name, dimStyle.Render(extra))
	}
	return fmt.Sprintf("  %s %s\n", mark, name)
}
