// Package style centralizes the lipgloss styles used by human output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	rule    = lipgloss.NewStyle().Bold(true)
	passTag = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failTag = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// enabled gates styling on stdout being a terminal. Piped output stays
// plain so the fixed-width line contract is what automation sees.
var enabled = term.IsTerminal(int(os.Stdout.Fd()))

// SetEnabled overrides TTY detection, for tests.
func SetEnabled(on bool) {
	enabled = on
}

// Rule renders a bold section heading.
func Rule(title string) string {
	if !enabled {
		return "== " + title + " =="
	}
	return rule.Render("== " + title + " ==")
}

// Pass colors a passing status token.
func Pass(token string) string {
	if !enabled {
		return token
	}
	return passTag.Render(token)
}

// Fail colors a failing status token.
func Fail(token string) string {
	if !enabled {
		return token
	}
	return failTag.Render(token)
}
