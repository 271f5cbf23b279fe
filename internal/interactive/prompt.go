// Package interactive provides the confirmation gate that blocks
// destructive replace policies from running unattended.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dotstrap/dotstrap/internal/types"
)

// IsTerminal checks if stdin is a terminal (TTY).
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Prompter asks yes/no questions on the configured streams.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter creates a prompter on stdin/stdout.
func NewPrompter() *Prompter {
	return NewPrompterWithIO(os.Stdin, os.Stdout)
}

// NewPrompterWithIO creates a prompter with custom streams (for testing).
func NewPrompterWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", question)

	scanner := bufio.NewScanner(p.in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// ConfirmPolicy gates an apply run. Dry runs, explicit approval, and the
// safe policy pass straight through; backup/force require an interactive
// yes, and fail closed when stdin is not a terminal.
func (p *Prompter) ConfirmPolicy(policy types.ReplacePolicy, dryRun, yes bool) bool {
	if dryRun || yes || policy.IsSafe() {
		return true
	}
	if !IsTerminal() {
		fmt.Fprintf(p.out, "Refusing to run mode '%s' non-interactively (use --yes to override).\n", policy)
		return false
	}
	return p.Confirm(fmt.Sprintf("Mode '%s' will modify existing targets. Continue?", policy))
}
