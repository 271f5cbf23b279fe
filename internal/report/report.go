// Package report renders action lines and aggregates verification outcomes
// into a single exit-code decision.
//
// Every action line begins with a fixed-width left-justified status token
// followed by the entry key and a human path summary. Automation parses
// this format; keep it stable.
package report

import (
	"fmt"
	"io"

	"github.com/dotstrap/dotstrap/internal/link"
	"github.com/dotstrap/dotstrap/internal/style"
)

// Status tokens. The padded token column is 8 characters wide.
const (
	TokenLinked  = "LINKED"
	TokenSkip    = "SKIP"
	TokenError   = "ERROR"
	TokenDryRun  = "DRYRUN"
	TokenBackup  = "BACKUP"
	TokenOK      = "OK"
	TokenFail    = "FAIL"
	TokenMissing = "MISSING"
	TokenDrift   = "DRIFT"
)

// Process exit codes. Callers distinguish usage errors from environment
// drift, so verification failures and bad invocations use different codes.
const (
	ExitOK     = 0
	ExitVerify = 1 // verification failed: drift, missing dependency
	ExitUsage  = 2 // bad invocation or reconciliation error
)

// Line formats one status line: padded token, padded key, free-form rest.
func Line(token, key, rest string) string {
	if key == "" {
		return fmt.Sprintf("%-7s %s", token, rest)
	}
	return fmt.Sprintf("%-7s %-22s %s", token, key, rest)
}

// styledLine is Line with the token colorized after padding, so the column
// width is unaffected.
func styledLine(colorize func(string) string, token, key, rest string) string {
	plain := Line(token, key, rest)
	return colorize(plain[:7]) + plain[7:]
}

// WriteOutcome renders one apply outcome, including any preparatory
// dry-run notes and the backup line for a performed rename.
func WriteOutcome(w io.Writer, o link.Outcome, dryRun bool) {
	for _, note := range o.Notes {
		fmt.Fprintln(w, Line(TokenDryRun, "", note))
	}

	if o.BackupPath != "" && !dryRun {
		fmt.Fprintln(w, Line(TokenBackup, o.Key, o.BackupPath))
	}

	switch o.Action {
	case link.ActionLinked:
		fmt.Fprintln(w, Line(TokenLinked, o.Key, o.Summary))
	case link.ActionDryRun:
		fmt.Fprintln(w, Line(TokenDryRun, o.Key, o.Summary))
	case link.ActionSkipped:
		fmt.Fprintln(w, Line(TokenSkip, o.Key, o.Detail))
	case link.ActionError:
		fmt.Fprintln(w, Line(TokenError, o.Key, o.Detail))
	}
}

// Reporter tallies pass/fail counts across verification sections.
type Reporter struct {
	w    io.Writer
	OK   int
	Fail int
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Section prints a section heading.
func (r *Reporter) Section(title string) {
	fmt.Fprintln(r.w, style.Rule(title))
}

// Blank prints an empty separator line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.w)
}

// Pass records a passing check and prints it with the OK token.
func (r *Reporter) Pass(key, rest string) {
	r.OK++
	fmt.Fprintln(r.w, styledLine(style.Pass, TokenOK, key, rest))
}

// Failure records a failing check and prints it with the given token
// (FAIL, MISSING, or DRIFT depending on the section).
func (r *Reporter) Failure(token, key, rest string) {
	r.Fail++
	fmt.Fprintln(r.w, styledLine(style.Fail, token, key, rest))
}

// Summary prints the final tally.
func (r *Reporter) Summary() {
	fmt.Fprintln(r.w, style.Rule(fmt.Sprintf("Summary: %d ok, %d fail", r.OK, r.Fail)))
}

// ExitCode is zero iff no check failed.
func (r *Reporter) ExitCode() int {
	if r.Fail > 0 {
		return ExitVerify
	}
	return ExitOK
}
