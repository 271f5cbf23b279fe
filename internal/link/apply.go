package link

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dotstrap/dotstrap/internal/logging"
	"github.com/dotstrap/dotstrap/internal/pathutil"
	"github.com/dotstrap/dotstrap/internal/types"
)

// Options configures an apply batch.
type Options struct {
	Policy types.ReplacePolicy
	DryRun bool
}

// Action is the outcome category of one entry during apply.
type Action string

const (
	ActionLinked  Action = "linked"
	ActionSkipped Action = "skipped"
	ActionError   Action = "error"
	ActionDryRun  Action = "dryrun"
)

// Outcome is the per-entry result of an apply batch.
type Outcome struct {
	Key        string           `json:"key" yaml:"key"`
	Status     types.LinkStatus `json:"status" yaml:"status"` // classification before acting
	Action     Action           `json:"action" yaml:"action"`
	Detail     string           `json:"detail,omitempty" yaml:"detail,omitempty"`
	Summary    string           `json:"summary,omitempty" yaml:"summary,omitempty"`
	BackupPath string           `json:"backup_path,omitempty" yaml:"backup_path,omitempty"`
	// Notes are preparatory intents (mkdir/mv/rm) reported under dry-run.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Err   error    `json:"-" yaml:"-"`
}

// Result aggregates an apply batch. The batch failed iff at least one entry
// produced an entry-level error; sibling entries are always still processed.
type Result struct {
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
	Linked   int       `json:"linked" yaml:"linked"`
	Skipped  int       `json:"skipped" yaml:"skipped"`
	Errors   int       `json:"errors" yaml:"errors"`
}

// Failed reports whether any entry produced an error.
func (r *Result) Failed() bool {
	return r.Errors > 0
}

// Apply reconciles each entry in input order. Already-correct entries are
// no-ops, so re-running a batch under the same policy performs zero
// additional mutations. Under dry-run the filesystem is never touched; every
// action is only reported.
func Apply(entries []Entry, opts Options) *Result {
	logger := logging.GetLogger("link")
	result := &Result{}

	for _, entry := range entries {
		outcome := applyOne(entry, opts)

		switch outcome.Action {
		case ActionLinked, ActionDryRun:
			result.Linked++
		case ActionSkipped:
			result.Skipped++
		case ActionError:
			result.Errors++
			logger.Debug().Str("key", entry.Key).Str("status", outcome.Status.String()).
				Msg("entry failed")
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	logger.Debug().Int("linked", result.Linked).Int("skipped", result.Skipped).
		Int("errors", result.Errors).Bool("dry_run", opts.DryRun).Msg("apply finished")

	return result
}

func applyOne(entry Entry, opts Options) Outcome {
	status, _ := Classify(entry)
	outcome := Outcome{Key: entry.Key, Status: status, Summary: entry.Summary()}

	switch status {
	case types.StatusMissingSource:
		outcome.Action = ActionError
		outcome.Detail = fmt.Sprintf("source missing: %s", pathutil.Display(entry.Source))
		outcome.Err = fmt.Errorf("source missing: %s", entry.Source)
		return outcome

	case types.StatusLinked:
		outcome.Action = ActionSkipped
		outcome.Detail = "already linked"
		return outcome

	case types.StatusTargetDir:
		outcome.Action = ActionError
		outcome.Detail = fmt.Sprintf("target is a directory: %s", pathutil.Display(entry.Target))
		outcome.Err = fmt.Errorf("target is a directory: %s", entry.Target)
		return outcome
	}

	if status.Occupied() {
		if opts.Policy.IsSafe() {
			outcome.Action = ActionSkipped
			outcome.Detail = "target exists (use --mode backup/force)"
			return outcome
		}

		backup, notes, err := removeTarget(entry.Target, opts.Policy, opts.DryRun)
		outcome.Notes = append(outcome.Notes, notes...)
		if err != nil {
			outcome.Action = ActionError
			outcome.Detail = err.Error()
			outcome.Err = err
			return outcome
		}
		outcome.BackupPath = backup
	}

	notes, err := ensureParentDir(entry.Target, opts.DryRun)
	outcome.Notes = append(outcome.Notes, notes...)
	if err != nil {
		outcome.Action = ActionError
		outcome.Detail = err.Error()
		outcome.Err = err
		return outcome
	}

	if opts.DryRun {
		outcome.Notes = append(outcome.Notes,
			fmt.Sprintf("ln -s %s %s", pathutil.Display(entry.Source), pathutil.Display(entry.Target)))
		outcome.Action = ActionDryRun
		return outcome
	}

	if err := os.Symlink(entry.Source, entry.Target); err != nil {
		outcome.Action = ActionError
		outcome.Detail = fmt.Sprintf("failed to create link: %v", err)
		outcome.Err = err
		return outcome
	}

	outcome.Action = ActionLinked
	return outcome
}

// removeTarget clears the target path per the replace policy before a new
// link is created. A real directory is always an error: the engine never
// deletes or merges directories. The returned backup path is non-empty only
// under the backup policy.
func removeTarget(target string, policy types.ReplacePolicy, dryRun bool) (string, []string, error) {
	info, err := os.Lstat(target)
	if err != nil {
		// Nothing occupies the path.
		return "", nil, nil
	}

	if info.IsDir() && info.Mode()&os.ModeSymlink == 0 {
		return "", nil, fmt.Errorf("target is a directory: %s", pathutil.Display(target))
	}

	switch policy {
	case types.PolicySafe:
		// Caller is responsible for having skipped occupied targets.
		return "", nil, nil

	case types.PolicyBackup:
		backup := backupPathFor(target, time.Now())
		if dryRun {
			note := fmt.Sprintf("mv %s %s", pathutil.Display(target), pathutil.Display(backup))
			return backup, []string{note}, nil
		}
		if err := os.Rename(target, backup); err != nil {
			return "", nil, fmt.Errorf("failed to back up target: %w", err)
		}
		return backup, nil, nil

	case types.PolicyForce:
		if dryRun {
			return "", []string{fmt.Sprintf("rm %s", pathutil.Display(target))}, nil
		}
		if err := os.Remove(target); err != nil {
			return "", nil, fmt.Errorf("failed to remove target: %w", err)
		}
		return "", nil, nil
	}

	return "", nil, fmt.Errorf("invalid replace policy '%s'", policy)
}

// backupTimestampFormat yields a 14-digit second-resolution suffix.
const backupTimestampFormat = "20060102150405"

// backupPathFor computes the sibling path an existing target is renamed to
// under the backup policy. Two backups of the same file within one second
// get a -N counter; the documented <name>.bak.<timestamp> prefix never
// changes.
func backupPathFor(target string, now time.Time) string {
	base := fmt.Sprintf("%s.bak.%s", filepath.Base(target), now.Format(backupTimestampFormat))
	candidate := filepath.Join(filepath.Dir(target), base)
	for i := 1; ; i++ {
		if _, err := os.Lstat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(filepath.Dir(target), fmt.Sprintf("%s-%d", base, i))
	}
}

// ensureParentDir creates the target's parent directory if missing. Under
// dry-run only the intent is reported.
func ensureParentDir(target string, dryRun bool) ([]string, error) {
	parent := filepath.Dir(target)
	if _, err := os.Stat(parent); err == nil {
		return nil, nil
	}
	if dryRun {
		return []string{fmt.Sprintf("mkdir -p %s", pathutil.Display(parent))}, nil
	}
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create parent directory: %w", err)
	}
	return nil, nil
}
