package deps

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/dotstrap/dotstrap/internal/logging"
	"github.com/dotstrap/dotstrap/internal/types"
)

// Probe reports whether the check's target is present in the environment.
func Probe(c Check) bool {
	logger := logging.GetLogger("deps")

	var ok bool
	switch c.Kind {
	case types.KindCommand:
		_, err := exec.LookPath(c.Target)
		ok = err == nil
	case types.KindDir:
		info, err := os.Stat(c.Target)
		ok = err == nil && info.IsDir()
	case types.KindFile:
		info, err := os.Stat(c.Target)
		ok = err == nil && info.Mode().IsRegular()
	}

	logger.Debug().Str("label", c.Label).Str("kind", c.Kind.String()).
		Str("target", c.Target).Bool("present", ok).Msg("probed dependency")
	return ok
}

// Referenced reports whether the check's pattern matches any non-comment
// line of the rc file. Checks without a pattern are always considered
// referenced. An invalid pattern never matches.
func Referenced(c Check, rcPath string) (bool, error) {
	if c.Pattern == "" {
		return true, nil
	}

	regex, err := regexp.Compile(c.Pattern)
	if err != nil {
		return false, nil
	}

	f, err := os.Open(rcPath)
	if err != nil {
		return false, fmt.Errorf("failed to open rc file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if regex.MatchString(line) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read rc file: %w", err)
	}
	return false, nil
}

// FindRCFile locates the shell rc file to scan: the explicit path when
// given, else ./.zshrc, else ~/.zshrc.
func FindRCFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("rc file not found at: %s", explicit)
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := cwd + string(os.PathSeparator) + ".zshrc"
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	candidate := home + string(os.PathSeparator) + ".zshrc"
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate, nil
	}

	return "", fmt.Errorf(".zshrc not found; provide a path")
}

// hardcodedPathPattern matches literal /Users/<name> or /home/<name> paths
// that should have been written relative to $HOME.
var hardcodedPathPattern = regexp.MustCompile(`/(Users|home)/[^\s/]+`)

// PathViolation is one hardcoded home path found in a scanned file.
type PathViolation struct {
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// ScanHardcodedPaths reports lines of the given file containing hardcoded
// home directory paths.
func ScanHardcodedPaths(path string) ([]PathViolation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var violations []PathViolation
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if hardcodedPathPattern.MatchString(line) {
			violations = append(violations, PathViolation{Line: lineno, Text: strings.TrimRight(line, " \t")})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return violations, nil
}
