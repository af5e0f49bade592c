package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/humorlint/internal/configloader"
	"github.com/yaklabco/humorlint/pkg/lsp"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// Exit codes for humorlint.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates the check completed but found issues.
	ExitLintErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrLintIssuesFound is returned when the check reports diagnostics.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrFilesUnreadable is returned when some files could not be checked.
	ErrFilesUnreadable = errors.New("some files could not be read")

	// ErrInvalidUsage marks flag values that failed validation.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code for a completed check.
// Issues take precedence over unreadable files.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasIssues() {
		return ExitLintErrors
	}

	if result.HasErrors() {
		return ExitIOError
	}

	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLintIssuesFound), errors.Is(err, lsp.ErrExitWithoutShutdown):
		return ExitLintErrors
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFilesUnreadable), errors.Is(err, fs.ErrNotExist):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsSilent reports whether err only signals an exit code and has already
// been reported to the user.
func IsSilent(err error) bool {
	return errors.Is(err, ErrLintIssuesFound) ||
		errors.Is(err, ErrFilesUnreadable) ||
		errors.Is(err, lsp.ErrExitWithoutShutdown)
}

func resultError(result *runner.Result) error {
	switch ExitCodeFromResult(result) {
	case ExitLintErrors:
		return ErrLintIssuesFound
	case ExitIOError:
		return ErrFilesUnreadable
	default:
		return nil
	}
}
