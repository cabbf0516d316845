package domain

import "errors"

// Process exit codes of the grind CLI.
const (
	ExitSuccess = 0
	// ExitUsage covers invalid arguments and limit violations.
	ExitUsage = 1
	// ExitNoTests is returned when discovery produced no test units.
	ExitNoTests = 2
	// ExitTestsFailed mirrors the execution client's tests-failed status.
	ExitTestsFailed = 88
)

// ExitCodeFor maps a pipeline error to the process exit code. Tool failures
// propagate the child's exit code when one was recorded in the error
// metadata; everything else falls back to ExitUsage.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrTestsFailed):
		return ExitTestsFailed
	case errors.Is(err, ErrNoTestsFound):
		return ExitNoTests
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrTaskLimitExceeded):
		return ExitUsage
	case errors.Is(err, ErrExternalTool), errors.Is(err, ErrReportingFailed):
		if code := exitCodeMetadata(err); code > 0 {
			return code
		}
		return ExitUsage
	default:
		return ExitUsage
	}
}

// exitCodeMetadata walks the chain; every wrapping carries its own metadata,
// so the recorded code may sit below the outermost error.
func exitCodeMetadata(err error) int {
	for err != nil {
		if zErr, ok := err.(interface{ Metadata() map[string]any }); ok {
			if code, ok := zErr.Metadata()["exit_code"].(int); ok {
				return code
			}
		}
		err = errors.Unwrap(err)
	}
	return 0
}
