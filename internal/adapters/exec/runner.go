// Package exec provides the child-process runner adapter.
package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	osexec "os/exec"
	"strings"

	"github.com/xiao-chen/dist-test/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec. Child stdout and
// stderr stream straight to the parent's streams; when capture is requested
// stdout is additionally buffered for the caller.
type Runner struct {
	logger ports.Logger

	// Stdout and Stderr receive the child's streams. They default to the
	// process streams and exist so tests can observe output.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run spawns the command and waits for it to terminate. The child inherits
// the parent environment with cmd.Env entries layered on top, later entries
// winning. A nonzero exit status is reported through the result, not as an
// error.
func (r *Runner) Run(ctx context.Context, cmd ports.Command) (ports.Result, error) {
	c := osexec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // tool paths come from validated config
	c.Dir = cmd.Dir
	c.Env = mergeEnv(os.Environ(), cmd.Env)
	c.Stderr = r.Stderr

	// Captured output is still teed to the parent so the user sees what
	// the tool printed.
	var captured bytes.Buffer
	if cmd.CaptureStdout {
		c.Stdout = io.MultiWriter(r.Stdout, &captured)
	} else {
		c.Stdout = r.Stdout
	}

	r.logger.Info("running " + cmd.Path + " " + strings.Join(cmd.Args, " "))

	err := c.Run()
	if err != nil {
		var exitErr *osexec.ExitError
		if !errors.As(err, &exitErr) {
			return ports.Result{}, zerr.With(zerr.Wrap(err, "failed to spawn command"), "path", cmd.Path)
		}
		return ports.Result{ExitCode: exitErr.ExitCode(), Stdout: captured.String()}, nil
	}

	return ports.Result{ExitCode: 0, Stdout: captured.String()}, nil
}

// mergeEnv layers overlay entries over the base environment, last write
// wins per key.
func mergeEnv(base, overlay []string) []string {
	envMap := make(map[string]string, len(base)+len(overlay))
	order := make([]string, 0, len(base)+len(overlay))

	apply := func(entries []string) {
		for _, entry := range entries {
			k, v, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			if _, seen := envMap[k]; !seen {
				order = append(order, k)
			}
			envMap[k] = v
		}
	}
	apply(base)
	apply(overlay)

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
