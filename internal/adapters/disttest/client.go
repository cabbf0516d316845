// Package disttest invokes the distributed-execution client that hands task
// lists to the remote scheduler.
package disttest

import (
	"context"
	"regexp"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client wraps the execution client binary. Submissions are never retried
// here; retry-on-failure for submitted tasks belongs to the remote fabric.
type Client struct {
	runner ports.ProcessRunner
	logger ports.Logger
}

// NewClient creates a new Client.
func NewClient(runner ports.ProcessRunner, logger ports.Logger) *Client {
	return &Client{runner: runner, logger: logger}
}

// Submit runs `<client> submit [--artifacts --output-dir <dir>] --name <name>
// <taskListPath>`, capturing stdout for job-id extraction while stderr flows
// through. Exit 0 and the distinguished tests-failed status both produce a
// result; any other nonzero exit is a tool failure.
func (c *Client) Submit(ctx context.Context, cfg *domain.Config, taskListPath string, opts domain.SubmitOptions) (*domain.SubmissionResult, error) {
	args := []string{"submit"}
	if opts.Artifacts {
		args = append(args, "--artifacts", "--output-dir", opts.OutputDir)
	}
	args = append(args, "--name", opts.Name, taskListPath)

	res, err := c.runner.Run(ctx, ports.Command{
		Path:          cfg.ClientPath,
		Args:          args,
		Env:           cfg.ChildEnv(),
		CaptureStdout: true,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to invoke execution client")
	}

	if res.ExitCode != 0 && res.ExitCode != domain.ExitTestsFailed {
		toolErr := zerr.With(zerr.Wrap(domain.ErrExternalTool, "execution client failed"), "tool", "client")
		return nil, zerr.With(toolErr, "exit_code", res.ExitCode)
	}

	jobID, found := ParseJobID(res.Stdout)
	if found {
		c.logger.Info("submitted job " + jobID)
	}

	return &domain.SubmissionResult{
		ExitCode:  res.ExitCode,
		RawOutput: res.Stdout,
		JobID:     jobID,
	}, nil
}

// jobIDPattern is the client's stdout micro-protocol: a single line of the
// form `job_id=<value>`. Kept in one place so a format change upstream only
// touches this parser.
var jobIDPattern = regexp.MustCompile(`(?m)^job_id=(\S+)\s*$`)

// ParseJobID extracts the job identifier from captured client output. When
// the client prints several matching lines, the first one is authoritative.
func ParseJobID(output string) (string, bool) {
	m := jobIDPattern.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return m[1], true
}
