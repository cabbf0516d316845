// Package report invokes the external result-reporting script.
package report

import (
	"context"
	"path/filepath"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reporter runs `<grindRoot>/infra/submit_results.py --jobid <id>`. A
// nonzero exit is fatal but never re-triggers the submission; the job is
// already committed remotely by the time reporting runs.
type Reporter struct {
	runner ports.ProcessRunner
	logger ports.Logger
}

// NewReporter creates a new Reporter.
func NewReporter(runner ports.ProcessRunner, logger ports.Logger) *Reporter {
	return &Reporter{runner: runner, logger: logger}
}

// Report pushes the job's results to the dashboard.
func (r *Reporter) Report(ctx context.Context, cfg *domain.Config, jobID string) error {
	script := filepath.Join(cfg.GrindRoot, "infra", "submit_results.py")

	res, err := r.runner.Run(ctx, ports.Command{
		Path: script,
		Args: []string{"--jobid", jobID},
		Env:  cfg.ChildEnv(),
	})
	if err != nil {
		return zerr.Wrap(err, "failed to invoke reporting script")
	}
	if res.ExitCode != 0 {
		repErr := zerr.With(zerr.Wrap(domain.ErrReportingFailed, "reporting script exited nonzero"), "job_id", jobID)
		return zerr.With(repErr, "exit_code", res.ExitCode)
	}

	r.logger.Info("reported results for job " + jobID)
	return nil
}
