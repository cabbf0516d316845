// Package isolate invokes the external archiving tool that content-addresses
// and uploads dependency archives for each isolated task definition.
package isolate

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"go.trai.ch/zerr"
)

// Archiver wraps the archiving tool with bounded, jittered retries. The
// tool's stdout and stderr stream through to the parent; the manifest JSON
// written to the hashes file is the result side channel.
type Archiver struct {
	runner  ports.ProcessRunner
	sleeper ports.Sleeper
	logger  ports.Logger
	policy  BackoffPolicy
	rng     *rand.Rand
}

// NewArchiver creates a new Archiver with the given backoff policy.
func NewArchiver(runner ports.ProcessRunner, sleeper ports.Sleeper, logger ports.Logger, policy BackoffPolicy) *Archiver {
	return &Archiver{
		runner:  runner,
		sleeper: sleeper,
		logger:  logger,
		policy:  policy,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // jitter, not crypto
	}
}

// Archive runs `<isolate> batcharchive --dump-json=<hashesPath> -- <files...>`
// until it succeeds or the attempt budget is spent, then reads the manifest
// the tool wrote. A transient nonzero exit is retried after a jittered
// pause; a spawn failure is fatal immediately.
func (a *Archiver) Archive(ctx context.Context, cfg *domain.Config, isolatedFiles []string, hashesPath string) (domain.ArchiveManifest, error) {
	args := []string{"batcharchive", "--dump-json=" + hashesPath, "--"}
	args = append(args, isolatedFiles...)

	cmd := ports.Command{
		Path: cfg.IsolatePath,
		Args: args,
		Env:  cfg.ChildEnv(),
	}

	var lastExit int
	for attempt := 1; attempt <= a.policy.MaxAttempts; attempt++ {
		res, err := a.runner.Run(ctx, cmd)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to invoke archiving tool")
		}
		if res.ExitCode == 0 {
			return ReadManifest(hashesPath)
		}

		lastExit = res.ExitCode
		if attempt == a.policy.MaxAttempts {
			break
		}

		delay := a.policy.Delay(a.rng)
		a.logger.Warn(fmt.Sprintf("archiving attempt %d/%d exited with %d, retrying in %s",
			attempt, a.policy.MaxAttempts, res.ExitCode, delay.Round(time.Second)))
		if err := a.sleeper.Sleep(ctx, delay); err != nil {
			return nil, zerr.Wrap(err, "retry wait interrupted")
		}
	}

	toolErr := zerr.With(zerr.Wrap(domain.ErrExternalTool, "archiving failed after all attempts"), "tool", "isolate")
	toolErr = zerr.With(toolErr, "exit_code", lastExit)
	return nil, zerr.With(toolErr, "attempts", a.policy.MaxAttempts)
}

// ReadManifest decodes the description-to-hash mapping the archiving tool
// dumped to path.
func ReadManifest(path string) (domain.ArchiveManifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path lives in the run workspace
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read hashes file"), "path", path)
	}

	var manifest domain.ArchiveManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse hashes file"), "path", path)
	}
	return manifest, nil
}
