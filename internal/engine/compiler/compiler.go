// Package compiler turns an archive manifest into a bounded, validated task
// list ready for submission to the execution fabric.
package compiler

import (
	"encoding/json"
	"os"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// MaxTasks caps repetitions times manifest size. A runaway repetition
	// count must never reach the remote scheduler.
	MaxTasks = 10000

	// MaxRetriesPerTask bounds the per-task retry annotation.
	MaxRetriesPerTask = 100
)

// Options parameterize one compilation.
type Options struct {
	// Repetitions is how many tasks to emit per manifest entry. Must be
	// at least 1.
	Repetitions int

	// Timeout is the per-task execution timeout in seconds, enforced by
	// the remote fabric. Must be positive.
	Timeout int

	// Retries is the per-task retry budget, 0 to MaxRetriesPerTask. Zero
	// means the wire field is omitted entirely.
	Retries int

	// ArtifactGlobs select which task outputs the fabric archives.
	ArtifactGlobs []string
}

// Validate checks the option ranges. It is called by Compile but is also
// exposed so callers can reject bad arguments before spawning any tool.
func (o Options) Validate() error {
	if o.Repetitions < 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "repetitions must be at least 1"), "value", o.Repetitions)
	}
	if o.Retries < 0 || o.Retries > MaxRetriesPerTask {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "retries out of range"), "value", o.Retries)
	}
	if o.Timeout <= 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "timeout must be positive"), "value", o.Timeout)
	}
	return nil
}

// Compile emits one task descriptor per manifest entry per repetition. It is
// a pure transformation; reading the manifest and writing the task list are
// the caller's concern. Output order follows map iteration and is therefore
// not deterministic; consumers must treat the list as a multiset.
func Compile(manifest domain.ArchiveManifest, opts Options) (*domain.TaskList, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	total := opts.Repetitions * len(manifest)
	if total > MaxTasks {
		limitErr := zerr.With(zerr.Wrap(domain.ErrTaskLimitExceeded, "refusing to expand manifest"), "requested", total)
		return nil, zerr.With(limitErr, "limit", MaxTasks)
	}

	tasks := make([]domain.TaskDescriptor, 0, total)
	for description, hash := range manifest {
		for range opts.Repetitions {
			tasks = append(tasks, domain.TaskDescriptor{
				IsolateHash:   hash,
				Description:   description,
				Timeout:       opts.Timeout,
				ArtifactGlobs: opts.ArtifactGlobs,
				MaxRetries:    opts.Retries,
			})
		}
	}

	return &domain.TaskList{Tasks: tasks}, nil
}

// WriteFile serializes the task list to path in the execution client's
// handoff format.
func WriteFile(path string, list *domain.TaskList) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode task list")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write task list"), "path", path)
	}
	return nil
}
