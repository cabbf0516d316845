// Package pipeline implements the sequential submission pipeline: package,
// archive, compile, submit, merge, report.
package pipeline

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"github.com/xiao-chen/dist-test/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// Params configure one pipeline run.
type Params struct {
	// ProjectDir is the build tree to discover tests in.
	ProjectDir string
	// Repetitions, Timeout, Retries and ArtifactGlobs feed the task
	// compiler unchanged.
	Repetitions   int
	Timeout       int
	Retries       int
	ArtifactGlobs []string
	// Artifacts downloads per-task result files and merges them.
	Artifacts bool
	// MergedReportPath is where the consolidated report lands. Empty
	// defaults to test_results.xml in the project dir.
	MergedReportPath string
	// Report pushes the job's results to the dashboard after the run.
	Report bool
}

// Pipeline drives the stages strictly in order; no stage overlaps another,
// and nothing is rolled back once the task list has been submitted.
type Pipeline struct {
	packager  ports.Packager
	archiver  ports.Archiver
	submitter ports.Submitter
	merger    ports.ResultMerger
	reporter  ports.Reporter
	logger    ports.Logger
}

// New creates a new Pipeline.
func New(
	packager ports.Packager,
	archiver ports.Archiver,
	submitter ports.Submitter,
	merger ports.ResultMerger,
	reporter ports.Reporter,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		packager:  packager,
		archiver:  archiver,
		submitter: submitter,
		merger:    merger,
		reporter:  reporter,
		logger:    logger,
	}
}

// Run executes the whole pipeline inside the given workspace. Argument
// validation happens before any child process is spawned.
func (p *Pipeline) Run(ctx context.Context, cfg *domain.Config, ws ports.Workspace, params Params) error {
	opts := compiler.Options{
		Repetitions:   params.Repetitions,
		Timeout:       params.Timeout,
		Retries:       params.Retries,
		ArtifactGlobs: params.ArtifactGlobs,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	isolated, err := p.packager.PackageTests(ctx, cfg, params.ProjectDir)
	if err != nil {
		return err
	}
	if len(isolated) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoTestsFound, "packaging produced no isolated tasks"), "project_dir", params.ProjectDir)
	}

	manifest, err := p.archiver.Archive(ctx, cfg, isolated, ws.Path("hashes.json"))
	if err != nil {
		return err
	}

	list, err := compiler.Compile(manifest, opts)
	if err != nil {
		return err
	}

	taskListPath := ws.Path("tasks.json")
	if err := compiler.WriteFile(taskListPath, list); err != nil {
		return err
	}
	p.logger.Info("submitting " + jobName(params.ProjectDir))

	outputDir := ws.Path("results")
	res, err := p.submitter.Submit(ctx, cfg, taskListPath, domain.SubmitOptions{
		Artifacts: params.Artifacts,
		OutputDir: outputDir,
		Name:      jobName(params.ProjectDir),
	})
	if err != nil {
		return err
	}

	// The run is externally committed from here on; only merging and
	// reporting can still fail, and neither undoes the submission.

	if params.Artifacts {
		if err := p.mergeResults(ctx, outputDir, params); err != nil {
			return err
		}
	}

	if params.Report {
		if res.JobID == "" {
			// Reporting without a job id would silently no-op remotely.
			return domain.ErrMissingJobID
		}
		if err := p.reporter.Report(ctx, cfg, res.JobID); err != nil {
			return err
		}
	}

	if res.ExitCode == domain.ExitTestsFailed {
		return zerr.With(zerr.Wrap(domain.ErrTestsFailed, "job finished with failing tests"), "job_id", res.JobID)
	}
	return nil
}

func (p *Pipeline) mergeResults(ctx context.Context, outputDir string, params Params) error {
	files, err := CollectResultFiles(outputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.logger.Warn("no result files downloaded, skipping merge")
		return nil
	}

	out := params.MergedReportPath
	if out == "" {
		out = filepath.Join(params.ProjectDir, "test_results.xml")
	}
	return p.merger.Merge(ctx, files, out, true)
}

// CollectResultFiles selects the per-task result files under root: every
// file named TEST-*.xml, at any depth, sorted for determinism.
func CollectResultFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, "TEST-") && strings.HasSuffix(name, ".xml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan result files"), "root", root)
	}
	sort.Strings(files)
	return files, nil
}

// jobName is the human-readable name shown by the remote scheduler.
func jobName(projectDir string) string {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return filepath.Base(projectDir)
	}
	return filepath.Base(abs)
}
