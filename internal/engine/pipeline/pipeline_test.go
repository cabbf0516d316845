package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports/mocks"
	"github.com/xiao-chen/dist-test/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

var testConfig = &domain.Config{
	IsolatePath:    "/opt/isolate",
	ClientPath:     "/opt/client",
	GrindRoot:      "/opt/grind",
	IsolateServer:  "https://isolate.example.com",
	DistTestMaster: "https://master.example.com",
}

type fixture struct {
	packager  *mocks.MockPackager
	archiver  *mocks.MockArchiver
	submitter *mocks.MockSubmitter
	merger    *mocks.MockResultMerger
	reporter  *mocks.MockReporter
	workspace *mocks.MockWorkspace
	pipeline  *pipeline.Pipeline
	wsDir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		packager:  mocks.NewMockPackager(ctrl),
		archiver:  mocks.NewMockArchiver(ctrl),
		submitter: mocks.NewMockSubmitter(ctrl),
		merger:    mocks.NewMockResultMerger(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		wsDir:     t.TempDir(),
	}

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.workspace.EXPECT().Path(gomock.Any()).DoAndReturn(func(name string) string {
		return filepath.Join(f.wsDir, name)
	}).AnyTimes()

	f.pipeline = pipeline.New(f.packager, f.archiver, f.submitter, f.merger, f.reporter, mockLogger)
	return f
}

func baseParams() pipeline.Params {
	return pipeline.Params{
		ProjectDir:  ".",
		Repetitions: 1,
		Timeout:     600,
	}
}

func TestPipeline_Run_HappyPath(t *testing.T) {
	f := newFixture(t)
	manifest := domain.ArchiveManifest{"t1": "h1", "t2": "h2"}

	gomock.InOrder(
		f.packager.EXPECT().PackageTests(gomock.Any(), testConfig, ".").
			Return([]string{"a.isolated"}, nil),
		f.archiver.EXPECT().Archive(gomock.Any(), testConfig, []string{"a.isolated"}, filepath.Join(f.wsDir, "hashes.json")).
			Return(manifest, nil),
		f.submitter.EXPECT().Submit(gomock.Any(), testConfig, filepath.Join(f.wsDir, "tasks.json"), gomock.Any()).
			Return(&domain.SubmissionResult{ExitCode: 0, JobID: "abc123"}, nil),
	)

	err := f.pipeline.Run(context.Background(), testConfig, f.workspace, baseParams())
	require.NoError(t, err)

	// The task list must have been written before submission.
	data, err := os.ReadFile(filepath.Join(f.wsDir, "tasks.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "isolate_hash")
}

func TestPipeline_Run_InvalidArgsBeforeAnySpawn(t *testing.T) {
	f := newFixture(t)
	// No expectations on any mock: validation must fail first.

	params := baseParams()
	params.Retries = 101

	err := f.pipeline.Run(context.Background(), testConfig, f.workspace, params)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestPipeline_Run_NoTestsFound(t *testing.T) {
	f := newFixture(t)

	f.packager.EXPECT().PackageTests(gomock.Any(), testConfig, ".").Return(nil, nil)

	err := f.pipeline.Run(context.Background(), testConfig, f.workspace, baseParams())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoTestsFound))
	assert.Equal(t, domain.ExitNoTests, domain.ExitCodeFor(err))
}

func TestPipeline_Run_MergesDownloadedArtifacts(t *testing.T) {
	f := newFixture(t)
	manifest := domain.ArchiveManifest{"t1": "h1"}

	// Simulate the client having downloaded result files.
	resultsDir := filepath.Join(f.wsDir, "results", "task-0")
	require.NoError(t, os.MkdirAll(resultsDir, 0o750))
	resultFile := filepath.Join(resultsDir, "TEST-foo.xml")
	require.NoError(t, os.WriteFile(resultFile, []byte("<testsuite/>"), 0o600))
	// Non-matching files are never merged.
	require.NoError(t, os.WriteFile(filepath.Join(resultsDir, "stdout.log"), nil, 0o600))

	f.packager.EXPECT().PackageTests(gomock.Any(), testConfig, gomock.Any()).
		Return([]string{"a.isolated"}, nil)
	f.archiver.EXPECT().Archive(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(manifest, nil)
	f.submitter.EXPECT().Submit(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Config, _ string, opts domain.SubmitOptions) (*domain.SubmissionResult, error) {
			assert.True(t, opts.Artifacts)
			assert.Equal(t, filepath.Join(f.wsDir, "results"), opts.OutputDir)
			return &domain.SubmissionResult{ExitCode: 0, JobID: "abc123"}, nil
		})
	f.merger.EXPECT().Merge(gomock.Any(), []string{resultFile}, gomock.Any(), true).Return(nil)

	params := baseParams()
	params.Artifacts = true
	params.MergedReportPath = filepath.Join(f.wsDir, "merged.xml")

	require.NoError(t, f.pipeline.Run(context.Background(), testConfig, f.workspace, params))
}

func TestPipeline_Run_MissingJobIDWhenReporting(t *testing.T) {
	f := newFixture(t)

	f.packager.EXPECT().PackageTests(gomock.Any(), testConfig, gomock.Any()).
		Return([]string{"a.isolated"}, nil)
	f.archiver.EXPECT().Archive(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(domain.ArchiveManifest{"t1": "h1"}, nil)
	f.submitter.EXPECT().Submit(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(&domain.SubmissionResult{ExitCode: 0, JobID: ""}, nil)
	// Reporter must never be invoked without a job id.

	params := baseParams()
	params.Report = true

	err := f.pipeline.Run(context.Background(), testConfig, f.workspace, params)
	assert.True(t, errors.Is(err, domain.ErrMissingJobID))
}

func TestPipeline_Run_NoJobIDWithoutReportingIsFine(t *testing.T) {
	f := newFixture(t)

	f.packager.EXPECT().PackageTests(gomock.Any(), testConfig, gomock.Any()).
		Return([]string{"a.isolated"}, nil)
	f.archiver.EXPECT().Archive(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(domain.ArchiveManifest{"t1": "h1"}, nil)
	f.submitter.EXPECT().Submit(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(&domain.SubmissionResult{ExitCode: 0, JobID: ""}, nil)

	require.NoError(t, f.pipeline.Run(context.Background(), testConfig, f.workspace, baseParams()))
}

// TestPipeline_Run_TestsFailedStillReports pins the partial-failure
// contract: a tests-failed submission is committed, so merging and
// reporting still run, and the tests-failed status surfaces at the end.
func TestPipeline_Run_TestsFailedStillReports(t *testing.T) {
	f := newFixture(t)

	f.packager.EXPECT().PackageTests(gomock.Any(), testConfig, gomock.Any()).
		Return([]string{"a.isolated"}, nil)
	f.archiver.EXPECT().Archive(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(domain.ArchiveManifest{"t1": "h1"}, nil)
	f.submitter.EXPECT().Submit(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(&domain.SubmissionResult{ExitCode: domain.ExitTestsFailed, JobID: "abc123"}, nil)
	f.reporter.EXPECT().Report(gomock.Any(), testConfig, "abc123").Return(nil)

	params := baseParams()
	params.Report = true

	err := f.pipeline.Run(context.Background(), testConfig, f.workspace, params)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTestsFailed))
	assert.Equal(t, domain.ExitTestsFailed, domain.ExitCodeFor(err))
}

func TestPipeline_Run_ReportingFailureIsFatal(t *testing.T) {
	f := newFixture(t)

	f.packager.EXPECT().PackageTests(gomock.Any(), testConfig, gomock.Any()).
		Return([]string{"a.isolated"}, nil)
	f.archiver.EXPECT().Archive(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(domain.ArchiveManifest{"t1": "h1"}, nil)
	f.submitter.EXPECT().Submit(gomock.Any(), testConfig, gomock.Any(), gomock.Any()).
		Return(&domain.SubmissionResult{ExitCode: 0, JobID: "abc123"}, nil)
	f.reporter.EXPECT().Report(gomock.Any(), testConfig, "abc123").
		Return(domain.ErrReportingFailed)

	params := baseParams()
	params.Report = true

	err := f.pipeline.Run(context.Background(), testConfig, f.workspace, params)
	assert.True(t, errors.Is(err, domain.ErrReportingFailed))
}

func TestCollectResultFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b", "deep"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a"), 0o750))

	want := []string{
		filepath.Join(root, "a", "TEST-alpha.xml"),
		filepath.Join(root, "b", "deep", "TEST-beta.xml"),
	}
	for _, path := range want {
		require.NoError(t, os.WriteFile(path, []byte("<testsuite/>"), 0o600))
	}
	// Neither prefix nor suffix alone is enough.
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "TEST-notes.txt"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "other.xml"), nil, 0o600))

	got, err := pipeline.CollectResultFiles(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
