package maven_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiao-chen/dist-test/internal/adapters/maven"
	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"github.com/xiao-chen/dist-test/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var testConfig = &domain.Config{GrindRoot: "/opt/grind"}

func fixedCacheDir(t *testing.T) func(string) (string, error) {
	dir := t.TempDir()
	return func(string) (string, error) { return dir, nil }
}

func TestPackager_PackageTests(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	t.Setenv("GRIND_MAVEN_FLAGS", "-DskipRat")
	t.Setenv("GRIND_MAVEN_REPO", "/repo")

	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd ports.Command) (ports.Result, error) {
			assert.Equal(t, "/opt/grind/bin/grind-package", cmd.Path)
			assert.Contains(t, cmd.Env, "GRIND_MAVEN_FLAGS=-DskipRat")
			assert.Contains(t, cmd.Env, "GRIND_MAVEN_REPO=/repo")

			// The helper writes isolated files into --output-dir.
			require.Equal(t, "--output-dir", cmd.Args[0])
			outDir := cmd.Args[1]
			for _, name := range []string{"b.isolated", "a.isolated", "notes.txt"} {
				require.NoError(t, os.WriteFile(filepath.Join(outDir, name), nil, 0o600))
			}
			return ports.Result{ExitCode: 0}, nil
		})

	p := maven.NewPackager(mockRunner, mockLogger, fixedCacheDir(t))
	files, err := p.PackageTests(context.Background(), testConfig, ".")
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "a.isolated", filepath.Base(files[0]))
	assert.Equal(t, "b.isolated", filepath.Base(files[1]))
}

func TestPackager_PackageTests_HelperFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(ports.Result{ExitCode: 1}, nil)

	p := maven.NewPackager(mockRunner, mockLogger, fixedCacheDir(t))
	_, err := p.PackageTests(context.Background(), testConfig, ".")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExternalTool))
}

func TestPackager_PackageTests_NoUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockProcessRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(ports.Result{ExitCode: 0}, nil)

	p := maven.NewPackager(mockRunner, mockLogger, fixedCacheDir(t))
	files, err := p.PackageTests(context.Background(), testConfig, ".")
	require.NoError(t, err)
	// An empty project is not the packager's error; the pipeline decides.
	assert.Empty(t, files)
}
