package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/engine/compiler"
)

// TestWriteFile_Golden pins the handoff format consumed by the execution
// client. A single-entry manifest keeps the output deterministic.
func TestWriteFile_Golden(t *testing.T) {
	manifest := domain.ArchiveManifest{
		"org.example.FooTest": "0123abcd",
	}

	list, err := compiler.Compile(manifest, compiler.Options{
		Repetitions:   1,
		Timeout:       900,
		Retries:       2,
		ArtifactGlobs: []string{"**/surefire-reports/*"},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, compiler.WriteFile(path, list))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "tasklist", data)
}
