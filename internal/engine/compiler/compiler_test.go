package compiler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/engine/compiler"
)

func sampleManifest() domain.ArchiveManifest {
	return domain.ArchiveManifest{
		"t1": "h1",
		"t2": "h2",
	}
}

// pairCounts reduces a task list to a multiset of (description, hash) pairs.
// Manifest iteration order is random, so tests must never compare sequences.
func pairCounts(list *domain.TaskList) map[string]int {
	counts := make(map[string]int)
	for _, task := range list.Tasks {
		counts[task.Description+"\x00"+task.IsolateHash]++
	}
	return counts
}

func TestCompile_Cardinality(t *testing.T) {
	for _, reps := range []int{1, 2, 7} {
		t.Run(fmt.Sprintf("repetitions_%d", reps), func(t *testing.T) {
			list, err := compiler.Compile(sampleManifest(), compiler.Options{
				Repetitions: reps,
				Timeout:     600,
			})
			require.NoError(t, err)
			assert.Len(t, list.Tasks, reps*2)

			counts := pairCounts(list)
			assert.Equal(t, reps, counts["t1\x00h1"])
			assert.Equal(t, reps, counts["t2\x00h2"])
		})
	}
}

func TestCompile_TaskLimit(t *testing.T) {
	manifest := make(domain.ArchiveManifest, 101)
	for i := range 101 {
		manifest[fmt.Sprintf("t%d", i)] = fmt.Sprintf("h%d", i)
	}

	// 101 * 100 = 10100 > 10000
	_, err := compiler.Compile(manifest, compiler.Options{Repetitions: 100, Timeout: 600})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskLimitExceeded))

	// 100 * 100 = 10000 is exactly at the cap and allowed.
	delete(manifest, "t100")
	list, err := compiler.Compile(manifest, compiler.Options{Repetitions: 100, Timeout: 600})
	require.NoError(t, err)
	assert.Len(t, list.Tasks, 10000)
}

func TestCompile_RetryBounds(t *testing.T) {
	for _, retries := range []int{-1, 101} {
		t.Run(fmt.Sprintf("invalid_%d", retries), func(t *testing.T) {
			_, err := compiler.Compile(sampleManifest(), compiler.Options{
				Repetitions: 1,
				Timeout:     600,
				Retries:     retries,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		})
	}

	for _, retries := range []int{0, 1, 100} {
		t.Run(fmt.Sprintf("valid_%d", retries), func(t *testing.T) {
			list, err := compiler.Compile(sampleManifest(), compiler.Options{
				Repetitions: 1,
				Timeout:     600,
				Retries:     retries,
			})
			require.NoError(t, err)
			for _, task := range list.Tasks {
				assert.Equal(t, retries, task.MaxRetries)
			}
		})
	}
}

func TestCompile_InvalidRepetitionsAndTimeout(t *testing.T) {
	_, err := compiler.Compile(sampleManifest(), compiler.Options{Repetitions: 0, Timeout: 600})
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	_, err = compiler.Compile(sampleManifest(), compiler.Options{Repetitions: 1, Timeout: 0})
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestCompile_Idempotent(t *testing.T) {
	opts := compiler.Options{Repetitions: 3, Timeout: 120, Retries: 2}

	first, err := compiler.Compile(sampleManifest(), opts)
	require.NoError(t, err)
	second, err := compiler.Compile(sampleManifest(), opts)
	require.NoError(t, err)

	assert.Equal(t, pairCounts(first), pairCounts(second))
}

// TestCompile_EndToEndScenario pins the 2x2 scenario: four descriptors, all
// with a 600 second timeout and no retry annotation.
func TestCompile_EndToEndScenario(t *testing.T) {
	list, err := compiler.Compile(sampleManifest(), compiler.Options{
		Repetitions: 2,
		Timeout:     600,
		Retries:     0,
	})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 4)

	for _, task := range list.Tasks {
		assert.Equal(t, 600, task.Timeout)
		assert.Zero(t, task.MaxRetries)
	}

	data, err := json.Marshal(list)
	require.NoError(t, err)
	// Zero retries must be encoded as an absent field, never as 0.
	assert.NotContains(t, string(data), "max_retries")
}

func TestWriteFile_RetriesOnWire(t *testing.T) {
	list, err := compiler.Compile(domain.ArchiveManifest{"t1": "h1"}, compiler.Options{
		Repetitions: 1,
		Timeout:     60,
		Retries:     3,
	})
	require.NoError(t, err)

	path := t.TempDir() + "/tasks.json"
	require.NoError(t, compiler.WriteFile(path, list))

	var decoded struct {
		Tasks []map[string]any `json:"tasks"`
	}
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Tasks, 1)
	assert.Equal(t, float64(3), decoded.Tasks[0]["max_retries"])
	assert.Equal(t, "h1", decoded.Tasks[0]["isolate_hash"])
}
