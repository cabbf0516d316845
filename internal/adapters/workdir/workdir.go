// Package workdir manages the per-run temporary workspace and the shared
// per-project cache location.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"go.trai.ch/zerr"
)

// Workspace is a run-exclusive temporary directory. All intermediate files
// (hashes, task list, downloaded artifacts) live here and disappear with it.
type Workspace struct {
	root   string
	leak   bool
	logger ports.Logger
}

// Factory implements ports.WorkspaceFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New creates a fresh workspace. With leak set, Cleanup keeps the directory
// around for debugging.
func (f *Factory) New(leak bool) (ports.Workspace, error) {
	root, err := os.MkdirTemp("", "grind-run-")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create run workspace")
	}
	return &Workspace{root: root, leak: leak, logger: f.logger}, nil
}

// Path returns the absolute path of name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.root, name)
}

// Cleanup removes the workspace, or keeps it when leaking was requested.
func (w *Workspace) Cleanup() error {
	if w.leak {
		w.logger.Info("leaking run workspace " + w.root)
		return nil
	}
	if err := os.RemoveAll(w.root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove run workspace"), "path", w.root)
	}
	return nil
}

// CacheDir returns the shared dependency cache for a project, keyed by the
// hash of its absolute path so unrelated checkouts never collide. The cache
// contents are owned by the packaging helper; only the location is decided
// here.
func CacheDir(projectDir string) (string, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve project path")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve home directory")
	}

	key := fmt.Sprintf("%016x", xxhash.Sum64String(abs))
	dir := filepath.Join(home, ".grind", "cache", key)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create cache dir"), "path", dir)
	}
	return dir, nil
}
