// Package maven is the boundary to the dependency-packaging collaborator:
// the external helper that discovers test units in a Maven build tree and
// writes one isolated task definition per unit.
package maven

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"go.trai.ch/zerr"
)

// Packager invokes `<grindRoot>/bin/grind-package`. Discovery and
// dependency-set computation happen entirely inside the helper; this adapter
// only forwards the build-tuning environment and collects the generated
// isolated files.
type Packager struct {
	runner   ports.ProcessRunner
	logger   ports.Logger
	cacheDir func(projectDir string) (string, error)
}

// NewPackager creates a new Packager. cacheDir resolves the shared
// dependency cache for a project; the cache is owned by the helper and only
// its location is decided here.
func NewPackager(runner ports.ProcessRunner, logger ports.Logger, cacheDir func(string) (string, error)) *Packager {
	return &Packager{runner: runner, logger: logger, cacheDir: cacheDir}
}

// PackageTests runs the helper against projectDir and returns the isolated
// files it produced, sorted for determinism. GRIND_MAVEN_FLAGS and
// GRIND_MAVEN_REPO pass through from the process environment untouched; the
// helper, not this core, interprets them.
func (p *Packager) PackageTests(ctx context.Context, cfg *domain.Config, projectDir string) ([]string, error) {
	outDir, err := os.MkdirTemp("", "grind-isolated-")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create isolated output dir")
	}

	cache, err := p.cacheDir(projectDir)
	if err != nil {
		return nil, err
	}

	env := []string{
		"GRIND_MAVEN_FLAGS=" + os.Getenv("GRIND_MAVEN_FLAGS"),
		"GRIND_MAVEN_REPO=" + os.Getenv("GRIND_MAVEN_REPO"),
	}

	res, err := p.runner.Run(ctx, ports.Command{
		Path: filepath.Join(cfg.GrindRoot, "bin", "grind-package"),
		Args: []string{"--output-dir", outDir, "--cache-dir", cache, projectDir},
		Env:  env,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to invoke packaging helper")
	}
	if res.ExitCode != 0 {
		toolErr := zerr.With(zerr.Wrap(domain.ErrExternalTool, "packaging helper failed"), "tool", "grind-package")
		return nil, zerr.With(toolErr, "exit_code", res.ExitCode)
	}

	files, err := filepath.Glob(filepath.Join(outDir, "*.isolated"))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list isolated files")
	}
	sort.Strings(files)

	p.logger.Info(fmt.Sprintf("packaged %d test units", len(files)))
	return files, nil
}
