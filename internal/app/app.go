// Package app implements the application layer for grind.
package app

import (
	"context"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"github.com/xiao-chen/dist-test/internal/core/ports"
	"github.com/xiao-chen/dist-test/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	wsFactory    ports.WorkspaceFactory
	pipeline     *pipeline.Pipeline
	merger       ports.ResultMerger
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	wsFactory ports.WorkspaceFactory,
	pipe *pipeline.Pipeline,
	merger ports.ResultMerger,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		wsFactory:    wsFactory,
		pipeline:     pipe,
		merger:       merger,
		logger:       logger,
	}
}

// RunParams configure a full submission run.
type RunParams struct {
	Pipeline pipeline.Params
	// ConfigPath is the configuration file to load.
	ConfigPath string
	// LeakTemp keeps the run's scratch directory around for debugging.
	LeakTemp bool
}

// Run submits the project's test suites to the remote execution service.
func (a *App) Run(ctx context.Context, params RunParams) error {
	cfg, err := a.configLoader.Load(params.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	ws, err := a.wsFactory.New(params.LeakTemp)
	if err != nil {
		return zerr.Wrap(err, "failed to create scratch directory")
	}
	defer func() {
		if cleanupErr := ws.Cleanup(); cleanupErr != nil {
			a.logger.Error(cleanupErr)
		}
	}()

	return a.pipeline.Run(ctx, cfg, ws, params.Pipeline)
}

// Merge consolidates already-downloaded result files under inputDir into a
// single report, without touching the remote service.
func (a *App) Merge(ctx context.Context, inputDir, outputPath string, ignoreFlaky bool) error {
	files, err := pipeline.CollectResultFiles(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoTestsFound, "no result files to merge"), "input_dir", inputDir)
	}
	return a.merger.Merge(ctx, files, outputPath, ignoreFlaky)
}
