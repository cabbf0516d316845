// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/xiao-chen/dist-test/internal/adapters/clock"
	_ "github.com/xiao-chen/dist-test/internal/adapters/config"
	_ "github.com/xiao-chen/dist-test/internal/adapters/disttest"
	_ "github.com/xiao-chen/dist-test/internal/adapters/exec"
	_ "github.com/xiao-chen/dist-test/internal/adapters/isolate"
	_ "github.com/xiao-chen/dist-test/internal/adapters/junit"
	_ "github.com/xiao-chen/dist-test/internal/adapters/logger"
	_ "github.com/xiao-chen/dist-test/internal/adapters/maven"
	_ "github.com/xiao-chen/dist-test/internal/adapters/report"
	_ "github.com/xiao-chen/dist-test/internal/adapters/workdir"
	// Register app and engine nodes.
	_ "github.com/xiao-chen/dist-test/internal/app"
	_ "github.com/xiao-chen/dist-test/internal/engine/pipeline"
)
