package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xiao-chen/dist-test/internal/adapters/disttest"
	"github.com/xiao-chen/dist-test/internal/adapters/isolate"
	"github.com/xiao-chen/dist-test/internal/adapters/junit"
	"github.com/xiao-chen/dist-test/internal/adapters/logger"
	"github.com/xiao-chen/dist-test/internal/adapters/maven"
	"github.com/xiao-chen/dist-test/internal/adapters/report"
	"github.com/xiao-chen/dist-test/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			maven.NodeID,
			isolate.NodeID,
			disttest.NodeID,
			junit.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			packager, err := graft.Dep[ports.Packager](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			submitter, err := graft.Dep[ports.Submitter](ctx)
			if err != nil {
				return nil, err
			}
			merger, err := graft.Dep[ports.ResultMerger](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(packager, archiver, submitter, merger, reporter, log), nil
		},
	})
}
