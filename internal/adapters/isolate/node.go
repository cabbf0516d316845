package isolate

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xiao-chen/dist-test/internal/adapters/clock"
	"github.com/xiao-chen/dist-test/internal/adapters/exec"
	"github.com/xiao-chen/dist-test/internal/adapters/logger"
	"github.com/xiao-chen/dist-test/internal/core/ports"
)

// NodeID is the unique identifier for the archiver Graft node.
const NodeID graft.ID = "adapter.archiver"

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{exec.NodeID, clock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			sleeper, err := graft.Dep[ports.Sleeper](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewArchiver(runner, sleeper, log, DefaultBackoff()), nil
		},
	})
}
