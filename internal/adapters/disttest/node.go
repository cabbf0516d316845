package disttest

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xiao-chen/dist-test/internal/adapters/exec"
	"github.com/xiao-chen/dist-test/internal/adapters/logger"
	"github.com/xiao-chen/dist-test/internal/core/ports"
)

// NodeID is the unique identifier for the submitter Graft node.
const NodeID graft.ID = "adapter.submitter"

func init() {
	graft.Register(graft.Node[ports.Submitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{exec.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Submitter, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(runner, log), nil
		},
	})
}
