package maven

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xiao-chen/dist-test/internal/adapters/exec"
	"github.com/xiao-chen/dist-test/internal/adapters/logger"
	"github.com/xiao-chen/dist-test/internal/adapters/workdir"
	"github.com/xiao-chen/dist-test/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "adapter.packager"

func init() {
	graft.Register(graft.Node[ports.Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{exec.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Packager, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPackager(runner, log, workdir.CacheDir), nil
		},
	})
}
