package clock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/xiao-chen/dist-test/internal/core/ports"
)

// NodeID is the unique identifier for the sleeper Graft node.
const NodeID graft.ID = "adapter.sleeper"

func init() {
	graft.Register(graft.Node[ports.Sleeper]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sleeper, error) {
			return NewSleeper(), nil
		},
	})
}
