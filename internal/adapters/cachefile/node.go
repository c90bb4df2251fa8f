package cachefile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/k4g4/Personal-Page/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot store factory Graft node.
const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotStoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
