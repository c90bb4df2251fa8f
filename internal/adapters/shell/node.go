package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/k4g4/Personal-Page/internal/adapters/logger"
	"github.com/k4g4/Personal-Page/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the build runner Graft node.
	RunnerNodeID graft.ID = "adapter.shell.runner"
	// SpawnerNodeID is the unique identifier for the watcher spawner Graft node.
	SpawnerNodeID graft.ID = "adapter.shell.spawner"
)

func init() {
	graft.Register(graft.Node[ports.BuildRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessSpawner]{
		ID:        SpawnerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessSpawner, error) {
			return NewSpawner(DefaultStopGrace), nil
		},
	})
}
