package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/k4g4/Personal-Page/internal/adapters/cachefile" //nolint:depguard // Wired in app layer
	"github.com/k4g4/Personal-Page/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/k4g4/Personal-Page/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/k4g4/Personal-Page/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/k4g4/Personal-Page/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/k4g4/Personal-Page/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/k4g4/Personal-Page/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.ScannerNodeID,
			cachefile.NodeID,
			shell.RunnerNodeID,
			shell.SpawnerNodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.SnapshotStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.BuildRunner](ctx)
	if err != nil {
		return nil, err
	}

	spawner, err := graft.Dep[ports.ProcessSpawner](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, scanner, stores, runner, spawner, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	components := &Components{
		App:    app,
		Logger: log,
	}
	if s, ok := tracer.(interface{ Shutdown(context.Context) error }); ok {
		components.Shutdown = s.Shutdown
	}
	return components, nil
}
