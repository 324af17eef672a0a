package app

import (
	"context"
	"os"

	"carbonengine.dev/carbide/internal/adapters/config" //nolint:depguard // Wired in app layer
	"carbonengine.dev/carbide/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"carbonengine.dev/carbide/internal/adapters/plan"   //nolint:depguard // Wired in app layer
	"carbonengine.dev/carbide/internal/adapters/scan"   //nolint:depguard // Wired in app layer
	"carbonengine.dev/carbide/internal/core/ports"
	"carbonengine.dev/carbide/internal/platform"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application pieces for the command layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scan.NodeID,
			logger.NodeID,
			plan.NodeID,
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
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.IncludeScanner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.PlanWriter](ctx)
	if err != nil {
		return nil, err
	}

	root, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return New(platform.NewHost(), root, loader, scanner, log, writer), nil
}
