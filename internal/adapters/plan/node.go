package plan

import (
	"context"

	"carbonengine.dev/carbide/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the plan writer Graft node.
const NodeID graft.ID = "adapter.plan_writer"

func init() {
	graft.Register(graft.Node[ports.PlanWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlanWriter, error) {
			return NewWriter(), nil
		},
	})
}
