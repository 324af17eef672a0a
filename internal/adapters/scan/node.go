package scan

import (
	"context"

	"carbonengine.dev/carbide/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the include scanner Graft node.
const NodeID graft.ID = "adapter.include_scanner"

func init() {
	graft.Register(graft.Node[ports.IncludeScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IncludeScanner, error) {
			return NewCScanner(), nil
		},
	})
}
