package ports

import (
	"io"

	"carbonengine.dev/carbide/internal/core/domain"
)

// PlanWriter serializes a configured descriptor, the per-target build
// environments and the validated artifact graph for consumption by the
// external build orchestrator.
type PlanWriter interface {
	// Write emits the plan to w. The output is deterministic for identical
	// inputs.
	Write(w io.Writer, desc *domain.PlatformDescriptor, graph *domain.Graph, targets []domain.TargetEnv) error
}
