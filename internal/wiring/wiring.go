// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "carbonengine.dev/carbide/internal/adapters/config"
	_ "carbonengine.dev/carbide/internal/adapters/logger"
	_ "carbonengine.dev/carbide/internal/adapters/plan"
	_ "carbonengine.dev/carbide/internal/adapters/scan"
	// Register app nodes.
	_ "carbonengine.dev/carbide/internal/app"
)
