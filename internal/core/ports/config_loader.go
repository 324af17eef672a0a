package ports

import "carbonengine.dev/carbide/internal/core/domain"

// ConfigLoader loads the project manifest describing the engine and any
// consumer programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest from the given working directory.
	Load(cwd string) (*domain.Project, error)
}
