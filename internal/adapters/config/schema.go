package config

// Manifest represents the structure of the carbide.yaml project manifest.
type Manifest struct {
	Version  string                 `yaml:"version"`
	Engine   *EngineDTO             `yaml:"engine"`
	Programs map[string]*ProgramDTO `yaml:"programs"`
}

// EngineDTO describes the engine library build in the manifest.
type EngineDTO struct {
	Sources           []string `yaml:"sources"`
	Recursive         *bool    `yaml:"recursive"`
	PrecompiledHeader string   `yaml:"precompiledHeader"`
	Dependencies      []string `yaml:"dependencies"`
}

// ProgramDTO describes a consumer program build in the manifest.
type ProgramDTO struct {
	Sources           []string `yaml:"sources"`
	Recursive         *bool    `yaml:"recursive"`
	PrecompiledHeader string   `yaml:"precompiledHeader"`
}
