package domain

import "go.trai.ch/zerr"

// EngineSpec describes how to build the engine library itself: where its
// sources live and which third-party dependencies are compiled in.
type EngineSpec struct {
	Sources           []string
	Recursive         bool
	PrecompiledHeader string
	Dependencies      []string
}

// Program describes a consumer program built against the engine.
type Program struct {
	Name              string
	Sources           []string
	Recursive         bool
	PrecompiledHeader string
}

// Project is the parsed project manifest: the engine description plus any
// consumer programs.
type Project struct {
	Engine   *EngineSpec
	Programs map[string]Program
}

// Program returns the named program description.
func (p *Project) Program(name string) (Program, error) {
	program, exists := p.Programs[name]
	if !exists {
		return Program{}, zerr.With(ErrUnknownTarget, "target", name)
	}
	return program, nil
}
