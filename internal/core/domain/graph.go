package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ArtifactKind categorizes a node in the build graph.
type ArtifactKind string

const (
	// KindObject is a compiled translation unit.
	KindObject ArtifactKind = "object"
	// KindPrecompiledHeader is a compiled header artifact.
	KindPrecompiledHeader ArtifactKind = "pch"
	// KindStaticLibrary is an archive of objects.
	KindStaticLibrary ArtifactKind = "staticlib"
	// KindSharedLibrary is a dynamically linked library.
	KindSharedLibrary ArtifactKind = "sharedlib"
	// KindProgram is a linked executable.
	KindProgram ArtifactKind = "program"
	// KindInstall is a copy of a build result into the install directory.
	KindInstall ArtifactKind = "install"
)

// Artifact is one node of the build graph handed to the orchestrator: an
// output path, the sources it is produced from, and the artifacts that must be
// up to date before it is built.
type Artifact struct {
	Name         string
	Kind         ArtifactKind
	Sources      []string
	Dependencies []string
}

// Graph is the artifact dependency graph produced by the configuration pass.
// It is validated for cycles and missing references before being emitted.
type Graph struct {
	artifacts map[string]*Artifact
	order     []string
}

// NewGraph creates an empty build graph.
func NewGraph() *Graph {
	return &Graph{artifacts: make(map[string]*Artifact)}
}

// AddArtifact adds an artifact to the graph. Adding a second artifact with the
// same name is an error.
func (g *Graph) AddArtifact(a *Artifact) error {
	if _, exists := g.artifacts[a.Name]; exists {
		return zerr.With(ErrArtifactAlreadyExists, "artifact", a.Name)
	}
	g.artifacts[a.Name] = a
	return nil
}

// AddDependency records that artifact depends on dep. Both must already be in
// the graph. Duplicate edges are ignored.
func (g *Graph) AddDependency(artifact, dep string) error {
	a, exists := g.artifacts[artifact]
	if !exists {
		return zerr.With(ErrMissingArtifact, "artifact", artifact)
	}
	if _, exists := g.artifacts[dep]; !exists {
		return zerr.With(ErrMissingArtifact, "artifact", dep)
	}

	if !slices.Contains(a.Dependencies, dep) {
		a.Dependencies = append(a.Dependencies, dep)
	}
	return nil
}

// Len returns the number of artifacts in the graph.
func (g *Graph) Len() int {
	return len(g.artifacts)
}

// Validate checks the graph for missing references and cycles using a
// depth-first topological sort, and records the resulting build order. Roots
// are visited in name order so the build order is deterministic.
func (g *Graph) Validate() error {
	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)

	g.order = make([]string, 0, len(g.artifacts))
	state := make(map[string]int, len(g.artifacts))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		state[name] = visiting
		path = append(path, name)

		artifact, exists := g.artifacts[name]
		if !exists {
			return zerr.With(ErrMissingArtifact, "artifact", name)
		}

		for _, dep := range artifact.Dependencies {
			switch state[dep] {
			case visiting:
				return g.cycleError(path, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		state[name] = visited
		path = path[:len(path)-1]
		g.order = append(g.order, name)
		return nil
	}

	names := make([]string, 0, len(g.artifacts))
	for name := range g.artifacts {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if state[name] == unvisited {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) cycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := strings.Join(append(slices.Clone(path[start:]), dep), " -> ")
	return zerr.With(ErrCycleDetected, "cycle", cycle)
}

// Walk yields artifacts in build order. Validate must have succeeded first.
func (g *Graph) Walk() iter.Seq[*Artifact] {
	return func(yield func(*Artifact) bool) {
		for _, name := range g.order {
			if !yield(g.artifacts[name]) {
				return
			}
		}
	}
}
