// Package config loads the carbide.yaml project manifest.
package config

import (
	"os"
	"path/filepath"
	"regexp"

	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML manifest.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validProgramNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Load finds the manifest in cwd or one of its parents and returns the parsed
// project description.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	manifestPath, err := l.findManifest(cwd)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- manifestPath is located relative to the caller's cwd
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()),
			"path", manifestPath)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()),
			"path", manifestPath)
	}

	return l.buildProject(&manifest, filepath.Dir(manifestPath))
}

func (l *Loader) findManifest(cwd string) (string, error) {
	currentDir := cwd
	for {
		manifestPath := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(manifestPath); err == nil {
			if currentDir != cwd {
				l.Logger.Info("using manifest at " + manifestPath)
			}
			return manifestPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

func (l *Loader) buildProject(manifest *Manifest, manifestDir string) (*domain.Project, error) {
	project := &domain.Project{Programs: make(map[string]domain.Program)}

	if manifest.Engine != nil {
		engine, err := l.buildEngine(manifest.Engine, manifestDir)
		if err != nil {
			return nil, err
		}
		project.Engine = engine
	}

	for name := range manifest.Programs {
		dto := manifest.Programs[name]
		if err := validateProgramName(name); err != nil {
			return nil, err
		}
		if len(dto.Sources) == 0 {
			return nil, zerr.With(zerr.With(domain.ErrInvalidManifest,
				"program", name), "reason", "a program must list at least one source path")
		}

		project.Programs[name] = domain.Program{
			Name:              name,
			Sources:           rebaseSources(dto.Sources, manifestDir),
			Recursive:         recursiveOrDefault(dto.Recursive),
			PrecompiledHeader: dto.PrecompiledHeader,
		}
	}

	return project, nil
}

func (l *Loader) buildEngine(dto *EngineDTO, manifestDir string) (*domain.EngineSpec, error) {
	if len(dto.Sources) == 0 {
		return nil, zerr.With(zerr.With(domain.ErrInvalidManifest,
			"section", "engine"), "reason", "the engine must list at least one source path")
	}

	for _, dependency := range dto.Dependencies {
		if !domain.KnownDependency(dependency) {
			return nil, zerr.With(domain.ErrUnknownDependency, "dependency", dependency)
		}
	}

	return &domain.EngineSpec{
		Sources:           rebaseSources(dto.Sources, manifestDir),
		Recursive:         recursiveOrDefault(dto.Recursive),
		PrecompiledHeader: dto.PrecompiledHeader,
		Dependencies:      dto.Dependencies,
	}, nil
}

// validateProgramName rejects names that collide with built-in targets or
// would produce awkward artifact paths.
func validateProgramName(name string) error {
	if name == domain.EngineTarget || name == domain.InstallTarget {
		return zerr.With(zerr.With(domain.ErrInvalidManifest, "program", name),
			"reason", "program name is reserved")
	}
	if !validProgramNameRegex.MatchString(name) {
		return zerr.With(zerr.With(domain.ErrInvalidManifest, "program", name),
			"reason", "program names may only contain letters, digits, '_' and '-'")
	}
	return nil
}

// rebaseSources makes relative source paths absolute against the manifest's
// directory.
func rebaseSources(sources []string, manifestDir string) []string {
	rebased := make([]string, len(sources))
	for i, source := range sources {
		if filepath.IsAbs(source) {
			rebased[i] = filepath.Clean(source)
			continue
		}
		rebased[i] = filepath.Join(manifestDir, source)
	}
	return rebased
}

// recursiveOrDefault applies the manifest default of recursive source
// discovery when the field is omitted.
func recursiveOrDefault(recursive *bool) bool {
	if recursive == nil {
		return true
	}
	return *recursive
}
