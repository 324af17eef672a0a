package fs

import (
	"os"
	"path/filepath"

	"carbonengine.dev/carbide/internal/core/domain"
	"go.trai.ch/zerr"
)

// DependenciesDir locates the third-party Dependencies directory. When a
// carbonroot is supplied only <carbonroot>/Dependencies is considered;
// otherwise the candidates are <root>/Dependencies and the parent of root,
// matching a program checkout that sits alongside the engine repository. The
// resolved directory must exist and be named Dependencies.
func DependenciesDir(root, carbonroot string) (string, error) {
	candidates := []string{
		filepath.Join(root, domain.DependenciesDirName),
		filepath.Dir(root),
	}
	if carbonroot != "" {
		candidates = []string{filepath.Join(carbonroot, domain.DependenciesDirName)}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() && filepath.Base(candidate) == domain.DependenciesDirName {
			return candidate, nil
		}
	}

	return "", zerr.With(domain.ErrMissingDependenciesDir, "root", root)
}
