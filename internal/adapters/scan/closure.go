package scan

import (
	"path/filepath"
	"slices"

	"carbonengine.dev/carbide/internal/core/ports"
)

// TransitiveIncludes computes the full transitive include closure of the given
// root files, including the roots themselves. The traversal is depth-first and
// memoized by a visited set, so it terminates on circular includes and visits
// each file exactly once. The result is sorted.
func TransitiveIncludes(scanner ports.IncludeScanner, roots []string, searchPaths []string) ([]string, error) {
	visited := make(map[string]struct{})

	var visit func(path string) error
	visit = func(path string) error {
		path = filepath.Clean(path)
		if _, done := visited[path]; done {
			return nil
		}
		visited[path] = struct{}{}

		includes, err := scanner.Scan(path, searchPaths)
		if err != nil {
			return err
		}
		for _, include := range includes {
			if err := visit(include); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range roots {
		if err := visit(root); err != nil {
			return nil, err
		}
	}

	closure := make([]string, 0, len(visited))
	for path := range visited {
		closure = append(closure, path)
	}
	slices.Sort(closure)
	return closure, nil
}
