// Package fs implements filesystem helpers for the configuration pass: source
// discovery and dependency directory resolution.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// SourceExtensions returns the source file extensions relevant to a platform.
// Objective-C++ sources are only compiled for the Apple platforms, and
// resource scripts only for Windows.
func SourceExtensions(platform string) []string {
	extensions := []string{".c", ".cpp", ".cc", ".cxx"}
	switch platform {
	case "macOS", "iOS", "iOSSimulator":
		extensions = append(extensions, ".mm")
	case "Windows":
		extensions = append(extensions, ".rc")
	}
	return extensions
}

// SourceFiles returns every source file under the given root directories that
// is relevant to the platform, optionally recursing into subdirectories. The
// result is sorted and free of duplicates so the produced build graph is
// deterministic.
func SourceFiles(roots []string, recursive bool, platform string) ([]string, error) {
	extensions := SourceExtensions(platform)

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range roots {
		if recursive {
			err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !entry.IsDir() && matchesExtension(path, extensions) {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to glob source directory"), "directory", root)
			}
			continue
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob source directory"), "directory", root)
		}
		for _, entry := range entries {
			if !entry.IsDir() && matchesExtension(entry.Name(), extensions) {
				add(filepath.Join(root, entry.Name()))
			}
		}
	}

	slices.Sort(files)
	return files, nil
}

func matchesExtension(path string, extensions []string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}
