package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// DependenciesDirName is the directory holding the third-party dependency
// checkouts, each under <name>-<version>.
const DependenciesDirName = "Dependencies"

// defaultDependencyVersions is the fixed per-dependency version table used
// when no explicit version is requested. Max and Maya ship unversioned.
var defaultDependencyVersions = map[string]string{
	"AngelScript":     "2.30.2",
	"Bullet":          "2.83",
	"FreeImage":       "3.17.0",
	"FreeType":        "2.6.1",
	"Max":             "",
	"Maya":            "",
	"OculusRift":      "0.8",
	"Ogg":             "1.3.2",
	"OpenALSoft":      "1.16.0",
	"OpenAssetImport": "3.1.1",
	"PhysX":           "3.3.2",
	"Vorbis":          "1.3.5",
	"ZLib":            "1.2.8",
}

// dependencyIncludes maps a dependency to its include subpaths relative to the
// dependency root. Vorbis also needs the Ogg headers.
var dependencyIncludes = map[string][][]string{
	"AngelScript":     {{"AngelScript", "Source", "include"}},
	"Bullet":          {{"Bullet", "Source"}},
	"FreeImage":       {{"FreeImage", "Source"}},
	"FreeType":        {{"FreeType", "Include"}},
	"Max":             {{"Max", "Include"}},
	"Maya":            {{"Maya", "Include"}},
	"OculusRift":      {{"OculusRift", "Source", "LibOVR", "Include"}},
	"OpenALSoft":      {{"OpenALSoft", "Source", "include"}},
	"OpenAssetImport": {{"OpenAssetImport", "Source", "include"}},
	"PhysX":           {{"PhysX", "Include"}},
	"Vorbis":          {{"Ogg", "Include"}, {"Vorbis", "Include"}},
	"ZLib":            {{"ZLib", "Source"}},
}

// KnownDependency reports whether name has an entry in the dependency version
// table.
func KnownDependency(name string) bool {
	_, known := defaultDependencyVersions[name]
	return known
}

// DependencyPath returns the path to the given dependency inside depsDir, with
// optional subpaths appended. An empty version selects the entry from the
// fixed default-version table.
func DependencyPath(depsDir, name, version string, subpaths ...string) (string, error) {
	if version == "" {
		def, known := defaultDependencyVersions[name]
		if !known {
			return "", zerr.With(ErrUnknownDependency, "dependency", name)
		}
		version = def
	}

	dir := name
	if version != "" {
		dir += "-" + version
	}

	return filepath.Join(append([]string{depsDir, dir}, subpaths...)...), nil
}

// DependencyDefines returns the preprocessor defines that enable the given
// dependencies in an engine build.
func DependencyDefines(names ...string) []string {
	defines := make([]string, len(names))
	for i, name := range names {
		defines[i] = "CARBON_INCLUDE_" + strings.ToUpper(name)
	}
	return defines
}

// DependencyIncludePaths returns the include paths needed to compile against
// the given dependencies.
func DependencyIncludePaths(depsDir string, names ...string) ([]string, error) {
	var paths []string
	for _, name := range names {
		entries, known := dependencyIncludes[name]
		if !known {
			return nil, zerr.With(ErrUnknownDependency, "dependency", name)
		}
		for _, entry := range entries {
			path, err := DependencyPath(depsDir, entry[0], "", entry[1:]...)
			if err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// DependencyLibPaths returns the library search paths for the given
// dependencies. iOS dependency libraries are not split by architecture; every
// other platform stores them under <platform>/<architecture>.
func DependencyLibPaths(depsDir, platform, architecture string, names ...string) ([]string, error) {
	paths := make([]string, 0, len(names))
	for _, name := range names {
		subpaths := []string{"Library", platform}
		if platform != "iOS" {
			subpaths = append(subpaths, architecture)
		}

		path, err := DependencyPath(depsDir, name, "", subpaths...)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
