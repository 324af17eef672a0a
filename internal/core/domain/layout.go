package domain

import (
	"path/filepath"
	"strings"
)

const (
	// VariantDirName is the directory holding intermediate build output.
	VariantDirName = ".carbide"

	// InstallDirName is the directory build results are installed into.
	InstallDirName = "Build"

	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "carbide.yaml"

	// EngineName is the base name of the main engine library.
	EngineName = "CarbonEngine"

	// EngineTarget is the target name that builds the engine itself.
	EngineTarget = "engine"
)

// Is64Bit reports whether the named architecture is 64-bit.
func Is64Bit(architecture string) bool {
	return strings.Contains(architecture, "64")
}

// OutputPrefix returns the per-configuration output path prefix of the form
// <platform>/<architecture>/<compiler>/<buildType>. Empty components are
// elided.
func OutputPrefix(platform, architecture, compiler string, buildType BuildType) string {
	var parts []string
	for _, part := range []string{platform, architecture, compiler, string(buildType)} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return filepath.Join(parts...)
}

// VariantDir returns the intermediate output directory for a configuration.
func VariantDir(prefix string) string {
	return filepath.Join(VariantDirName, prefix)
}

// InstallDir returns the install directory for a configuration.
func InstallDir(prefix string) string {
	return filepath.Join(InstallDirName, prefix)
}

// StaticLibraryFile returns the file name of a static library on the given
// platform.
func StaticLibraryFile(platform, name string) string {
	if platform == "Windows" {
		return name + ".lib"
	}
	return "lib" + name + ".a"
}

// SharedLibraryFile returns the file name of a shared library on the given
// platform.
func SharedLibraryFile(platform, name string) string {
	switch platform {
	case "Windows":
		return name + ".dll"
	case "macOS", "iOS", "iOSSimulator":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// ProgramFile returns the file name of an executable on the given platform.
func ProgramFile(platform, name string) string {
	if platform == "Windows" {
		return name + ".exe"
	}
	return name
}

// ObjectFile returns the file name of a compiled object for the given
// compiler family.
func ObjectFile(compiler, base string) string {
	if strings.HasPrefix(compiler, "VisualStudio") {
		return base + ".obj"
	}
	return base + ".o"
}

// EngineLibraryName returns the name of the main engine library for a
// configuration. Debug builds carry a Debug suffix, and 64-bit Windows builds
// additionally carry a 64 suffix.
func EngineLibraryName(platform, architecture string, buildType BuildType) string {
	name := EngineName
	if buildType == Debug {
		name += "Debug"
	}
	if platform == "Windows" && Is64Bit(architecture) {
		name += "64"
	}
	return name
}
