package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidBuildType is returned when the type= option is not Debug or Release.
	ErrInvalidBuildType = zerr.New("the build type must be either Debug or Release")

	// ErrInvalidOptionValue is returned when a boolean option is not 'true' or 'false'.
	ErrInvalidOptionValue = zerr.New("invalid option value")

	// ErrUnknownOption is returned when an unrecognized key=value option is supplied.
	ErrUnknownOption = zerr.New("unknown build option")

	// ErrInvalidArchitecture is returned when the architecture= option is not valid
	// for the selected platform.
	ErrInvalidArchitecture = zerr.New("invalid architecture specified")

	// ErrUnknownPlatform is returned when no platform configuration can be resolved
	// for the requested platform or the build host.
	ErrUnknownPlatform = zerr.New("unable to find a build configuration for the specified platform")

	// ErrMissingSDK is returned when a required SDK or toolchain directory is absent.
	ErrMissingSDK = zerr.New("required SDK path is missing")

	// ErrMissingNDK is returned when an expected Android NDK path is absent.
	ErrMissingNDK = zerr.New("an expected NDK path is missing, check the Android NDK installation is up to date")

	// ErrInstallWithStatic is returned when the install target is combined with
	// static=true on a platform that installs dynamic libraries.
	ErrInstallWithStatic = zerr.New("the install target should not be used when building with static=true")

	// ErrStaticRequiresRoot is returned when a static engine build is requested
	// against an installed SDK that only ships dynamic libraries.
	ErrStaticRequiresRoot = zerr.New("using a static library build of the engine requires that carbonroot be specified")

	// ErrNoInstalledSDK is returned when building against the installed SDK on a
	// platform that has no installed SDK distribution.
	ErrNoInstalledSDK = zerr.New("there is no engine SDK installed")

	// ErrUnknownDependency is returned when a dependency name has no entry in the
	// fixed dependency tables.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrMissingDependenciesDir is returned when the Dependencies directory cannot
	// be located.
	ErrMissingDependenciesDir = zerr.New("unable to locate the Dependencies directory")

	// ErrEnvEntryNotPresent is returned when removing a flag that was never added
	// to the environment.
	ErrEnvEntryNotPresent = zerr.New("environment entry is not present")

	// ErrArtifactAlreadyExists is returned when adding an artifact whose name is
	// already in the build graph.
	ErrArtifactAlreadyExists = zerr.New("artifact already exists")

	// ErrMissingArtifact is returned when an artifact references a dependency that
	// is not in the build graph.
	ErrMissingArtifact = zerr.New("missing artifact")

	// ErrCycleDetected is returned when a cycle is detected in the build graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnknownTarget is returned when a build target is not defined in the
	// project manifest.
	ErrUnknownTarget = zerr.New("unknown build target")

	// ErrManifestNotFound is returned when no project manifest exists in the
	// working directory or any of its parents.
	ErrManifestNotFound = zerr.New("no project manifest found")

	// ErrManifestReadFailed is returned when the project manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read the project manifest")

	// ErrManifestParseFailed is returned when the project manifest is not valid YAML.
	ErrManifestParseFailed = zerr.New("failed to parse the project manifest")

	// ErrInvalidManifest is returned when the project manifest is structurally
	// invalid, for example a program without sources.
	ErrInvalidManifest = zerr.New("invalid project manifest")
)
