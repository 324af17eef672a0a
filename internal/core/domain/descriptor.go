package domain

// PlatformDescriptor is the result of a platform configuration pass: the
// platform/architecture/compiler combination being targeted and its populated
// build environment.
type PlatformDescriptor struct {
	Platform     string
	Architecture string
	Compiler     string
	BuildType    BuildType
	Strict       bool
	Env          *Env

	// EngineStaticOnly is set by platforms that can only link the engine as a
	// static library, overriding the static= option.
	EngineStaticOnly bool
}

// OutputPrefix returns the output path prefix for this configuration.
func (d *PlatformDescriptor) OutputPrefix() string {
	return OutputPrefix(d.Platform, d.Architecture, d.Compiler, d.BuildType)
}

// VariantDir returns the intermediate output directory for this configuration.
func (d *PlatformDescriptor) VariantDir() string {
	return VariantDir(d.OutputPrefix())
}

// InstallDir returns the install directory for this configuration.
func (d *PlatformDescriptor) InstallDir() string {
	return InstallDir(d.OutputPrefix())
}

// EngineLibraryName returns the engine library name for this configuration.
func (d *PlatformDescriptor) EngineLibraryName() string {
	return EngineLibraryName(d.Platform, d.Architecture, d.BuildType)
}

// Is64Bit reports whether the target architecture is 64-bit.
func (d *PlatformDescriptor) Is64Bit() bool {
	return Is64Bit(d.Architecture)
}

// IsEngineStatic resolves whether the engine is linked statically. The default
// is to link statically, except when installing on a platform that installs
// the engine as a dynamic library; combining the install target with an
// explicit static=true is an error.
func (d *PlatformDescriptor) IsEngineStatic(opts *Options) (bool, error) {
	if (d.Platform == "Linux" || d.Platform == "macOS") && opts.Install {
		if opts.StaticOr(false) {
			return false, ErrInstallWithStatic
		}
		return false, nil
	}

	if d.EngineStaticOnly {
		return true, nil
	}
	return opts.StaticOr(true), nil
}

// TargetEnv pairs a build target with the fully configured environment its
// artifacts are compiled and linked with, and the artifacts it produces. The
// base descriptor environment alone cannot build a target: consumer link
// setup, dependency paths and precompiled header flags only exist on these
// per-target clones.
type TargetEnv struct {
	Target    string
	Env       *Env
	Artifacts []string
}
