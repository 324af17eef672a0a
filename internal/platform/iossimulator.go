package platform

import (
	"path/filepath"

	"carbonengine.dev/carbide/internal/adapters/fs"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/toolchain"
	"go.trai.ch/zerr"
)

// iosSimulatorArchNames maps the supported simulator architectures to the
// names Clang's -arch flag expects.
var iosSimulatorArchNames = map[string]string{
	"ARM64": "arm64",
	"x64":   "x86_64",
}

// IOSSimulator builds simulator binaries against the iOS Simulator SDK. Like
// the device platform the engine is only ever a static library.
type IOSSimulator struct {
	host Host
	root string

	// developerRoot is overridable in tests.
	developerRoot string

	opts *domain.Options
	desc *domain.PlatformDescriptor
}

// NewIOSSimulator creates the iOS Simulator platform configuration.
func NewIOSSimulator(host Host, root string) *IOSSimulator {
	return &IOSSimulator{host: host, root: root, developerRoot: defaultDeveloperRoot}
}

// Name implements ports.PlatformConfig.
func (p *IOSSimulator) Name() string { return "iOSSimulator" }

// Configure implements ports.PlatformConfig.
func (p *IOSSimulator) Configure(opts *domain.Options) (*domain.PlatformDescriptor, error) {
	architecture := opts.Architecture
	if architecture == "" {
		architecture = "ARM64"
	}
	clangArch, ok := iosSimulatorArchNames[architecture]
	if !ok {
		return nil, zerr.With(domain.ErrInvalidArchitecture, "architecture", architecture)
	}

	sdk := filepath.Join(p.developerRoot, "iPhoneSimulator.platform", "Developer", "SDKs", "iPhoneSimulator.sdk")
	if !isDir(sdk) {
		return nil, zerr.With(zerr.With(domain.ErrMissingSDK, "sdk", "iOSSimulator"),
			"hint", "check that Xcode is installed and up to date")
	}

	env := toolchain.NewClangEnv(opts, p.host.OS, p.host.Getenv)

	sharedFlags := []string{"-arch", clangArch, "-isysroot", sdk, "-mios-simulator-version-min=12.0"}

	env.Replace(domain.ASFLAGS, sharedFlags...)
	env.Append(domain.CCFLAGS, sharedFlags...)
	env.Append(domain.CCFLAGS, "-fobjc-arc", "-fobjc-legacy-dispatch")
	env.Append(domain.LINKFLAGS, sharedFlags...)

	env.Set(domain.AR, "xcrun libtool")
	env.Set(domain.ARCOM, "$AR $ARFLAGS $_LIBDIRFLAGS $_LIBFLAGS -o $TARGET $SOURCES > /dev/null 2>&1")
	env.Replace(domain.ARFLAGS, "-static")

	// The simulator requires the Objective-C 2 ABI.
	env.Append(domain.CCFLAGS, "-fobjc-abi-version=2")
	env.Append(domain.LINKFLAGS, "-Xlinker", "-objc_abi_version", "-Xlinker", "2")

	p.opts = opts
	p.desc = &domain.PlatformDescriptor{
		Platform:         "iOSSimulator",
		Architecture:     architecture,
		Compiler:         "Clang",
		BuildType:        opts.BuildType,
		Strict:           opts.Strict,
		Env:              env,
		EngineStaticOnly: true,
	}
	return p.desc, nil
}

// ConfigureStaticLink implements ports.EngineLinker.
func (p *IOSSimulator) ConfigureStaticLink(env *domain.Env) error {
	return p.configureStaticLink(env, iOSStaticDependencies)
}

func (p *IOSSimulator) configureStaticLink(env *domain.Env, dependencies []string) error {
	if len(dependencies) > 0 {
		depsDir, err := fs.DependenciesDir(p.root, p.opts.CarbonRoot)
		if err != nil {
			return err
		}

		libPaths, err := domain.DependencyLibPaths(depsDir, "iOSSimulator", p.desc.Architecture, dependencies...)
		if err != nil {
			return err
		}
		env.Append(domain.LIBPATH, libPaths...)
	}

	env.Append(domain.LIBS, dependencies...)
	env.Append(domain.FRAMEWORKS, iOSFrameworks...)
	return nil
}

// ConfigureConsumer implements ports.EngineLinker.
func (p *IOSSimulator) ConfigureConsumer(env *domain.Env) error {
	if p.opts.CarbonRoot != "" {
		env.Append(domain.CPPPATH, filepath.Join(p.opts.CarbonRoot, "Source"))
		env.Append(domain.LIBPATH, filepath.Join(p.opts.CarbonRoot,
			domain.InstallDirName, "iOSSimulator", p.desc.Architecture, "Clang", string(p.opts.BuildType)))
		env.Append(domain.LIBS, domain.EngineLibraryName("iOSSimulator", p.desc.Architecture, p.opts.BuildType))
		return p.configureStaticLink(env, iOSStaticDependencies)
	}

	env.Append(domain.CPPPATH, filepath.Join(installedSDKRoot, "Include"))
	env.Append(domain.LIBPATH, filepath.Join(installedSDKRoot, "Library"))

	name := "CarbonEngineiOSSimulator"
	if p.opts.IsDebug() {
		name += "Debug"
	}
	env.Append(domain.LIBS, name)

	return p.configureStaticLink(env, nil)
}
