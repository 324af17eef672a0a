package platform

import (
	"path/filepath"

	"carbonengine.dev/carbide/internal/adapters/fs"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/toolchain"
	"go.trai.ch/zerr"
)

// iOSStaticDependencies are the third-party libraries linked into the static
// engine on iOS.
var iOSStaticDependencies = []string{
	"AngelScript", "Bullet", "FreeImage", "OpenAssetImport", "Vorbis", "ZLib",
}

// iOSFrameworks are the system frameworks a static engine link pulls in on
// iOS and the iOS simulator.
var iOSFrameworks = []string{
	"CoreGraphics", "Foundation", "GameKit", "OpenAL", "OpenGLES", "QuartzCore", "StoreKit", "UIKit",
}

// IOS builds arm64 device binaries against the iOS SDK. The engine is only
// ever a static library on this platform.
type IOS struct {
	host Host
	root string

	// developerRoot is overridable in tests.
	developerRoot string

	opts *domain.Options
	desc *domain.PlatformDescriptor
}

// NewIOS creates the iOS platform configuration.
func NewIOS(host Host, root string) *IOS {
	return &IOS{host: host, root: root, developerRoot: defaultDeveloperRoot}
}

// Name implements ports.PlatformConfig.
func (p *IOS) Name() string { return "iOS" }

// Configure implements ports.PlatformConfig.
func (p *IOS) Configure(opts *domain.Options) (*domain.PlatformDescriptor, error) {
	sdk := filepath.Join(p.developerRoot, "iPhoneOS.platform", "Developer", "SDKs", "iPhoneOS.sdk")
	if !isDir(sdk) {
		return nil, zerr.With(zerr.With(domain.ErrMissingSDK, "sdk", "iOS"),
			"hint", "check that Xcode is installed and up to date")
	}

	env := toolchain.NewClangEnv(opts, p.host.OS, p.host.Getenv)

	sharedFlags := []string{"-arch", "arm64", "-isysroot", sdk, "-mios-version-min=12.0"}

	env.Replace(domain.ASFLAGS, sharedFlags...)
	env.Append(domain.CCFLAGS, sharedFlags...)
	env.Append(domain.CCFLAGS, "-fobjc-arc", "-fobjc-legacy-dispatch")
	env.Append(domain.LINKFLAGS, sharedFlags...)

	env.Set(domain.AR, "xcrun libtool")
	env.Set(domain.ARCOM, "$AR $ARFLAGS $_LIBDIRFLAGS $_LIBFLAGS -o $TARGET $SOURCES > /dev/null 2>&1")
	env.Replace(domain.ARFLAGS, "-static")

	// Bitcode support.
	env.Append(domain.ASFLAGS, "-fembed-bitcode")
	env.Append(domain.CCFLAGS, "-fembed-bitcode")
	env.Append(domain.LINKFLAGS, "-fembed-bitcode")

	p.opts = opts
	p.desc = &domain.PlatformDescriptor{
		Platform:         "iOS",
		Architecture:     "ARM64",
		Compiler:         "Clang",
		BuildType:        opts.BuildType,
		Strict:           opts.Strict,
		Env:              env,
		EngineStaticOnly: true,
	}
	return p.desc, nil
}

// ConfigureStaticLink implements ports.EngineLinker.
func (p *IOS) ConfigureStaticLink(env *domain.Env) error {
	return p.configureStaticLink(env, iOSStaticDependencies)
}

func (p *IOS) configureStaticLink(env *domain.Env, dependencies []string) error {
	if len(dependencies) > 0 {
		depsDir, err := fs.DependenciesDir(p.root, p.opts.CarbonRoot)
		if err != nil {
			return err
		}

		libPaths, err := domain.DependencyLibPaths(depsDir, "iOS", "ARM64", dependencies...)
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
func (p *IOS) ConfigureConsumer(env *domain.Env) error {
	if p.opts.CarbonRoot != "" {
		env.Append(domain.CPPPATH, filepath.Join(p.opts.CarbonRoot, "Source"))
		env.Append(domain.LIBPATH, filepath.Join(p.opts.CarbonRoot,
			domain.InstallDirName, "iOS", "ARM64", "Clang", string(p.opts.BuildType)))
		env.Append(domain.LIBS, domain.EngineLibraryName("iOS", "ARM64", p.opts.BuildType))
		return p.configureStaticLink(env, iOSStaticDependencies)
	}

	env.Append(domain.CPPPATH, filepath.Join(installedSDKRoot, "Include"))
	env.Append(domain.LIBPATH, filepath.Join(installedSDKRoot, "Library"))

	name := "CarbonEngineiOS"
	if p.opts.IsDebug() {
		name += "Debug"
	}
	env.Append(domain.LIBS, name)

	return p.configureStaticLink(env, nil)
}
