package platform

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"carbonengine.dev/carbide/internal/adapters/fs"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/toolchain"
	"go.trai.ch/zerr"
)

// installedSDKRoot is where the installed engine SDK lives on the Apple
// platforms.
const installedSDKRoot = "/Applications/Carbon SDK"

// defaultDeveloperRoot is Xcode's platform SDK location.
const defaultDeveloperRoot = "/Applications/Xcode.app/Contents/Developer/Platforms"

// macOSStaticDependencies are the third-party libraries linked into a static
// engine build on macOS.
var macOSStaticDependencies = []string{
	"AngelScript", "Bullet", "FreeImage", "FreeType", "OpenAssetImport", "PhysX", "Vorbis", "ZLib",
}

// macOSFrameworks are the system frameworks a static engine link pulls in on
// macOS.
var macOSFrameworks = []string{"Cocoa", "GameKit", "IOKit", "OpenAL", "OpenGL", "StoreKit"}

// MacOS builds for macOS with Clang against the newest installed SDK. The
// engine defaults to a static library but installs as a dynamic one.
type MacOS struct {
	host Host
	root string

	// developerRoot is overridable in tests.
	developerRoot string

	opts *domain.Options
	desc *domain.PlatformDescriptor
}

// NewMacOS creates the macOS platform configuration.
func NewMacOS(host Host, root string) *MacOS {
	return &MacOS{host: host, root: root, developerRoot: defaultDeveloperRoot}
}

// Name implements ports.PlatformConfig.
func (p *MacOS) Name() string { return "macOS" }

// findSDK locates the macOS SDK, preferring the unversioned MacOSX.sdk and
// falling back to the newest versioned MacOSX10.* SDK.
func (p *MacOS) findSDK() (string, error) {
	sdksDir := filepath.Join(p.developerRoot, "MacOSX.platform", "Developer", "SDKs")

	sdk := filepath.Join(sdksDir, "MacOSX.sdk")
	if isDir(sdk) {
		return sdk, nil
	}

	matches, err := filepath.Glob(filepath.Join(sdksDir, "MacOSX10.*"))
	if err != nil || len(matches) == 0 {
		return "", zerr.With(zerr.With(domain.ErrMissingSDK, "sdk", "macOS"),
			"hint", "check that Xcode is installed")
	}

	// Sort by the minor version number between "MacOSX10." and ".sdk".
	sort.Slice(matches, func(i, j int) bool {
		return macOSSDKVersion(matches[i]) < macOSSDKVersion(matches[j])
	})
	return matches[len(matches)-1], nil
}

func macOSSDKVersion(path string) int {
	name := filepath.Base(path)
	version := strings.TrimSuffix(strings.TrimPrefix(name, "MacOSX10."), ".sdk")
	n, _ := strconv.Atoi(version)
	return n
}

// Configure implements ports.PlatformConfig.
func (p *MacOS) Configure(opts *domain.Options) (*domain.PlatformDescriptor, error) {
	sdk, err := p.findSDK()
	if err != nil {
		return nil, err
	}

	env := toolchain.NewClangEnv(opts, p.host.OS, p.host.Getenv)

	flags := []string{"-arch", "x86_64", "-mmacosx-version-min=10.14", "-isysroot", sdk}
	env.Append(domain.CCFLAGS, flags...)
	env.Append(domain.CCFLAGS, "-fobjc-arc")
	env.Append(domain.LINKFLAGS, flags...)
	env.Append(domain.LINKFLAGS, "-Wl,-syslibroot,"+sdk)

	p.opts = opts
	p.desc = &domain.PlatformDescriptor{
		Platform:     "macOS",
		Architecture: "x64",
		Compiler:     "Clang",
		BuildType:    opts.BuildType,
		Strict:       opts.Strict,
		Env:          env,
	}
	return p.desc, nil
}

// ConfigureStaticLink implements ports.EngineLinker.
func (p *MacOS) ConfigureStaticLink(env *domain.Env) error {
	return p.configureStaticLink(env, macOSStaticDependencies)
}

func (p *MacOS) configureStaticLink(env *domain.Env, dependencies []string) error {
	if len(dependencies) > 0 {
		depsDir, err := fs.DependenciesDir(p.root, p.opts.CarbonRoot)
		if err != nil {
			return err
		}

		libPaths, err := domain.DependencyLibPaths(depsDir, "macOS", "x64", dependencies...)
		if err != nil {
			return err
		}
		env.Append(domain.LIBPATH, libPaths...)
	}

	env.Append(domain.LIBS, "iconv")
	env.Append(domain.LIBS, dependencies...)
	env.Append(domain.FRAMEWORKS, macOSFrameworks...)
	return nil
}

// ConfigureConsumer implements ports.EngineLinker.
func (p *MacOS) ConfigureConsumer(env *domain.Env) error {
	static, err := p.desc.IsEngineStatic(p.opts)
	if err != nil {
		return err
	}

	if static {
		env.Append(domain.CPPDEFINES, "CARBON_STATIC_LIBRARY")
	}

	env.Append(domain.LIBS, domain.EngineLibraryName("macOS", "x64", p.opts.BuildType))

	if p.opts.CarbonRoot != "" {
		env.Append(domain.CPPPATH, filepath.Join(p.opts.CarbonRoot, "Source"))
		env.Append(domain.LIBPATH, filepath.Join(p.opts.CarbonRoot,
			domain.InstallDirName, "macOS", "x64", "Clang", string(p.opts.BuildType)))

		if static {
			return p.configureStaticLink(env, macOSStaticDependencies)
		}
		return nil
	}

	env.Append(domain.CPPPATH, filepath.Join(installedSDKRoot, "Include"))
	env.Append(domain.LIBPATH, filepath.Join(installedSDKRoot, "Library"))

	if static {
		return p.configureStaticLink(env, nil)
	}
	return nil
}
