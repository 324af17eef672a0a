package platform

import (
	"path/filepath"

	"carbonengine.dev/carbide/internal/adapters/fs"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/toolchain"
)

// linuxArchNames maps the Go runtime architecture to the name the machine
// reports, which is what the output layout uses on Linux.
var linuxArchNames = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
	"386":   "i686",
}

// linuxStaticDependencies are the third-party libraries linked into a static
// engine build on Linux.
var linuxStaticDependencies = []string{
	"AngelScript", "Bullet", "FreeImage", "FreeType", "OpenAssetImport", "Vorbis", "ZLib",
}

// linuxSystemLibs are the system libraries a static engine link always pulls
// in on Linux.
var linuxSystemLibs = []string{"dl", "GL", "openal", "pthread", "SDL2", "udev", "X11", "Xinerama"}

// Linux builds natively with GCC for the host architecture. The engine
// defaults to a static library but installs as a dynamic one.
type Linux struct {
	host Host
	root string

	opts         *domain.Options
	desc         *domain.PlatformDescriptor
	architecture string
}

// NewLinux creates the Linux platform configuration.
func NewLinux(host Host, root string) *Linux {
	return &Linux{host: host, root: root}
}

// Name implements ports.PlatformConfig.
func (p *Linux) Name() string { return "Linux" }

// Configure implements ports.PlatformConfig.
func (p *Linux) Configure(opts *domain.Options) (*domain.PlatformDescriptor, error) {
	env := toolchain.NewGCCEnv(opts)
	env.SetProc("PATH", p.host.Getenv("PATH"))

	architecture := linuxArchNames[p.host.Arch]
	if architecture == "" {
		architecture = p.host.Arch
	}

	// Append a specific GCC version to the invocations if one was specified.
	if opts.GCCVersion != "" {
		env.Set(domain.CC, env.Get(domain.CC)+"-"+opts.GCCVersion)
		env.Set(domain.CXX, env.Get(domain.CXX)+"-"+opts.GCCVersion)
	}

	p.opts = opts
	p.architecture = architecture
	p.desc = &domain.PlatformDescriptor{
		Platform:     "Linux",
		Architecture: architecture,
		Compiler:     "GCC",
		BuildType:    opts.BuildType,
		Strict:       opts.Strict,
		Env:          env,
	}
	return p.desc, nil
}

// ConfigureStaticLink implements ports.EngineLinker.
func (p *Linux) ConfigureStaticLink(env *domain.Env) error {
	return p.configureStaticLink(env, linuxStaticDependencies)
}

// configureStaticLink wires the given dependency set plus the Linux system
// libraries into env. Installed-SDK consumers pass no dependencies because the
// SDK libraries are found through the default search paths.
func (p *Linux) configureStaticLink(env *domain.Env, dependencies []string) error {
	if len(dependencies) > 0 {
		depsDir, err := fs.DependenciesDir(p.root, p.opts.CarbonRoot)
		if err != nil {
			return err
		}

		libPaths, err := domain.DependencyLibPaths(depsDir, "Linux", p.architecture, dependencies...)
		if err != nil {
			return err
		}
		env.Append(domain.LIBPATH, libPaths...)
	}

	env.Append(domain.LIBS, linuxSystemLibs...)
	env.Append(domain.LIBS, dependencies...)
	return nil
}

// ConfigureConsumer implements ports.EngineLinker. Without a carbonroot the
// engine headers and libraries are found through the default include and
// library paths.
func (p *Linux) ConfigureConsumer(env *domain.Env) error {
	static, err := p.desc.IsEngineStatic(p.opts)
	if err != nil {
		return err
	}

	if static {
		env.Append(domain.CPPDEFINES, "CARBON_STATIC_LIBRARY")
	}

	env.Append(domain.LIBS, domain.EngineLibraryName("Linux", p.architecture, p.opts.BuildType))

	if p.opts.CarbonRoot != "" {
		env.Append(domain.CPPPATH, filepath.Join(p.opts.CarbonRoot, "Source"))
		env.Append(domain.LIBPATH, filepath.Join(p.opts.CarbonRoot,
			domain.InstallDirName, "Linux", p.architecture, "GCC", string(p.opts.BuildType)))

		if static {
			return p.configureStaticLink(env, linuxStaticDependencies)
		}
		return nil
	}

	if static {
		return p.configureStaticLink(env, nil)
	}
	return nil
}
