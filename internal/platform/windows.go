package platform

import (
	"path/filepath"

	"carbonengine.dev/carbide/internal/adapters/fs"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/toolchain"
	"go.trai.ch/zerr"
)

// windowsCompiler is the Visual Studio release used for Windows builds.
const windowsCompiler = "VisualStudio2022"

// windowsLinkDependencies are the third-party libraries whose library
// directories are put on the link path when linking against the engine.
var windowsLinkDependencies = []string{
	"AngelScript", "Bullet", "FreeImage", "FreeType", "OpenALSoft",
	"OpenAssetImport", "OculusRift", "Vorbis", "ZLib",
}

// Windows builds with the Visual Studio toolchain for x86 or x64.
type Windows struct {
	host Host
	root string

	opts *domain.Options
	desc *domain.PlatformDescriptor
}

// NewWindows creates the Windows platform configuration.
func NewWindows(host Host, root string) *Windows {
	return &Windows{host: host, root: root}
}

// Name implements ports.PlatformConfig.
func (p *Windows) Name() string { return "Windows" }

// Configure implements ports.PlatformConfig.
func (p *Windows) Configure(opts *domain.Options) (*domain.PlatformDescriptor, error) {
	architecture := opts.Architecture
	if architecture == "" {
		architecture = "x86"
	}
	if architecture != "x86" && architecture != "x64" {
		return nil, zerr.With(domain.ErrInvalidArchitecture, "architecture", architecture)
	}

	env := toolchain.NewMSVCEnv(opts, windowsCompiler, architecture)

	// Slim debug builds trade debuggability for smaller code.
	if opts.IsDebug() && opts.Slim {
		if err := env.Remove(domain.CCFLAGS, "/Od"); err != nil {
			return nil, err
		}
		if err := env.Remove(domain.CCFLAGS, "/RTC1"); err != nil {
			return nil, err
		}
		env.Append(domain.CCFLAGS, "/O1")
	}

	p.opts = opts
	p.desc = &domain.PlatformDescriptor{
		Platform:     "Windows",
		Architecture: architecture,
		Compiler:     windowsCompiler,
		BuildType:    opts.BuildType,
		Strict:       opts.Strict,
		Env:          env,
	}
	return p.desc, nil
}

// ConfigureStaticLink implements ports.EngineLinker. On Windows only the
// dependency library directories go on the link path, the import libraries
// themselves are named by pragmas in the engine headers.
func (p *Windows) ConfigureStaticLink(env *domain.Env) error {
	depsDir, err := fs.DependenciesDir(p.root, p.opts.CarbonRoot)
	if err != nil {
		return err
	}

	libPaths, err := domain.DependencyLibPaths(depsDir, "Windows", p.desc.Architecture, windowsLinkDependencies...)
	if err != nil {
		return err
	}
	env.Append(domain.LIBPATH, libPaths...)
	return nil
}

// ConfigureConsumer implements ports.EngineLinker.
func (p *Windows) ConfigureConsumer(env *domain.Env) error {
	if p.opts.CarbonRoot != "" {
		env.Append(domain.CPPPATH, filepath.Join(p.opts.CarbonRoot, "Source"))
		env.Append(domain.LIBPATH, filepath.Join(p.opts.CarbonRoot,
			domain.InstallDirName, "Windows", p.desc.Architecture, windowsCompiler, string(p.opts.BuildType)))
	} else {
		sdkPath := p.host.Getenv(domain.SDKPathEnv)
		if sdkPath == "" {
			return zerr.With(domain.ErrNoInstalledSDK, "platform", "Windows")
		}
		env.Append(domain.CPPPATH, filepath.Join(sdkPath, "Include"))
		env.Append(domain.LIBPATH, filepath.Join(sdkPath, "Library"))
	}

	static, err := p.desc.IsEngineStatic(p.opts)
	if err != nil {
		return err
	}
	if static {
		if p.opts.CarbonRoot == "" {
			return zerr.With(domain.ErrStaticRequiresRoot, "platform", "Windows")
		}
		env.Append(domain.CPPDEFINES, "CARBON_STATIC_LIBRARY")
		if err := p.ConfigureStaticLink(env); err != nil {
			return err
		}
	}

	env.Append(domain.LINKFLAGS, "/SUBSYSTEM:WINDOWS")
	return nil
}
