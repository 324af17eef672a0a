package platform

import (
	"path/filepath"

	"carbonengine.dev/carbide/internal/adapters/fs"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/toolchain"
	"go.trai.ch/zerr"
)

// androidArch maps a symbolic architecture name to its NDK toolchain
// settings.
type androidArch struct {
	platform     string
	target       string
	gccToolchain string
	libcpp       string
	gccBinPrefix string
}

var androidArchs = map[string]androidArch{
	"ARMv7": {
		platform: "arm", target: "armv7-none-linux-androideabi", gccToolchain: "arm-linux-androideabi",
		libcpp: "armeabi-v7a", gccBinPrefix: "arm-linux-androideabi",
	},
	"ARM64": {
		platform: "arm64", target: "aarch64-none-linux-android", gccToolchain: "aarch64-linux-android",
		libcpp: "arm64-v8a", gccBinPrefix: "aarch64-linux-android",
	},
	"x86": {
		platform: "x86", target: "i686-none-linux-android", gccToolchain: "x86",
		libcpp: "x86", gccBinPrefix: "i686-linux-android",
	},
	"x64": {
		platform: "x86_64", target: "x86_64-none-linux-android", gccToolchain: "x86_64",
		libcpp: "x86_64", gccBinPrefix: "x86_64-linux-android",
	},
}

// androidHostNames maps the build host OS to the NDK's prebuilt toolchain
// directory name.
var androidHostNames = map[string]string{
	"darwin":  "darwin-x86_64",
	"windows": "windows-x86_64",
	"linux":   "linux-x86_64",
}

// androidStaticDependencies are the third-party libraries linked into a
// static engine build on Android.
var androidStaticDependencies = []string{
	"AngelScript", "Bullet", "FreeImage", "OpenALSoft", "OpenAssetImport", "Vorbis", "ZLib",
}

// Android builds for Android devices using the NDK's Clang toolchain. The
// engine is always linked statically; there is no installed SDK distribution.
type Android struct {
	host Host
	root string

	opts           *domain.Options
	architecture   string
	ndk            string
	clangToolchain string
	gccToolchain   string
}

// NewAndroid creates the Android platform configuration.
func NewAndroid(host Host, root string) *Android {
	return &Android{host: host, root: root}
}

// Name implements ports.PlatformConfig.
func (p *Android) Name() string { return "Android" }

// Configure implements ports.PlatformConfig.
func (p *Android) Configure(opts *domain.Options) (*domain.PlatformDescriptor, error) {
	architecture := opts.Architecture
	if architecture == "" {
		architecture = "ARMv7"
	}
	arch, valid := androidArchs[architecture]
	if !valid {
		return nil, zerr.With(zerr.With(domain.ErrInvalidArchitecture, "architecture", architecture),
			"allowed", "ARMv7, ARM64, x86, x64")
	}

	hostName, supported := androidHostNames[p.host.OS]
	if !supported {
		return nil, zerr.With(domain.ErrUnknownPlatform, "host", p.host.OS)
	}

	ndk, err := filepath.Abs(opts.NDK)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve NDK path")
	}

	// The llvm-3.6/gcc-4.9 toolchain pairing is what the supported NDK
	// releases ship.
	sysroot := filepath.Join(ndk, "platforms", "android-21", "arch-"+arch.platform)
	clangToolchain := filepath.Join(ndk, "toolchains", "llvm-3.6", "prebuilt", hostName)
	gccToolchain := filepath.Join(ndk, "toolchains", arch.gccToolchain+"-4.9", "prebuilt", hostName)

	for _, path := range []string{sysroot, clangToolchain, gccToolchain} {
		if !isDir(path) {
			return nil, zerr.With(zerr.With(domain.ErrMissingNDK, "path", path), "ndk", ndk)
		}
	}

	clangBin := func(name string) string {
		return filepath.Join(clangToolchain, "bin", name)
	}

	env := toolchain.NewClangEnv(opts, p.host.OS, p.host.Getenv)

	sharedFlags := []string{"--sysroot", sysroot, "-target", arch.target}

	env.Set(domain.AR, clangBin("llvm-ar"))
	if err := env.Remove(domain.ARFLAGS, "-S"); err != nil {
		return nil, err
	}

	env.Set(domain.AS, clangBin("llvm-as"))
	env.Replace(domain.ASFLAGS, sharedFlags...)

	env.Set(domain.CC, clangBin("clang"))
	env.Set(domain.CXX, clangBin("clang++"))
	env.Replace(domain.CPPPATH,
		filepath.Join(ndk, "sources", "android", "cpufeatures"),
		filepath.Join(ndk, "sources", "android", "support", "include"),
		filepath.Join(ndk, "sources", "cxx-stl", "llvm-libc++", "libcxx", "include"))

	env.Append(domain.CCFLAGS, sharedFlags...)
	if err := env.Remove(domain.CCFLAGS, "-stdlib=libc++"); err != nil {
		return nil, err
	}
	if opts.Strict {
		env.Append(domain.CCFLAGS, "-Wno-c++98-compat-pedantic", "-Wno-pedantic", "-Wno-reserved-id-macro")
		if err := env.Remove(domain.CCFLAGS, "-Wno-nullable-to-nonnull-conversion"); err != nil {
			return nil, err
		}
	}

	env.Replace(domain.LIBPATH, filepath.Join(ndk, "sources", "cxx-stl", "llvm-libc++", "libs", arch.libcpp))
	env.Replace(domain.LIBS, "android", "c", "c++_shared", "dl", "m")

	env.Set(domain.LINK, clangBin("clang++"))
	env.Set(domain.LINKCOM, "$LINK -o $TARGET $LINKFLAGS $__RPATH $SOURCES $_LIBDIRFLAGS $_LIBFLAGS")
	env.Replace(domain.LINKFLAGS, append(append([]string{}, sharedFlags...), "-gcc-toolchain", gccToolchain)...)

	env.Set(domain.RANLIB, filepath.Join(gccToolchain, "bin", arch.gccBinPrefix+"-ranlib"))

	env.Set(domain.SHLINKCOM, "$SHLINK -o $TARGET $SHLINKFLAGS $__RPATH $SOURCES $_LIBDIRFLAGS $_LIBFLAGS")
	env.Replace(domain.SHLINKFLAGS, "$LINKFLAGS", "-shared")

	p.opts = opts
	p.architecture = architecture
	p.ndk = ndk
	p.clangToolchain = clangToolchain
	p.gccToolchain = gccToolchain

	return &domain.PlatformDescriptor{
		Platform:         "Android",
		Architecture:     architecture,
		Compiler:         "Clang",
		BuildType:        opts.BuildType,
		Strict:           opts.Strict,
		Env:              env,
		EngineStaticOnly: true,
	}, nil
}

// ConfigureStaticLink implements ports.EngineLinker.
func (p *Android) ConfigureStaticLink(env *domain.Env) error {
	depsDir, err := fs.DependenciesDir(p.root, p.opts.CarbonRoot)
	if err != nil {
		return err
	}

	libPaths, err := domain.DependencyLibPaths(depsDir, "Android", p.architecture, androidStaticDependencies...)
	if err != nil {
		return err
	}

	env.Append(domain.LIBPATH, libPaths...)
	env.Append(domain.LIBS, androidStaticDependencies...)
	env.Append(domain.LIBS, "GLESv2", "log", "OpenSLES")
	return nil
}

// ConfigureConsumer implements ports.EngineLinker. There is no installed
// Android SDK, so a carbonroot checkout is required.
func (p *Android) ConfigureConsumer(env *domain.Env) error {
	env.Append(domain.LIBS, domain.EngineLibraryName("Android", p.architecture, p.opts.BuildType))

	if p.opts.CarbonRoot == "" {
		return zerr.With(domain.ErrNoInstalledSDK, "platform", "Android")
	}

	env.Append(domain.CPPPATH, filepath.Join(p.opts.CarbonRoot, "Source"))
	env.Append(domain.LIBPATH, filepath.Join(p.opts.CarbonRoot,
		domain.InstallDirName, "Android", p.architecture, "Clang", string(p.opts.BuildType)))
	return p.ConfigureStaticLink(env)
}
