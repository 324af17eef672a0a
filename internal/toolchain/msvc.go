package toolchain

import (
	"carbonengine.dev/carbide/internal/core/domain"
)

// msvcVersions maps a compiler name to the MSVC toolset version it selects.
var msvcVersions = map[string]string{
	"VisualStudio2022": "14.3",
}

// msvcTargetArchs maps the symbolic architecture to the MSVC target
// architecture name.
var msvcTargetArchs = map[string]string{
	"x86": "x86",
	"x64": "x86_64",
}

// NewMSVCEnv creates a build environment that uses Visual Studio for the
// given compiler release and target architecture. The caller validates the
// architecture beforehand.
func NewMSVCEnv(opts *domain.Options, compiler, architecture string) *domain.Env {
	env := domain.NewEnv()

	env.Set("MSVC_VERSION", msvcVersions[compiler])
	env.Set("TARGET_ARCH", msvcTargetArchs[architecture])

	env.Set(domain.CC, "cl")
	env.Set(domain.CXX, "cl")
	env.Set(domain.LINK, "link")
	env.Set(domain.AR, "lib")
	env.Set(domain.AS, "ml")
	if architecture == "x64" {
		env.Set(domain.AS, "ml64")
	}

	env.Append(domain.ARFLAGS, "/MACHINE:"+architecture)
	env.Append(domain.CCFLAGS, "/EHsc", "/fp:fast", "/nologo")
	env.Append(domain.CPPDEFINES, "WIN32", "_WINDOWS")
	env.Append(domain.LINKFLAGS,
		"/DYNAMICBASE", "/MANIFEST", "/nologo", "/NXCOMPAT", "/MACHINE:"+architecture, "/INCREMENTAL:NO")

	env.Set(domain.LINKCOM, "$LINK /OUT:$TARGET $LINKFLAGS $_LIBDIRFLAGS $_LIBFLAGS $SOURCES")
	env.Set(domain.SHLINKCOM, "$LINK /OUT:$TARGET /DLL $LINKFLAGS $_LIBDIRFLAGS $_LIBFLAGS $SOURCES")

	if opts.Strict {
		env.Append(domain.CCFLAGS, "/W4", "/WX")
		env.Append(domain.LINKFLAGS, "/WX")
	}

	if opts.IsDebug() {
		env.Append(domain.CPPDEFINES, "_DEBUG")
		env.Append(domain.CCFLAGS, "/MTd", "/Od", "/RTC1")
	} else {
		env.Append(domain.CCFLAGS, "/MT", "/O2")
		env.Append(domain.CPPDEFINES, "NDEBUG")
		env.Append(domain.LINKFLAGS, "/OPT:REF,ICF")

		if architecture == "x86" {
			env.Append(domain.CCFLAGS, "/arch:SSE2")
		}
	}

	return env
}

// EmbedManifest appends a manifest embedding step to the link command.
func EmbedManifest(env *domain.Env, manifest string, isDLL bool) {
	env.Set("_MANIFEST_FILE", manifest)
	if isDLL {
		env.Set(domain.SHLINKCOM,
			env.Get(domain.SHLINKCOM)+" && $MT /nologo -manifest $_MANIFEST_FILE -outputresource:$TARGET;2")
		return
	}
	env.Set(domain.LINKCOM,
		env.Get(domain.LINKCOM)+" && $MT /nologo -manifest $_MANIFEST_FILE -outputresource:$TARGET;1")
}
