package toolchain

import (
	"carbonengine.dev/carbide/internal/core/domain"
)

// clangStrictSuppressions are the warnings excluded from -Weverything in
// strict builds.
var clangStrictSuppressions = []string{
	"-Wno-c++98-compat", "-Wno-disabled-macro-expansion", "-Wno-documentation",
	"-Wno-documentation-unknown-command", "-Wno-exit-time-destructors", "-Wno-float-equal",
	"-Wno-format-nonliteral", "-Wno-global-constructors", "-Wno-header-hygiene",
	"-Wno-implicit-fallthrough", "-Wno-keyword-macro", "-Wno-missing-noreturn",
	"-Wno-missing-prototypes", "-Wno-nullable-to-nonnull-conversion", "-Wno-over-aligned",
	"-Wno-padded", "-Wno-sign-conversion", "-Wno-switch-enum", "-Wno-weak-vtables",
}

// NewClangEnv creates a build environment that uses Clang. This is done by
// altering the GCC build environment. On a macOS host the toolchain is
// accessed through xcrun.
func NewClangEnv(opts *domain.Options, hostOS string, getenv func(string) string) *domain.Env {
	env := NewGCCEnv(opts)

	env.Set(domain.CC, "clang")
	env.Set(domain.CXX, "clang++")
	env.Set(domain.LINK, "clang++")

	env.Append(domain.CCFLAGS, "-stdlib=libc++")
	env.Append(domain.LINKFLAGS, "-stdlib=libc++")

	// Make color diagnostics survive output piping through the orchestrator.
	if term := getenv("TERM"); term != "" {
		env.SetProc("TERM", term)
		env.Append(domain.CCFLAGS, "-fcolor-diagnostics")
	}

	if hostOS == "darwin" {
		for _, key := range []string{domain.CC, domain.CXX, domain.LINK, domain.AR, domain.AS, domain.RANLIB} {
			env.Set(key, "xcrun "+env.Get(key))
		}
	}

	if opts.Strict {
		env.Append(domain.CCFLAGS, "-Weverything")
		env.Append(domain.CCFLAGS, clangStrictSuppressions...)
	}

	return env
}
