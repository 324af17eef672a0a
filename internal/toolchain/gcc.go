// Package toolchain builds the compiler base environments that platform
// configurations layer their flags onto, and implements precompiled header
// integration for each compiler family.
package toolchain

import (
	"carbonengine.dev/carbide/internal/core/domain"
)

// NewGCCEnv creates a build environment that uses GCC. Platform
// configurations and the Clang environment both build on top of it.
func NewGCCEnv(opts *domain.Options) *domain.Env {
	env := domain.NewEnv()

	env.Set(domain.CC, "gcc")
	env.Set(domain.CXX, "g++")
	env.Set(domain.LINK, "g++")
	env.Set(domain.AR, "ar")
	env.Set(domain.AS, "as")
	env.Set(domain.RANLIB, "ranlib")

	env.Append(domain.ARFLAGS, "rc", "-S")
	env.Append(domain.CCFLAGS, "-ffast-math", "-fvisibility=hidden", "-Wall")
	env.Append(domain.CXXFLAGS, "-std=c++11")
	env.Append(domain.SHCCFLAGS, "$CCFLAGS", "-fPIC")

	env.Set(domain.LINKCOM, "$LINK -o $TARGET $LINKFLAGS $__RPATH $SOURCES $_LIBDIRFLAGS $_LIBFLAGS")
	env.Set(domain.SHLINKCOM, "$SHLINK -o $TARGET $SHLINKFLAGS $__RPATH $SOURCES $_LIBDIRFLAGS $_LIBFLAGS")
	env.Append(domain.SHLINKFLAGS, "$LINKFLAGS", "-shared")

	// Silence output from ar and ranlib caused by object files that have no
	// symbols.
	env.Set(domain.ARCOM, "$AR $ARFLAGS $TARGET $SOURCES > /dev/null 2>&1")
	env.Set(domain.RANLIBCOM, "$RANLIB $RANLIBFLAGS $TARGET > /dev/null 2>&1")

	// Compiled header command templates, see pch.go.
	env.Set(gchCom, "$CXX -o $TARGET -x c++-header $CCFLAGS $CXXFLAGS $_CCCOMCOM $SOURCE")
	env.Set(gchShCom, "$CXX -o $TARGET -x c++-header $CCFLAGS $CXXFLAGS $SHCCFLAGS $SHCXXFLAGS $_CCCOMCOM $SOURCE")

	if opts.Strict {
		env.Append(domain.CCFLAGS, "-pedantic-errors", "-Wextra", "-Wno-unused-parameter", "-Werror")
		env.Append(domain.LINKFLAGS, "-Werror")
	}

	if opts.IsDebug() {
		env.Append(domain.CCFLAGS, "-g", "-O0")
		env.Append(domain.CPPDEFINES, "DEBUG")
	} else {
		env.Append(domain.CCFLAGS, "-O3")
		env.Append(domain.CPPDEFINES, "NDEBUG")
	}

	return env
}
