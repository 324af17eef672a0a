package domain_test

import (
	"testing"

	"carbonengine.dev/carbide/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_ListOperations(t *testing.T) {
	env := domain.NewEnv()

	env.Append(domain.CCFLAGS, "-Wall", "-O2")
	env.Prepend(domain.CCFLAGS, "-pipe")
	assert.Equal(t, []string{"-pipe", "-Wall", "-O2"}, env.List(domain.CCFLAGS))

	require.NoError(t, env.Remove(domain.CCFLAGS, "-O2"))
	assert.Equal(t, []string{"-pipe", "-Wall"}, env.List(domain.CCFLAGS))

	env.Replace(domain.CCFLAGS, "-g")
	assert.Equal(t, []string{"-g"}, env.List(domain.CCFLAGS))

	assert.True(t, env.Contains(domain.CCFLAGS, "-g"))
	assert.False(t, env.Contains(domain.CCFLAGS, "-Wall"))
}

func TestEnv_RemoveMissingEntryIsError(t *testing.T) {
	env := domain.NewEnv()
	env.Append(domain.CCFLAGS, "-Wall")

	err := env.Remove(domain.CCFLAGS, "-Werror")
	require.ErrorIs(t, err, domain.ErrEnvEntryNotPresent)

	err = env.Remove(domain.LINKFLAGS, "-Wall")
	require.ErrorIs(t, err, domain.ErrEnvEntryNotPresent)
}

func TestEnv_CloneIsolation(t *testing.T) {
	env := domain.NewEnv()
	env.Set(domain.CC, "gcc")
	env.Append(domain.CCFLAGS, "-Wall")
	env.SetProc("PATH", "/usr/bin")

	clone := env.Clone()
	clone.Set(domain.CC, "clang")
	clone.Append(domain.CCFLAGS, "-Wextra")
	clone.SetProc("PATH", "/opt/bin")

	assert.Equal(t, "gcc", env.Get(domain.CC))
	assert.Equal(t, []string{"-Wall"}, env.List(domain.CCFLAGS))
	assert.Equal(t, "/usr/bin", env.Proc("PATH"))

	assert.Equal(t, "clang", clone.Get(domain.CC))
	assert.Equal(t, []string{"-Wall", "-Wextra"}, clone.List(domain.CCFLAGS))
}

func TestEnv_DumpIsDeterministic(t *testing.T) {
	build := func() *domain.Env {
		env := domain.NewEnv()
		env.Set(domain.CXX, "g++")
		env.Set(domain.CC, "gcc")
		env.Append(domain.CCFLAGS, "-ffast-math", "-Wall")
		env.Append(domain.CPPDEFINES, "NDEBUG")
		env.SetProc("TERM", "xterm")
		return env
	}

	first := build()
	second := build()

	assert.Equal(t, first.Dump(), second.Dump())
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	// Keys are sorted, lists keep insertion order, process vars come last.
	assert.Equal(t,
		"CC = gcc\nCCFLAGS = -ffast-math -Wall\nCPPDEFINES = NDEBUG\nCXX = g++\nENV.TERM=xterm\n",
		first.Dump())
}

func TestEnv_DumpScalarWinsOverList(t *testing.T) {
	env := domain.NewEnv()
	env.Set(domain.CC, "gcc")
	env.Append(domain.CC, "clang")

	assert.Equal(t, "CC = gcc\n", env.Dump())
}

func TestEnv_FingerprintChangesWithContents(t *testing.T) {
	env := domain.NewEnv()
	env.Append(domain.CCFLAGS, "-Wall")
	before := env.Fingerprint()

	env.Append(domain.CCFLAGS, "-Werror")
	assert.NotEqual(t, before, env.Fingerprint())
	assert.Len(t, env.Fingerprint(), 16)
}

func TestEnv_KeysSorted(t *testing.T) {
	env := domain.NewEnv()
	env.Set(domain.LINK, "g++")
	env.Append(domain.ARFLAGS, "rc")
	env.Set(domain.CC, "gcc")

	assert.Equal(t, []string{domain.ARFLAGS, domain.CC, domain.LINK}, env.Keys())
}
