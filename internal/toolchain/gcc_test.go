package toolchain_test

import (
	"testing"

	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/toolchain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewGCCEnv_Release(t *testing.T) {
	env := toolchain.NewGCCEnv(&domain.Options{BuildType: domain.Release})

	g := goldie.New(t)
	g.Assert(t, "gcc_release", []byte(env.Dump()))
}

func TestNewGCCEnv_Debug(t *testing.T) {
	env := toolchain.NewGCCEnv(&domain.Options{BuildType: domain.Debug})

	assert.True(t, env.Contains(domain.CCFLAGS, "-g"))
	assert.True(t, env.Contains(domain.CCFLAGS, "-O0"))
	assert.False(t, env.Contains(domain.CCFLAGS, "-O3"))
	assert.Equal(t, []string{"DEBUG"}, env.List(domain.CPPDEFINES))
}

// Strict builds only ever add flags on top of the non-strict configuration.
func TestNewGCCEnv_StrictIsSuperset(t *testing.T) {
	plain := toolchain.NewGCCEnv(&domain.Options{BuildType: domain.Release})
	strict := toolchain.NewGCCEnv(&domain.Options{BuildType: domain.Release, Strict: true})

	for _, flag := range plain.List(domain.CCFLAGS) {
		assert.True(t, strict.Contains(domain.CCFLAGS, flag), "missing %s", flag)
	}
	assert.True(t, strict.Contains(domain.CCFLAGS, "-Werror"))
	assert.True(t, strict.Contains(domain.CCFLAGS, "-pedantic-errors"))
	assert.True(t, strict.Contains(domain.LINKFLAGS, "-Werror"))
	assert.False(t, plain.Contains(domain.LINKFLAGS, "-Werror"))
}

func TestNewGCCEnv_SilencesArchiverOutput(t *testing.T) {
	env := toolchain.NewGCCEnv(&domain.Options{BuildType: domain.Release})

	assert.Contains(t, env.Get(domain.ARCOM), "> /dev/null 2>&1")
	assert.Contains(t, env.Get(domain.RANLIBCOM), "> /dev/null 2>&1")
}
