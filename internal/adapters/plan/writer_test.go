package plan_test

import (
	"bytes"
	"testing"

	"carbonengine.dev/carbide/internal/adapters/plan"
	"carbonengine.dev/carbide/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func testDescriptor() *domain.PlatformDescriptor {
	env := domain.NewEnv()
	env.Set(domain.CC, "gcc")
	env.Set(domain.CXX, "g++")
	env.Append(domain.CCFLAGS, "-Wall", "-O2")
	env.Append(domain.CPPDEFINES, "NDEBUG")

	return &domain.PlatformDescriptor{
		Platform:     "Linux",
		Architecture: "x86_64",
		Compiler:     "GCC",
		BuildType:    domain.Release,
		Env:          env,
	}
}

func TestWriterWrite(t *testing.T) {
	t.Parallel()

	desc := testDescriptor()

	graph := domain.NewGraph()
	object := ".carbide/Linux/x86_64/GCC/Release/Source/Main.o"
	library := ".carbide/Linux/x86_64/GCC/Release/libCarbonEngine.a"
	require.NoError(t, graph.AddArtifact(&domain.Artifact{
		Name:    object,
		Kind:    domain.KindObject,
		Sources: []string{"Source/Main.cpp"},
	}))
	require.NoError(t, graph.AddArtifact(&domain.Artifact{
		Name: library,
		Kind: domain.KindStaticLibrary,
	}))
	require.NoError(t, graph.AddDependency(library, object))
	require.NoError(t, graph.Validate())

	engineEnv := desc.Env.Clone()
	engineEnv.Append(domain.CPPDEFINES, "CARBON_EXPORTS")
	targets := []domain.TargetEnv{{
		Target:    "engine",
		Env:       engineEnv,
		Artifacts: []string{object, library},
	}}

	var buf bytes.Buffer
	require.NoError(t, plan.NewWriter().Write(&buf, desc, graph, targets))

	// The fingerprints hash whole environments; mask them so the golden
	// file stays readable.
	out := bytes.ReplaceAll(buf.Bytes(), []byte(desc.Env.Fingerprint()), []byte("FINGERPRINT"))
	out = bytes.ReplaceAll(out, []byte(engineEnv.Fingerprint()), []byte("ENGINE_FINGERPRINT"))

	g := goldie.New(t)
	g.Assert(t, "plan", out)
}

func TestWriterDeterministic(t *testing.T) {
	t.Parallel()

	write := func() []byte {
		desc := testDescriptor()
		graph := domain.NewGraph()
		for _, name := range []string{"b.o", "a.o", "c.o"} {
			require.NoError(t, graph.AddArtifact(&domain.Artifact{Name: name, Kind: domain.KindObject}))
		}
		require.NoError(t, graph.Validate())

		var buf bytes.Buffer
		require.NoError(t, plan.NewWriter().Write(&buf, desc, graph, nil))
		return buf.Bytes()
	}

	first := write()
	require.Equal(t, first, write())
	require.Contains(t, string(first), "- name: a.o\n")
}
