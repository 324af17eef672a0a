package toolchain

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"carbonengine.dev/carbide/internal/adapters/scan"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Compiled header command template variables for the GCC family.
const (
	gchCom   = "GCHCOM"
	gchShCom = "GCHSHCOM"
)

// PCHOptions configures precompiled header creation.
type PCHOptions struct {
	// HeaderRoot is the include root prepended to CPPPATH so the header is
	// found by the same name it is compiled under. Defaults to ".".
	HeaderRoot string

	// SharedLibrary compiles the header with shared-object flags.
	SharedLibrary bool

	// IncludeText is the #include text that terminates precompiled header use
	// under Visual Studio. Defaults to the header name.
	IncludeText string

	// HeaderSourceFile is the source file Visual Studio compiles to produce
	// the precompiled header. Defaults to the header with a .cpp extension.
	HeaderSourceFile string
}

// UsePrecompiledHeader registers the compiled form of header as a build
// artifact and augments env so subsequent compilations reference it. The
// mechanism depends on the compiler family: GCC finds the .gch next to the
// header through CPPPATH, Clang is passed -include-pch explicitly, and Visual
// Studio compiles a source file against PCH/PCHSTOP variables. The artifact
// name is returned so dependency edges can be attached.
func UsePrecompiledHeader(
	graph *domain.Graph,
	env *domain.Env,
	compiler string,
	variantDir string,
	header string,
	opts PCHOptions,
) (string, error) {
	if strings.HasPrefix(compiler, "VisualStudio") {
		return useMSVCPrecompiledHeader(graph, env, variantDir, header, opts)
	}

	artifact := filepath.Join(variantDir, filepath.Base(header)+".gch")
	if err := graph.AddArtifact(&domain.Artifact{
		Name:    artifact,
		Kind:    domain.KindPrecompiledHeader,
		Sources: []string{header},
	}); err != nil {
		return "", err
	}

	env.Set(domain.GCH, artifact)
	if opts.SharedLibrary {
		env.Set(gchCom, env.Get(gchShCom))
	}

	if compiler == "Clang" {
		env.Append(domain.CCFLAGS, "-Xclang", "-include-pch", "-Xclang", artifact)
		return artifact, nil
	}

	headerRoot := opts.HeaderRoot
	if headerRoot == "" {
		headerRoot = "."
	}
	env.Prepend(domain.CPPPATH, headerRoot)
	return artifact, nil
}

func useMSVCPrecompiledHeader(
	graph *domain.Graph,
	env *domain.Env,
	variantDir string,
	header string,
	opts PCHOptions,
) (string, error) {
	headerSource := opts.HeaderSourceFile
	if headerSource == "" {
		headerSource = strings.TrimSuffix(header, filepath.Ext(header)) + ".cpp"
	}

	includeText := opts.IncludeText
	if includeText == "" {
		includeText = header
	}

	base := filepath.Base(header)
	artifact := filepath.Join(variantDir, strings.TrimSuffix(base, filepath.Ext(base))+".pch")
	if err := graph.AddArtifact(&domain.Artifact{
		Name:    artifact,
		Kind:    domain.KindPrecompiledHeader,
		Sources: []string{headerSource},
	}); err != nil {
		return "", err
	}

	env.Set(domain.PCH, artifact)
	env.Set(domain.PCHSTOP, includeText)
	env.Set("PCHPDBFLAGS", "")
	return artifact, nil
}

// TranslationUnit pairs a source file with the object artifact compiled from
// it.
type TranslationUnit struct {
	Object string
	Source string
}

// AttachPCHDependencies adds a dependency edge from each translation unit
// whose transitive include closure contains the precompiled header's source
// file to the compiled artifact, guaranteeing the artifact is rebuilt before
// any dependent unit. Units that do not include the header receive no edge.
//
// Closure scans run under a bounded errgroup; the scanner memoizes parsed
// files so shared headers are read once.
func AttachPCHDependencies(
	ctx context.Context,
	graph *domain.Graph,
	scanner ports.IncludeScanner,
	header string,
	artifact string,
	units []TranslationUnit,
	searchPaths []string,
) error {
	header = filepath.Clean(header)

	var mu sync.Mutex
	var dependents []string

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for _, unit := range units {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			closure, err := scan.TransitiveIncludes(scanner, []string{unit.Source}, searchPaths)
			if err != nil {
				return err
			}

			if slices.Contains(closure, header) {
				mu.Lock()
				dependents = append(dependents, unit.Object)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	slices.Sort(dependents)
	for _, object := range dependents {
		if err := graph.AddDependency(object, artifact); err != nil {
			return err
		}
	}
	return nil
}
