// Package app implements the application layer for carbide.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"carbonengine.dev/carbide/internal/adapters/fs"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/core/ports"
	"carbonengine.dev/carbide/internal/platform"
	"carbonengine.dev/carbide/internal/toolchain"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// App drives a build configuration pass: it resolves the target platform,
// loads the project manifest, assembles the artifact graph for the requested
// targets and emits the build plan.
type App struct {
	host    platform.Host
	root    string
	loader  ports.ConfigLoader
	scanner ports.IncludeScanner
	logger  ports.Logger
	plan    ports.PlanWriter
}

// New creates a new App instance rooted at the given project directory.
func New(
	host platform.Host,
	root string,
	loader ports.ConfigLoader,
	scanner ports.IncludeScanner,
	log ports.Logger,
	plan ports.PlanWriter,
) *App {
	return &App{
		host:    host,
		root:    root,
		loader:  loader,
		scanner: scanner,
		logger:  log,
		plan:    plan,
	}
}

// Configure resolves the platform for the given options and runs its
// configuration pass.
func (a *App) Configure(opts *domain.Options) (platform.Config, *domain.PlatformDescriptor, error) {
	config, err := platform.Select(a.host, a.root, opts)
	if err != nil {
		return nil, nil, err
	}

	desc, err := config.Configure(opts)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to configure platform "+config.Name())
	}

	a.logger.Info(fmt.Sprintf("configured %s/%s/%s %s build",
		desc.Platform, desc.Architecture, desc.Compiler, desc.BuildType))

	return config, desc, nil
}

// Build runs the full configuration pass for the requested targets and writes
// the resulting plan to out. An empty target list builds the engine (when the
// manifest defines one) and every program.
func (a *App) Build(ctx context.Context, targets []string, opts *domain.Options, out io.Writer) error {
	config, desc, err := a.Configure(opts)
	if err != nil {
		return err
	}

	project, err := a.loader.Load(a.root)
	if err != nil {
		return zerr.Wrap(err, "failed to load the project manifest")
	}

	targets, err = resolveTargets(project, targets)
	if err != nil {
		return err
	}

	graph := domain.NewGraph()
	targetEnvs := make([]domain.TargetEnv, 0, len(targets))

	for _, target := range targets {
		if target == domain.EngineTarget {
			targetEnv, err := a.buildEngine(ctx, graph, config, desc, project.Engine, opts)
			if err != nil {
				return zerr.Wrap(err, "failed to configure the engine build")
			}
			targetEnvs = append(targetEnvs, targetEnv)
			continue
		}

		program, err := project.Program(target)
		if err != nil {
			return err
		}
		targetEnv, err := a.buildProgram(ctx, graph, config, desc, program, opts)
		if err != nil {
			return zerr.Wrap(err, "failed to configure program "+program.Name)
		}
		targetEnvs = append(targetEnvs, targetEnv)
	}

	if err := graph.Validate(); err != nil {
		return err
	}

	return a.plan.Write(out, desc, graph, targetEnvs)
}

// resolveTargets expands an empty target list to everything the manifest
// defines, in a stable order with the engine first. The install pseudo-target
// is already folded into the options and selects no artifact of its own.
func resolveTargets(project *domain.Project, targets []string) ([]string, error) {
	targets = slices.DeleteFunc(slices.Clone(targets), func(t string) bool {
		return t == domain.InstallTarget
	})

	if len(targets) > 0 {
		for _, target := range targets {
			if target == domain.EngineTarget && project.Engine == nil {
				return nil, zerr.With(domain.ErrUnknownTarget, "target", target)
			}
		}
		return targets, nil
	}

	if project.Engine != nil {
		targets = append(targets, domain.EngineTarget)
	}
	names := make([]string, 0, len(project.Programs))
	for name := range project.Programs {
		names = append(names, name)
	}
	slices.Sort(names)
	targets = append(targets, names...)

	if len(targets) == 0 {
		return nil, zerr.With(domain.ErrInvalidManifest,
			"reason", "the manifest defines neither an engine nor any programs")
	}
	return targets, nil
}

func (a *App) buildEngine(
	ctx context.Context,
	graph *domain.Graph,
	config platform.Config,
	desc *domain.PlatformDescriptor,
	engine *domain.EngineSpec,
	opts *domain.Options,
) (domain.TargetEnv, error) {
	if engine == nil {
		return domain.TargetEnv{}, zerr.With(domain.ErrInvalidManifest,
			"reason", "the manifest does not define an engine build")
	}

	static, err := desc.IsEngineStatic(opts)
	if err != nil {
		return domain.TargetEnv{}, err
	}

	env := desc.Env.Clone()
	env.Append(domain.CPPDEFINES, "CARBON_EXPORTS")
	env.Append(domain.CPPDEFINES, domain.DependencyDefines(engine.Dependencies...)...)

	if len(engine.Dependencies) > 0 {
		depsDir, err := fs.DependenciesDir(a.root, opts.CarbonRoot)
		if err != nil {
			return domain.TargetEnv{}, err
		}
		includePaths, err := domain.DependencyIncludePaths(depsDir, engine.Dependencies...)
		if err != nil {
			return domain.TargetEnv{}, err
		}
		env.Append(domain.CPPPATH, includePaths...)
	}

	sources, err := fs.SourceFiles(engine.Sources, engine.Recursive, desc.Platform)
	if err != nil {
		return domain.TargetEnv{}, err
	}

	library := desc.EngineLibraryName()
	var libFile string
	if static {
		libFile = domain.StaticLibraryFile(desc.Platform, library)
	} else {
		libFile = domain.SharedLibraryFile(desc.Platform, library)
	}
	libArtifact := filepath.Join(desc.VariantDir(), libFile)

	units, pchArtifact, err := a.addObjects(ctx, graph, env, desc, sources,
		engine.PrecompiledHeader, toolchain.PCHOptions{SharedLibrary: !static})
	if err != nil {
		return domain.TargetEnv{}, err
	}

	kind := domain.KindSharedLibrary
	if static {
		kind = domain.KindStaticLibrary
	}
	if err := graph.AddArtifact(&domain.Artifact{
		Name:         libArtifact,
		Kind:         kind,
		Dependencies: objectNames(units),
	}); err != nil {
		return domain.TargetEnv{}, err
	}

	if !static {
		if err := config.ConfigureStaticLink(env); err != nil {
			return domain.TargetEnv{}, err
		}
	}

	artifacts := make([]string, 0, len(units)+3)
	if pchArtifact != "" {
		artifacts = append(artifacts, pchArtifact)
	}
	artifacts = append(artifacts, objectNames(units)...)
	artifacts = append(artifacts, libArtifact)

	if opts.Install {
		installed := filepath.Join(desc.InstallDir(), libFile)
		if err := graph.AddArtifact(&domain.Artifact{
			Name:         installed,
			Kind:         domain.KindInstall,
			Sources:      []string{libArtifact},
			Dependencies: []string{libArtifact},
		}); err != nil {
			return domain.TargetEnv{}, err
		}
		artifacts = append(artifacts, installed)
	}

	return domain.TargetEnv{
		Target:    domain.EngineTarget,
		Env:       env,
		Artifacts: artifacts,
	}, nil
}

func (a *App) buildProgram(
	ctx context.Context,
	graph *domain.Graph,
	config platform.Config,
	desc *domain.PlatformDescriptor,
	program domain.Program,
	opts *domain.Options,
) (domain.TargetEnv, error) {
	env := desc.Env.Clone()
	if err := config.ConfigureConsumer(env); err != nil {
		return domain.TargetEnv{}, err
	}

	sources, err := fs.SourceFiles(program.Sources, program.Recursive, desc.Platform)
	if err != nil {
		return domain.TargetEnv{}, err
	}

	units, pchArtifact, err := a.addObjects(ctx, graph, env, desc, sources,
		program.PrecompiledHeader, toolchain.PCHOptions{})
	if err != nil {
		return domain.TargetEnv{}, err
	}

	programArtifact := filepath.Join(desc.VariantDir(),
		domain.ProgramFile(desc.Platform, program.Name))
	if err := graph.AddArtifact(&domain.Artifact{
		Name:         programArtifact,
		Kind:         domain.KindProgram,
		Dependencies: objectNames(units),
	}); err != nil {
		return domain.TargetEnv{}, err
	}

	artifacts := make([]string, 0, len(units)+3)
	if pchArtifact != "" {
		artifacts = append(artifacts, pchArtifact)
	}
	artifacts = append(artifacts, objectNames(units)...)
	artifacts = append(artifacts, programArtifact)

	if opts.Install {
		installed := filepath.Join(desc.InstallDir(),
			domain.ProgramFile(desc.Platform, program.Name))
		if err := graph.AddArtifact(&domain.Artifact{
			Name:         installed,
			Kind:         domain.KindInstall,
			Sources:      []string{programArtifact},
			Dependencies: []string{programArtifact},
		}); err != nil {
			return domain.TargetEnv{}, err
		}
		artifacts = append(artifacts, installed)
	}

	return domain.TargetEnv{
		Target:    program.Name,
		Env:       env,
		Artifacts: artifacts,
	}, nil
}

// addObjects registers one object artifact per source file, sets up the
// precompiled header when one is configured, and attaches the header
// dependency edges to the units that transitively include it. It returns the
// translation units and the precompiled header artifact name, empty when no
// header is configured.
func (a *App) addObjects(
	ctx context.Context,
	graph *domain.Graph,
	env *domain.Env,
	desc *domain.PlatformDescriptor,
	sources []string,
	header string,
	pchOpts toolchain.PCHOptions,
) ([]toolchain.TranslationUnit, string, error) {
	var pchArtifact string
	if header != "" {
		var err error
		pchArtifact, err = toolchain.UsePrecompiledHeader(
			graph, env, desc.Compiler, desc.VariantDir(), header, pchOpts)
		if err != nil {
			return nil, "", err
		}
	}

	units := make([]toolchain.TranslationUnit, 0, len(sources))
	for _, source := range sources {
		object := a.objectName(desc, source)
		if err := graph.AddArtifact(&domain.Artifact{
			Name:    object,
			Kind:    domain.KindObject,
			Sources: []string{source},
		}); err != nil {
			return nil, "", err
		}
		units = append(units, toolchain.TranslationUnit{Object: object, Source: source})
	}

	if header != "" {
		err := toolchain.AttachPCHDependencies(ctx, graph, a.scanner,
			header, pchArtifact, units, env.List(domain.CPPPATH))
		if err != nil {
			return nil, "", err
		}
	}

	return units, pchArtifact, nil
}

// objectName maps a source file to its object artifact path under the variant
// directory, mirroring the source tree for sources inside the project root.
func (a *App) objectName(desc *domain.PlatformDescriptor, source string) string {
	rel, err := filepath.Rel(a.root, source)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Out-of-tree source: key the object by a hash of the full path.
		rel = fmt.Sprintf("%016x_%s", xxhash.Sum64String(source), filepath.Base(source))
	}

	ext := filepath.Ext(rel)
	base := strings.TrimSuffix(rel, ext)
	return filepath.Join(desc.VariantDir(), domain.ObjectFile(desc.Compiler, base))
}

func objectNames(units []toolchain.TranslationUnit) []string {
	names := make([]string, len(units))
	for i, unit := range units {
		names[i] = unit.Object
	}
	return names
}
