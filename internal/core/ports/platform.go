// Package ports defines the interfaces between the configuration layers.
package ports

import "carbonengine.dev/carbide/internal/core/domain"

// PlatformConfig produces a platform descriptor for a build invocation. A
// configuration resolves and validates its SDK/toolchain paths, maps the
// symbolic architecture name to concrete toolchain settings, and layers the
// platform flags over a compiler base environment. A missing SDK path or an
// invalid architecture is an error, never a degraded configuration.
type PlatformConfig interface {
	// Name returns the platform name, e.g. "Android" or "iOSSimulator".
	Name() string

	// Configure builds the platform descriptor for the given options.
	Configure(opts *domain.Options) (*domain.PlatformDescriptor, error)
}

// EngineLinker configures a build environment to link against the engine.
// Every platform configuration implements it alongside PlatformConfig;
// Configure must have succeeded before either method is called.
type EngineLinker interface {
	// ConfigureStaticLink wires every third-party dependency's library paths
	// and the platform's system libraries/frameworks into env so the engine
	// can be linked in as a static library.
	ConfigureStaticLink(env *domain.Env) error

	// ConfigureConsumer prepares env for building a program against the
	// engine, from the carbonroot source checkout when one was supplied and
	// otherwise from the installed SDK. Static linking pulls in
	// ConfigureStaticLink.
	ConfigureConsumer(env *domain.Env) error
}
