// Package platform implements the per-platform build configurations. Each
// configuration validates its SDK/toolchain paths, layers platform flags over
// a compiler base environment, and knows how to set up a consumer build
// against the engine.
package platform

import (
	"os"
	"runtime"
	"strings"

	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/core/ports"
	"go.trai.ch/zerr"
)

// Host describes the build host: its OS and architecture identifiers (as
// reported by the Go runtime) and access to its process environment.
type Host struct {
	OS     string
	Arch   string
	Getenv func(string) string
}

// NewHost returns the actual build host.
func NewHost() Host {
	return Host{OS: runtime.GOOS, Arch: runtime.GOARCH, Getenv: os.Getenv}
}

// Config couples platform configuration with engine link setup. Configure
// must succeed before the linker methods are used.
type Config interface {
	ports.PlatformConfig
	ports.EngineLinker
}

// All returns every supported platform configuration for the given host and
// project root.
func All(host Host, root string) []Config {
	return []Config{
		NewAndroid(host, root),
		NewIOS(host, root),
		NewIOSSimulator(host, root),
		NewLinux(host, root),
		NewMacOS(host, root),
		NewWindows(host, root),
	}
}

// hostDefaults maps a host OS identifier to the platform built by default on
// that host.
var hostDefaults = map[string]string{
	"windows": "Windows",
	"darwin":  "macOS",
	"linux":   "Linux",
}

// Select resolves exactly one platform configuration: the platformscript=
// override wins, then the platform= name, then host-OS detection. Name
// matching is case-insensitive. An unresolvable platform is fatal.
func Select(host Host, root string, opts *domain.Options) (Config, error) {
	name := opts.PlatformScript
	if name == "" {
		name = opts.Platform
	}
	if name == "" {
		name = hostDefaults[host.OS]
	}
	if name == "" {
		return nil, zerr.With(domain.ErrUnknownPlatform, "host", host.OS)
	}

	for _, config := range All(host, root) {
		if strings.EqualFold(config.Name(), name) {
			return config, nil
		}
	}
	return nil, zerr.With(domain.ErrUnknownPlatform, "platform", name)
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// exists reports whether path exists.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
