// Package domain contains the core types for the build configuration pass:
// command-line options, the build environment bag, dependency tables, output
// layout naming and the artifact graph handed to the build orchestrator.
package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// BuildType selects between a Debug and a Release build.
type BuildType string

const (
	// Debug builds include additional debugging code and symbols and do not
	// optimize the resulting executables.
	Debug BuildType = "Debug"

	// Release is the default build type.
	Release BuildType = "Release"
)

// NDKPathEnv is the environment variable holding the default Android NDK root.
const NDKPathEnv = "CARBON_ANDROID_NDK_PATH"

// SDKPathEnv is the environment variable holding the installed engine SDK root
// on Windows.
const SDKPathEnv = "CARBON_SDK_PATH"

// InstallTarget is the pseudo-target that requests installation of build
// results into the install directory.
const InstallTarget = "install"

// Options holds the parsed global build options. It is threaded explicitly
// through the configuration layers; there is no ambient shared state.
type Options struct {
	BuildType      BuildType
	Strict         bool
	Platform       string
	PlatformScript string
	CarbonRoot     string
	Architecture   string
	NDK            string
	GCCVersion     string
	Slim           bool

	// Install is set when the install pseudo-target appears on the command line.
	Install bool

	// Static is nil when static= was not supplied; platforms that only support
	// static linking ignore it.
	Static *bool
}

// IsDebug reports whether this is a Debug build.
func (o *Options) IsDebug() bool { return o.BuildType == Debug }

// IsRelease reports whether this is a Release build.
func (o *Options) IsRelease() bool { return o.BuildType == Release }

// StaticOr returns the static= option value, or def when it was not supplied.
func (o *Options) StaticOr(def bool) bool {
	if o.Static == nil {
		return def
	}
	return *o.Static
}

// OptionHelp describes one recognized key=value build option for help output.
type OptionHelp struct {
	Key         string
	Default     string
	Description string
}

// OptionHelpText lists every recognized build option in declaration order.
var OptionHelpText = []OptionHelp{
	{"type", "Release", "Sets the build type, must be Debug or Release. Debug builds include " +
		"additional debugging code, symbols and do not optimize the resulting executables."},
	{"strict", "false", "(true/false) Whether a strict build should be done, this maximizes warnings " +
		"and strictness checking and also treats build warnings as errors."},
	{"platform", "", "Overrides the default build platform, when this is set the build system will " +
		"search for an appropriate configuration that supports building for the requested platform. " +
		"This overrides the automatic platform detection."},
	{"platformscript", "", "Specifies the platform configuration to use for this build, this will be " +
		"used instead of doing a search for an appropriate platform. This overrides the platform= argument."},
	{"carbonroot", "", "When building client applications this specifies the path to the Carbon " +
		"repository to build against instead of building against the installed SDK. Note that this does " +
		"not cause the specified Carbon repository itself to be rebuilt."},
	{"static", "true", "(true/false) Whether to build/use the engine as a static library instead of a " +
		"dynamic library. Some platforms do not support building as a dynamic library."},
	{"architecture", "", "Sets the target build architecture, the allowed values depend on the " +
		"selected platform."},
	{"ndk", "", "Specifies the path to the Android NDK that should be used to do an Android build. " +
		"The default is to read the Android NDK path from the " + NDKPathEnv + " environment variable."},
	{"gccversion", "", "Sets the specific GCC version to use when building, this is suffixed onto 'g++-'."},
	{"slim", "false", "(true/false) Reduce code size as much as possible, currently this only affects " +
		"debug builds."},
}

// FormatOptionHelp renders the option table for CLI help output.
func FormatOptionHelp() string {
	var b strings.Builder
	for _, opt := range OptionHelpText {
		fmt.Fprintf(&b, "  %s: %s", opt.Key, opt.Description)
		if opt.Default != "" {
			fmt.Fprintf(&b, "\n      default: %s", opt.Default)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ParseArguments splits the command line arguments into build options
// and build targets. Arguments of the form key=value are options; anything
// else is a target name. The install pseudo-target is folded into the options.
func ParseArguments(args []string, getenv func(string) string) (*Options, []string, error) {
	opts := &Options{BuildType: Release}

	var targets []string
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			if arg == InstallTarget {
				opts.Install = true
			}
			targets = append(targets, arg)
			continue
		}

		if err := opts.apply(key, value); err != nil {
			return nil, nil, err
		}
	}

	if opts.NDK == "" {
		opts.NDK = getenv(NDKPathEnv)
	}

	return opts, targets, nil
}

func (o *Options) apply(key, value string) error {
	switch key {
	case "type":
		if value != string(Debug) && value != string(Release) {
			return zerr.With(ErrInvalidBuildType, "type", value)
		}
		o.BuildType = BuildType(value)
	case "strict":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		o.Strict = b
	case "platform":
		o.Platform = value
	case "platformscript":
		o.PlatformScript = value
	case "carbonroot":
		o.CarbonRoot = value
	case "static":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		o.Static = &b
	case "architecture":
		o.Architecture = value
	case "ndk":
		o.NDK = value
	case "gccversion":
		o.GCCVersion = value
	case "slim":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		o.Slim = b
	default:
		return zerr.With(ErrUnknownOption, "option", key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, zerr.With(zerr.With(ErrInvalidOptionValue, "option", key), "value", value)
}
