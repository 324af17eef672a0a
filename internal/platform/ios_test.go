package platform

import (
	"os"
	"path/filepath"
	"testing"

	"carbonengine.dev/carbide/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAppleSDK(t *testing.T, platformName, sdkName string) string {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, platformName+".platform", "Developer", "SDKs", sdkName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return root
}

func TestIOSConfigure(t *testing.T) {
	t.Parallel()

	host := Host{OS: "darwin", Arch: "arm64", Getenv: func(string) string { return "" }}

	t.Run("device SDK", func(t *testing.T) {
		t.Parallel()

		config := NewIOS(host, t.TempDir())
		config.developerRoot = fakeAppleSDK(t, "iPhoneOS", "iPhoneOS.sdk")

		desc, err := config.Configure(&domain.Options{BuildType: domain.Release})
		require.NoError(t, err)

		assert.Equal(t, "iOS", desc.Platform)
		assert.Equal(t, "ARM64", desc.Architecture)
		assert.True(t, desc.EngineStaticOnly)

		ccflags := desc.Env.List(domain.CCFLAGS)
		assert.Contains(t, ccflags, "-mios-version-min=12.0")
		assert.Contains(t, ccflags, "-fembed-bitcode")
		assert.Contains(t, ccflags, "-fobjc-legacy-dispatch")
		assert.Equal(t, "xcrun libtool", desc.Env.Get(domain.AR))
		assert.Equal(t, []string{"-static"}, desc.Env.List(domain.ARFLAGS))

		// Assembly uses only the target flags, not the inherited C flags.
		asflags := desc.Env.List(domain.ASFLAGS)
		assert.Equal(t, "-arch", asflags[0])
		assert.NotContains(t, asflags, "-ffast-math")
	})

	t.Run("missing SDK", func(t *testing.T) {
		t.Parallel()

		config := NewIOS(host, t.TempDir())
		config.developerRoot = t.TempDir()

		_, err := config.Configure(&domain.Options{BuildType: domain.Release})
		require.ErrorIs(t, err, domain.ErrMissingSDK)
	})
}

func TestIOSConfigureConsumer(t *testing.T) {
	t.Parallel()

	host := Host{OS: "darwin", Arch: "arm64", Getenv: func(string) string { return "" }}

	t.Run("installed SDK", func(t *testing.T) {
		t.Parallel()

		config := NewIOS(host, t.TempDir())
		config.developerRoot = fakeAppleSDK(t, "iPhoneOS", "iPhoneOS.sdk")

		desc, err := config.Configure(&domain.Options{BuildType: domain.Debug})
		require.NoError(t, err)

		env := desc.Env.Clone()
		require.NoError(t, config.ConfigureConsumer(env))

		libs := env.List(domain.LIBS)
		assert.Contains(t, libs, "CarbonEngineiOSDebug")
		assert.NotContains(t, libs, "AngelScript")
		assert.Equal(t, iOSFrameworks, env.List(domain.FRAMEWORKS))
	})

	t.Run("carbonroot checkout", func(t *testing.T) {
		t.Parallel()

		carbonroot := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(carbonroot, "Dependencies"), 0o755))

		config := NewIOS(host, t.TempDir())
		config.developerRoot = fakeAppleSDK(t, "iPhoneOS", "iPhoneOS.sdk")

		desc, err := config.Configure(&domain.Options{BuildType: domain.Release, CarbonRoot: carbonroot})
		require.NoError(t, err)

		env := desc.Env.Clone()
		require.NoError(t, config.ConfigureConsumer(env))

		libs := env.List(domain.LIBS)
		assert.Contains(t, libs, domain.EngineLibraryName("iOS", "ARM64", domain.Release))
		assert.Contains(t, libs, "Vorbis")
		// iOS dependency library paths carry no architecture component.
		assert.Contains(t, env.List(domain.LIBPATH),
			filepath.Join(carbonroot, "Dependencies", "Vorbis-1.3.5", "Library", "iOS"))
	})
}

func TestIOSSimulatorConfigure(t *testing.T) {
	t.Parallel()

	host := Host{OS: "darwin", Arch: "arm64", Getenv: func(string) string { return "" }}

	t.Run("defaults to ARM64", func(t *testing.T) {
		t.Parallel()

		config := NewIOSSimulator(host, t.TempDir())
		config.developerRoot = fakeAppleSDK(t, "iPhoneSimulator", "iPhoneSimulator.sdk")

		desc, err := config.Configure(&domain.Options{BuildType: domain.Release})
		require.NoError(t, err)

		assert.Equal(t, "iOSSimulator", desc.Platform)
		assert.Equal(t, "ARM64", desc.Architecture)
		assert.Contains(t, desc.Env.List(domain.CCFLAGS), "-mios-simulator-version-min=12.0")
		assert.Contains(t, desc.Env.List(domain.CCFLAGS), "-fobjc-abi-version=2")
	})

	t.Run("x64", func(t *testing.T) {
		t.Parallel()

		config := NewIOSSimulator(host, t.TempDir())
		config.developerRoot = fakeAppleSDK(t, "iPhoneSimulator", "iPhoneSimulator.sdk")

		desc, err := config.Configure(&domain.Options{BuildType: domain.Release, Architecture: "x64"})
		require.NoError(t, err)

		assert.Equal(t, "x64", desc.Architecture)
		assert.Contains(t, desc.Env.List(domain.CCFLAGS), "x86_64")
	})

	t.Run("invalid architecture", func(t *testing.T) {
		t.Parallel()

		config := NewIOSSimulator(host, t.TempDir())
		config.developerRoot = fakeAppleSDK(t, "iPhoneSimulator", "iPhoneSimulator.sdk")

		_, err := config.Configure(&domain.Options{BuildType: domain.Release, Architecture: "ARMv7"})
		require.ErrorIs(t, err, domain.ErrInvalidArchitecture)
	})
}
