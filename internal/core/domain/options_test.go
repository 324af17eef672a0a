package domain_test

import (
	"testing"

	"carbonengine.dev/carbide/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     error
		wantTargets []string
		check       func(t *testing.T, opts *domain.Options)
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, opts *domain.Options) {
				assert.Equal(t, domain.Release, opts.BuildType)
				assert.False(t, opts.Strict)
				assert.Nil(t, opts.Static)
				assert.True(t, opts.StaticOr(true))
				assert.False(t, opts.StaticOr(false))
			},
		},
		{
			name: "debug build type",
			args: []string{"type=Debug"},
			check: func(t *testing.T, opts *domain.Options) {
				assert.Equal(t, domain.Debug, opts.BuildType)
				assert.True(t, opts.IsDebug())
			},
		},
		{
			name:    "invalid build type",
			args:    []string{"type=Profile"},
			wantErr: domain.ErrInvalidBuildType,
		},
		{
			name:    "unknown option is fatal",
			args:    []string{"colour=blue"},
			wantErr: domain.ErrUnknownOption,
		},
		{
			name:    "boolean options only accept true or false",
			args:    []string{"strict=1"},
			wantErr: domain.ErrInvalidOptionValue,
		},
		{
			name: "static option",
			args: []string{"static=false"},
			check: func(t *testing.T, opts *domain.Options) {
				require.NotNil(t, opts.Static)
				assert.False(t, opts.StaticOr(true))
			},
		},
		{
			name:        "targets are separated from options",
			args:        []string{"type=Debug", "engine", "strict=true", "SampleBrowser"},
			wantTargets: []string{"engine", "SampleBrowser"},
			check: func(t *testing.T, opts *domain.Options) {
				assert.Equal(t, domain.Debug, opts.BuildType)
				assert.True(t, opts.Strict)
			},
		},
		{
			name:        "install pseudo-target sets the install option",
			args:        []string{"install"},
			wantTargets: []string{"install"},
			check: func(t *testing.T, opts *domain.Options) {
				assert.True(t, opts.Install)
			},
		},
		{
			name: "platform options",
			args: []string{"platform=Android", "architecture=ARM64", "ndk=/opt/ndk", "carbonroot=/src/carbon"},
			check: func(t *testing.T, opts *domain.Options) {
				assert.Equal(t, "Android", opts.Platform)
				assert.Equal(t, "ARM64", opts.Architecture)
				assert.Equal(t, "/opt/ndk", opts.NDK)
				assert.Equal(t, "/src/carbon", opts.CarbonRoot)
			},
		},
		{
			name: "slim and gccversion",
			args: []string{"slim=true", "gccversion=4.9"},
			check: func(t *testing.T, opts *domain.Options) {
				assert.True(t, opts.Slim)
				assert.Equal(t, "4.9", opts.GCCVersion)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, targets, err := domain.ParseArguments(tt.args, noEnv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTargets, targets)
			if tt.check != nil {
				tt.check(t, opts)
			}
		})
	}
}

func TestParseArguments_NDKDefaultsFromEnvironment(t *testing.T) {
	getenv := func(key string) string {
		if key == domain.NDKPathEnv {
			return "/opt/android-ndk"
		}
		return ""
	}

	opts, _, err := domain.ParseArguments(nil, getenv)
	require.NoError(t, err)
	assert.Equal(t, "/opt/android-ndk", opts.NDK)

	// An explicit ndk= wins over the environment.
	opts, _, err = domain.ParseArguments([]string{"ndk=/elsewhere"}, getenv)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", opts.NDK)
}

func TestFormatOptionHelp(t *testing.T) {
	help := domain.FormatOptionHelp()
	for _, opt := range domain.OptionHelpText {
		assert.Contains(t, help, "  "+opt.Key+": ")
	}
	assert.Contains(t, help, "default: Release")
}
