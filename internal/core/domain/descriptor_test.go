package domain_test

import (
	"path/filepath"
	"testing"

	"carbonengine.dev/carbide/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestPlatformDescriptor_Paths(t *testing.T) {
	desc := &domain.PlatformDescriptor{
		Platform:     "Windows",
		Architecture: "x64",
		Compiler:     "VisualStudio2022",
		BuildType:    domain.Debug,
	}

	prefix := filepath.Join("Windows", "x64", "VisualStudio2022", "Debug")
	assert.Equal(t, prefix, desc.OutputPrefix())
	assert.Equal(t, filepath.Join(".carbide", prefix), desc.VariantDir())
	assert.Equal(t, filepath.Join("Build", prefix), desc.InstallDir())
	assert.Equal(t, "CarbonEngineDebug64", desc.EngineLibraryName())
	assert.True(t, desc.Is64Bit())
}

func TestPlatformDescriptor_IsEngineStatic(t *testing.T) {
	tests := []struct {
		name    string
		desc    domain.PlatformDescriptor
		opts    domain.Options
		want    bool
		wantErr error
	}{
		{
			name: "static by default",
			desc: domain.PlatformDescriptor{Platform: "Windows"},
			want: true,
		},
		{
			name: "explicit static=false",
			desc: domain.PlatformDescriptor{Platform: "Windows"},
			opts: domain.Options{Static: boolPtr(false)},
			want: false,
		},
		{
			name: "static-only platform overrides static=false",
			desc: domain.PlatformDescriptor{Platform: "iOS", EngineStaticOnly: true},
			opts: domain.Options{Static: boolPtr(false)},
			want: true,
		},
		{
			name: "linux install forces dynamic",
			desc: domain.PlatformDescriptor{Platform: "Linux"},
			opts: domain.Options{Install: true},
			want: false,
		},
		{
			name: "macos install forces dynamic",
			desc: domain.PlatformDescriptor{Platform: "macOS"},
			opts: domain.Options{Install: true},
			want: false,
		},
		{
			name:    "install with explicit static=true is an error",
			desc:    domain.PlatformDescriptor{Platform: "Linux"},
			opts:    domain.Options{Install: true, Static: boolPtr(true)},
			wantErr: domain.ErrInstallWithStatic,
		},
		{
			name: "windows install keeps the static default",
			desc: domain.PlatformDescriptor{Platform: "Windows"},
			opts: domain.Options{Install: true},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.desc.IsEngineStatic(&tt.opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
