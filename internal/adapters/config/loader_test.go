package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"carbonengine.dev/carbide/internal/adapters/config"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(content), 0o644))
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("full manifest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, `
version: "1"
engine:
  sources:
    - Source
  precompiledHeader: Source/CarbonEngine/Common.h
  dependencies:
    - FreeType
    - ZLib
programs:
  Viewer:
    sources:
      - Viewer/Source
    recursive: false
`)

		project, err := newLoader(t).Load(dir)
		require.NoError(t, err)

		require.NotNil(t, project.Engine)
		assert.Equal(t, []string{filepath.Join(dir, "Source")}, project.Engine.Sources)
		assert.True(t, project.Engine.Recursive)
		assert.Equal(t, "Source/CarbonEngine/Common.h", project.Engine.PrecompiledHeader)
		assert.Equal(t, []string{"FreeType", "ZLib"}, project.Engine.Dependencies)

		require.Contains(t, project.Programs, "Viewer")
		viewer := project.Programs["Viewer"]
		assert.Equal(t, []string{filepath.Join(dir, "Viewer", "Source")}, viewer.Sources)
		assert.False(t, viewer.Recursive)
	})

	t.Run("manifest found in a parent directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "programs:\n  Game:\n    sources: [Source]\n")
		nested := filepath.Join(dir, "Source", "Game")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		project, err := newLoader(t).Load(nested)
		require.NoError(t, err)
		assert.Contains(t, project.Programs, "Game")
	})

	t.Run("absolute source paths are kept", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sources := t.TempDir()
		writeManifest(t, dir, "programs:\n  Game:\n    sources: [\""+sources+"\"]\n")

		project, err := newLoader(t).Load(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{sources}, project.Programs["Game"].Sources)
	})

	t.Run("no manifest", func(t *testing.T) {
		t.Parallel()

		_, err := newLoader(t).Load(t.TempDir())
		require.ErrorIs(t, err, domain.ErrManifestNotFound)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "engine: [\n")

		_, err := newLoader(t).Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
	})

	t.Run("engine without sources", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "engine:\n  precompiledHeader: Common.h\n")

		_, err := newLoader(t).Load(dir)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
	})

	t.Run("unknown engine dependency", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "engine:\n  sources: [Source]\n  dependencies: [Qt]\n")

		_, err := newLoader(t).Load(dir)
		require.ErrorIs(t, err, domain.ErrUnknownDependency)
	})

	t.Run("program without sources", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "programs:\n  Game: {}\n")

		_, err := newLoader(t).Load(dir)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
	})

	t.Run("reserved program name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "programs:\n  install:\n    sources: [Source]\n")

		_, err := newLoader(t).Load(dir)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
	})

	t.Run("invalid program name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "programs:\n  \"My Game\":\n    sources: [Source]\n")

		_, err := newLoader(t).Load(dir)
		require.ErrorIs(t, err, domain.ErrInvalidManifest)
	})
}
