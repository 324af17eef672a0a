package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"carbonengine.dev/carbide/cmd/carbide/commands"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeApp records the calls the CLI makes into the application layer.
type fakeApp struct {
	configureOpts *domain.Options
	buildOpts     *domain.Options
	buildTargets  []string
	buildOutput   string
	err           error
}

func (f *fakeApp) Configure(opts *domain.Options) (platform.Config, *domain.PlatformDescriptor, error) {
	f.configureOpts = opts
	if f.err != nil {
		return nil, nil, f.err
	}

	env := domain.NewEnv()
	env.Set(domain.CC, "gcc")
	desc := &domain.PlatformDescriptor{
		Platform: "Linux", Architecture: "x86_64", Compiler: "GCC",
		BuildType: opts.BuildType, Env: env,
	}
	host := platform.Host{OS: "linux", Arch: "amd64", Getenv: func(string) string { return "" }}
	return platform.NewLinux(host, "."), desc, nil
}

func (f *fakeApp) Build(_ context.Context, targets []string, opts *domain.Options, out io.Writer) error {
	f.buildTargets = targets
	f.buildOpts = opts
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(out, f.buildOutput)
	return err
}

func run(t *testing.T, app commands.Application, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(app)
	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestBuildCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes the plan to stdout", func(t *testing.T) {
		t.Parallel()

		app := &fakeApp{buildOutput: "version: \"1\"\n"}
		out, err := run(t, app, "build", "type=Release", "Viewer")
		require.NoError(t, err)

		assert.Equal(t, "version: \"1\"\n", out)
		assert.Equal(t, []string{"Viewer"}, app.buildTargets)
		require.NotNil(t, app.buildOpts)
		assert.Equal(t, domain.Release, app.buildOpts.BuildType)
	})

	t.Run("writes the plan to a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plan.yaml")
		app := &fakeApp{buildOutput: "version: \"1\"\n"}
		out, err := run(t, app, "build", "-o", path)
		require.NoError(t, err)

		assert.Empty(t, out)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "version: \"1\"\n", string(data))
	})

	t.Run("rejects invalid options", func(t *testing.T) {
		t.Parallel()

		_, err := run(t, &fakeApp{}, "build", "type=fastest")
		require.Error(t, err)
	})

	t.Run("propagates application errors", func(t *testing.T) {
		t.Parallel()

		appErr := errors.New("configuration failed")
		_, err := run(t, &fakeApp{err: appErr}, "build")
		require.ErrorIs(t, err, appErr)
	})
}

func TestConfigureCmd(t *testing.T) {
	t.Parallel()

	app := &fakeApp{}
	out, err := run(t, app, "configure", "type=Debug")
	require.NoError(t, err)

	assert.Contains(t, out, "CC = gcc\n")
	assert.Contains(t, out, "fingerprint: ")
	require.NotNil(t, app.configureOpts)
	assert.Equal(t, domain.Debug, app.configureOpts.BuildType)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, &fakeApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "carbide version ")
}

func TestRootHelpListsOptions(t *testing.T) {
	t.Parallel()

	out, err := run(t, &fakeApp{}, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "  type: ")
	assert.Contains(t, out, "  platform: ")
}
