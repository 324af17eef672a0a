// Package commands implements the CLI commands for the carbide build
// configurator.
package commands

import (
	"context"
	"fmt"
	"io"

	"carbonengine.dev/carbide/internal/build"
	"carbonengine.dev/carbide/internal/core/domain"
	"carbonengine.dev/carbide/internal/platform"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for carbide.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts *domain.Options) (platform.Config, *domain.PlatformDescriptor, error)
	Build(ctx context.Context, targets []string, opts *domain.Options, out io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "carbide",
		Short: "Configure Carbon engine and application builds",
		Long: "carbide resolves a platform and toolchain configuration for the Carbon\n" +
			"engine and emits the artifact graph as a build plan.\n\n" +
			"Build options are passed as key=value arguments:\n\n" + domain.FormatOptionHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newConfigureCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
