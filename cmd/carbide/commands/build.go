package commands

import (
	"os"

	"carbonengine.dev/carbide/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [key=value...] [targets...]",
		Short: "Configure the requested targets and emit a build plan",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, targets, err := domain.ParseArguments(args, os.Getenv)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				// #nosec G304 -- output path is user supplied by design
				file, err := os.Create(path)
				if err != nil {
					return zerr.Wrap(err, "failed to create plan file")
				}
				defer func() { _ = file.Close() }()
				out = file
			}

			return c.app.Build(cmd.Context(), targets, opts, out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the build plan to a file instead of stdout")
	return cmd
}
