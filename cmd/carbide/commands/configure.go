package commands

import (
	"fmt"
	"os"

	"carbonengine.dev/carbide/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure [key=value...]",
		Short: "Resolve a platform configuration and print its environment",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := domain.ParseArguments(args, os.Getenv)
			if err != nil {
				return err
			}

			_, desc, err := c.app.Configure(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, desc.Env.Dump())
			_, _ = fmt.Fprintf(out, "fingerprint: %s\n", desc.Env.Fingerprint())
			return nil
		},
	}
}
