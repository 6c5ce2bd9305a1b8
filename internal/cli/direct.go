package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depvis/pkg/config"
)

func (c *CLI) directCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "direct",
		Short: "Print the direct dependencies of the configured package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg)
			if err != nil {
				return err
			}
			direct, err := runner.Direct(cmd.Context(), cfg.PackageName)
			if err != nil {
				return err
			}
			printDirect(c.Out, cfg, direct)
			return nil
		},
	}
}

func printDirect(w io.Writer, cfg *config.Config, direct []string) {
	printTitle(w, "Direct dependencies of %s==%s:", cfg.PackageName, cfg.PackageVersion)
	printItems(w, direct, "(no direct dependencies)")
}
