package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depvis/pkg/config"
)

func (c *CLI) paramsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			printParams(c.Out, cfg)
			return nil
		},
	}
}

// printParams prints every configuration key with its effective value.
func printParams(w io.Writer, cfg *config.Config) {
	io.WriteString(w, StyleTitle.Render("Configuration parameters (key = value):")+"\n")
	for _, p := range cfg.Pairs() {
		printKeyValue(w, p.Key, p.Value)
	}
}
