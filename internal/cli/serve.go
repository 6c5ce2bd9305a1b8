package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depvis/internal/server"
)

const shutdownGrace = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dependency analysis over HTTP",
		Long: `Serve the dependency analysis over HTTP.

The package source, default depth and concurrency come from the config file;
the package name is taken from each request path.

  GET /healthz
  GET /v1/packages/{name}/direct
  GET /v1/packages/{name}/graph?depth=N&format=json|dot|tree
  GET /v1/packages/{name}/cycles
  GET /v1/packages/{name}/reverse`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg)
			if err != nil {
				return err
			}

			router := server.NewRouter(&server.Handler{
				Runner:       runner,
				Logger:       c.Logger,
				DefaultDepth: cfg.MaxDepth,
				Concurrency:  cfg.Concurrency,
			})
			return server.New(addr, router, c.Logger).Run(cmd.Context(), shutdownGrace)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
