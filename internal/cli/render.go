package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depvis/pkg/errors"
	depio "github.com/matzehuels/depvis/pkg/io"
	"github.com/matzehuels/depvis/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file; stdout when empty
	format string // dot, tree, json, svg, png; inferred from output when empty
	input  string // saved JSON report to render instead of resolving
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dependency graph to DOT, tree, JSON, SVG or PNG",
		Long: `Render the dependency graph of the configured package.

The format is taken from --format, or from the extension of --output
(.dot, .txt, .json, .svg, .png). SVG and PNG are rasterized in-process with
Graphviz; packages on a dependency cycle are highlighted.

With --input, a report previously written by 'analyze --json' is rendered
without querying the package index.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, format)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, tree, json, svg, png")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "render a saved JSON report instead of resolving")

	return cmd
}

// resolveFormat picks the explicit format, then the output extension, then DOT.
func resolveFormat(opts renderOpts) (string, error) {
	switch {
	case opts.format != "":
		return opts.format, pipeline.ValidateFormat(opts.format)
	case opts.output != "":
		return pipeline.FormatFromPath(opts.output)
	default:
		return pipeline.FormatDOT, nil
	}
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts, format string) error {
	res, err := c.loadResult(ctx, opts.input)
	if err != nil {
		return err
	}

	out, err := pipeline.Render(ctx, res, format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := c.Out.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	printSuccess(c.Out, "Rendered %s", format)
	printFile(c.Out, opts.output)
	printStats(c.Out, res.Stats.NodeCount, res.Stats.EdgeCount, len(res.Cycles))
	return nil
}

// loadResult reads a saved report, or resolves the configured package.
func (c *CLI) loadResult(ctx context.Context, input string) (*pipeline.Result, error) {
	if input != "" {
		rep, err := depio.ImportJSON(input)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load report")
		}
		return pipeline.FromReport(rep), nil
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	runner, err := c.newRunner(cfg)
	if err != nil {
		return nil, err
	}
	return c.analyze(ctx, runner, cfg)
}
