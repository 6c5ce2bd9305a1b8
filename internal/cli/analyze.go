package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depvis/pkg/config"
	"github.com/matzehuels/depvis/pkg/errors"
	depio "github.com/matzehuels/depvis/pkg/io"
	"github.com/matzehuels/depvis/pkg/pipeline"
	"github.com/matzehuels/depvis/pkg/render/nodelink"
	"github.com/matzehuels/depvis/pkg/render/tree"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	showDirect  bool // stop after printing direct dependencies
	showReverse bool // print who depends on the configured package
	json        bool // print the JSON report instead of text
}

// analyzeCommand runs the whole workflow. Each stage fails with its own
// exit code: configuration 2, fixture 3, direct lookup 4, construction 5.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the dependency graph and print the analysis report",
		Long: `Build the dependency graph of the configured package and print:

  - the configuration parameters
  - detected dependency cycles
  - reverse dependencies of the package (--show-reverse)
  - the Graphviz DOT description of the graph
  - the ASCII dependency tree (when ascii_tree_output is enabled)

With --show-direct only the direct dependencies are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.showDirect, "show-direct", false, "only print the direct dependencies of the package")
	cmd.Flags().BoolVar(&opts.showReverse, "show-reverse", false, "print reverse dependencies of the package")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the JSON report instead of text")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, opts analyzeOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if !opts.json {
		printParams(c.Out, cfg)
	}

	runner, err := c.newRunner(cfg)
	if err != nil {
		return err
	}

	direct, err := runner.Direct(ctx, cfg.PackageName)
	if err != nil {
		return err
	}
	if opts.showDirect {
		if opts.json {
			return writeDirectJSON(c.Out, cfg, direct)
		}
		printDirect(c.Out, cfg, direct)
		return nil
	}

	res, err := c.analyze(ctx, runner, cfg)
	if err != nil {
		return err
	}

	if opts.json {
		if err := depio.WriteJSON(c.Out, res.Report()); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write report")
		}
		return nil
	}

	printReport(c.Out, cfg, res, opts.showReverse)
	return nil
}

// printReport prints the text report stages that follow construction.
func printReport(w io.Writer, cfg *config.Config, res *pipeline.Result, showReverse bool) {
	if len(res.Cycles) > 0 {
		printTitle(w, "Dependency cycles detected:")
		for _, cyc := range res.Cycles {
			printWarning(w, "%s", cyc)
		}
	} else {
		fmt.Fprintln(w)
		printSuccess(w, "No dependency cycles detected.")
	}

	if showReverse {
		printTitle(w, "Reverse dependencies (who depends on %s):", cfg.PackageName)
		printItems(w, res.Dependents(cfg.PackageName), "(nothing depends on it)")
	}

	printTitle(w, "Graphviz DOT:")
	fmt.Fprintln(w, nodelink.ToDOT(res.Graph.Adjacency, nodelink.Options{}))

	if cfg.ASCIITreeOutput {
		printTitle(w, "ASCII dependency tree:")
		fmt.Fprintln(w, tree.Render(res.Graph.Adjacency, cfg.PackageName, cfg.MaxDepth))
	}
}

func writeDirectJSON(w io.Writer, cfg *config.Config, direct []string) error {
	if direct == nil {
		direct = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Package      string   `json:"package"`
		Version      string   `json:"version"`
		Dependencies []string `json:"dependencies"`
	}{cfg.PackageName, cfg.PackageVersion, direct})
}
