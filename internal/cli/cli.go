package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depvis/pkg/buildinfo"
	"github.com/matzehuels/depvis/pkg/config"
	"github.com/matzehuels/depvis/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "depvis"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // Reports and renderings; logs go to the logger

	configPath string
	pkg        string
	maxDepth   int
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "depvis analyzes package dependency graphs",
		Long:         `depvis builds the dependency graph of a package from a package index or a test fixture, reports cycles and reverse dependencies, and renders the graph as DOT, an ASCII tree, JSON, SVG or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultPath, "path to the XML or TOML config file")
	root.PersistentFlags().StringVar(&c.pkg, "package", "", "override package_name from the config")
	root.PersistentFlags().IntVar(&c.maxDepth, "max-depth", 0, "override max_depth from the config")

	// Register all subcommands
	root.AddCommand(c.paramsCommand())
	root.AddCommand(c.directCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Runner Factory
// =============================================================================

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.pkg != "" {
		cfg.PackageName = c.pkg
	}
	if c.maxDepth != 0 {
		cfg.MaxDepth = c.maxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRunner creates a pipeline runner over the source selected by cfg.
func (c *CLI) newRunner(cfg *config.Config) (*pipeline.Runner, error) {
	src, err := pipeline.NewSource(cfg)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(src, c.Logger), nil
}

// analyze builds the configured graph, with a spinner unless debug logs are on.
func (c *CLI) analyze(ctx context.Context, runner *pipeline.Runner, cfg *config.Config) (*pipeline.Result, error) {
	var spinner *Spinner
	if c.Logger.GetLevel() > log.DebugLevel {
		spinner = newSpinnerWithContext(ctx, os.Stderr, "Resolving dependencies of "+cfg.PackageName+"...")
		spinner.Start()
	}

	prog := newProgress(c.Logger)
	res, err := runner.Analyze(ctx, cfg.PackageName, pipeline.Options{
		MaxDepth:    cfg.MaxDepth,
		Concurrency: cfg.Concurrency,
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}
	prog.done("Resolved " + pluralize(res.Stats.NodeCount, "package"))
	return res, nil
}
