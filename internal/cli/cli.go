// Package cli implements the rustbrew command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rustbrew/pkg/buildinfo"
	"github.com/matzehuels/rustbrew/pkg/catalog"
	"github.com/matzehuels/rustbrew/pkg/config"
	"github.com/matzehuels/rustbrew/pkg/integrations"
	"github.com/matzehuels/rustbrew/pkg/integrations/homebrew"
	"github.com/matzehuels/rustbrew/pkg/pipeline"
	"github.com/matzehuels/rustbrew/pkg/snapshot"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "rustbrew"

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
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command itself counts formulae.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.countCommand()
	root.Use = appName
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rustbrew/config.toml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// An explicit query is checked before the config file is even read.
		if f := cmd.Flags().Lookup("lang"); f != nil && f.Changed {
			if err := catalog.ValidateQuery(f.Value.String()); err != nil {
				return err
			}
		}
		if c.verbose {
			c.SetLogLevel(LogDebug)
		}
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.Config = cfg
		if cfg.Source != "" {
			c.Logger.Debug("loaded config", "path", cfg.Source)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newSnapshot builds the snapshot described by the loaded config.
func (c *CLI) newSnapshot() *snapshot.Snapshot {
	hc := integrations.NewHTTPClient(c.Config.Timeout.Duration)
	client := homebrew.NewClient(c.Config.Endpoint, hc)
	return snapshot.New(c.Config.CacheFile, c.Config.MaxAge.Duration, client, c.Logger)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.newSnapshot(), c.Logger)
}
