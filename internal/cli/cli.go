// Package cli implements the gridpath command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/pkg/buildinfo"
	"github.com/matzehuels/gridpath/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridpath"
)

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

	logOut     io.Writer
	configPath string
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Its PersistentPreRunE loads the config file, attaches the logger to the
// command context and registers the logging diagnostics hooks.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Gridpath animates breadth-first shortest-path search on a grid",
		Long:          `Gridpath is a terminal visualizer for unweighted shortest paths. Place a start, an end and obstacles with the mouse, then watch breadth-first search flood the board and trace the route back.`,
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			if cfg.Diagnostics {
				c.SetLogLevel(LogDebug)
			}

			hooks := &logHooks{logger: c.Logger}
			observability.SetSearchHooks(hooks)
			observability.SetEditHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gridpath/config.toml)")

	// Register all subcommands
	root.AddCommand(c.playCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
