// Package cli implements the zenodo command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/silebat/zenodo-go/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "zenodo"

// LogInfo is the default log level, exported for use in main.go.
const LogInfo = log.InfoLevel

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// flags shared by every API command
	token   string
	sandbox bool
	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Zenodo manages depositions on zenodo.org from the command line",
		Long:         `Zenodo is a CLI for the Zenodo deposition API: create and publish depositions, upload files, and walk a record through its draft, publish, and versioning lifecycle.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Apply the log level and attach the logger so every command can pull
	// it from its context.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if c.verbose {
			c.Logger.SetLevel(log.DebugLevel)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.PersistentFlags().StringVar(&c.token, "token", "", "access token (overrides saved login and config file)")
	root.PersistentFlags().BoolVar(&c.sandbox, "sandbox", false, "use the sandbox environment")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.loginCommand())
	root.AddCommand(c.logoutCommand())
	root.AddCommand(c.depositionCommand())
	root.AddCommand(c.filesCommand())
	root.AddCommand(c.actionsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
