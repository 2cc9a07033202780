// Package cli implements the fishbone command-line interface.
//
// This package provides commands for validating cause-and-effect diagram
// files, computing their layouts, and rendering them as visualizations.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, or PDF visualizations from a diagram file
//   - layout: Compute a layout and emit it as JSON
//   - validate: Check a diagram file against the fixed-slot model
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fishbone/pkg/buildinfo"
	"github.com/matzehuels/fishbone/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "fishbone"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
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
		Short:        "Fishbone renders cause-and-effect diagrams",
		Long:         `Fishbone is a CLI tool for rendering Ishikawa (fishbone, cause-and-effect) diagrams: a problem head, up to six category branches along a central spine, and up to six causes per branch.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
