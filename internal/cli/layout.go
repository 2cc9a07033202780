package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fishbone/pkg/render/sink"
)

// layoutCommand creates the layout command for emitting computed geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute a diagram layout and emit it as JSON",
		Long: `Compute the layout for a diagram file and emit it as JSON.

The output carries every anchor point and label offset the renderer would
use, so external tooling can inspect positions or drive its own drawing
surface without recomputing the layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with .layout.json)")

	return cmd
}

func (c *CLI) runLayout(input, output string) error {
	runner := c.newRunner()

	d, err := runner.Load(input)
	if err != nil {
		return err
	}

	l, err := runner.ComputeLayout(d)
	if err != nil {
		return err
	}

	data, err := sink.RenderJSON(l)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Layout computed")
	printFile(output)
	printNextStep("Render it", fmt.Sprintf("%s render %s", appName, input))
	return nil
}
