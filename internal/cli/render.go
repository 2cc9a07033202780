package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fishbone/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output file path (or base path for multiple formats)
	style  string  // visual theme: "classic" or "mono"
	width  float64 // frame width in pixels
	height float64 // frame height in pixels
	scale  float64 // PNG resolution multiplier
}

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		style:  pipeline.DefaultStyle,
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram file to SVG, PNG, or PDF",
		Long: `Render a cause-and-effect diagram file to visual output.

The input file describes the problem and its categories in TOML, YAML, or
JSON (picked by extension). The layout is computed in a single pass and
rendered to every requested format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], formats, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: classic (default), mono")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(cmd *cobra.Command, input string, formats []string, opts renderOpts) error {
	prog := newProgress(c.Logger)

	runner := c.newRunner()
	result, err := runner.Execute(cmd.Context(), input, pipeline.Options{
		Formats: formats,
		Style:   opts.style,
		Width:   opts.width,
		Height:  opts.height,
		Scale:   opts.scale,
		Logger:  c.Logger,
	})
	if err != nil {
		printError("Render failed")
		return err
	}

	if err := writeArtifacts(result.Artifacts, formats, input, opts.output); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(formats)))
	printStats(result.Stats.CategoryCount, result.Stats.CauseCount)
	return nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// writeArtifacts writes each rendered artifact to its output path and
// reports the written files. Nothing is printed until every write landed.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(input, output, format, len(formats) > 1)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// outputPath derives the output file path for one format. With a single
// format, an explicit --output is used verbatim; otherwise the extension is
// replaced per format, defaulting to the input's base name.
func outputPath(input, output, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = input
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + format
}
