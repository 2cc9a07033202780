package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/fishbone/pkg/diagram"
	"github.com/matzehuels/fishbone/pkg/errors"
	"github.com/matzehuels/fishbone/pkg/layout"
	"github.com/matzehuels/fishbone/pkg/render/sink"
	"github.com/matzehuels/fishbone/pkg/render/styles"
)

// Runner executes pipeline stages with shared logging.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger disables logging.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{logger: logger}
}

// applyLogger fills opts.Logger from the runner when the caller left it
// unset, so one logger carries the whole run's stage output.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.logger
	}
}

// Execute runs the complete pipeline: load the diagram at path, compute its
// layout, and render every requested format. Any stage error aborts the run
// with no artifacts; a partially rendered diagram is not a supported state.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	// Short run ID to correlate the stage logs of one pass.
	runID := uuid.NewString()[:8]
	logger := opts.Logger.With("run", runID)

	result := &Result{Artifacts: make(map[string][]byte)}

	start := time.Now()
	d, err := r.Load(path)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(start)
	result.Stats.CategoryCount = len(d.Categories)
	result.Stats.CauseCount = d.CauseCount()
	logger.Debug("loaded diagram", "path", path,
		"categories", result.Stats.CategoryCount, "causes", result.Stats.CauseCount)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	result.Layout, err = r.ComputeLayout(d)
	if err != nil {
		return nil, err
	}
	result.Stats.LayoutTime = time.Since(start)
	logger.Debug("computed layout",
		"spine", result.Layout.Profile.SpineMax-result.Layout.Profile.SpineMin,
		"slots", len(result.Layout.Profile.Slots))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	result.Artifacts, err = r.Render(result.Layout, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(start)
	logger.Debug("rendered artifacts", "formats", opts.Formats)

	return result, nil
}

// Load decodes and validates the diagram file at path.
func (r *Runner) Load(path string) (diagram.Diagram, error) {
	return diagram.ReadFile(path)
}

// ComputeLayout computes the geometry for a diagram.
func (r *Runner) ComputeLayout(d diagram.Diagram) (layout.Layout, error) {
	return layout.Compute(d)
}

// Render produces the requested artifacts from a computed layout.
// Formats and style must already be validated (ValidateAndSetDefaults).
func (r *Runner) Render(l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{
		sink.WithTheme(styles.ForName(opts.Style)),
		sink.WithFrame(opts.Width, opts.Height),
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		default:
			err = errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
		if err != nil {
			// Converter errors already carry a code; keep it.
			if errors.GetCode(err) != "" {
				return nil, err
			}
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
