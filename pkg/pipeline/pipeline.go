// Package pipeline provides the core visualization pipeline for Fishbone.
//
// This package implements the load → layout → render pipeline shared by
// every entry point, so CLI commands and library callers get identical
// behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode and validate a diagram from TOML, YAML, or JSON
//  2. Layout: Compute anchors and label offsets for every element
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Formats: []string{"svg"}}
//	result, err := runner.Execute(ctx, "fishbone.toml", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fishbone/pkg/errors"
	"github.com/matzehuels/fishbone/pkg/layout"
	"github.com/matzehuels/fishbone/pkg/render/sink"
	"github.com/matzehuels/fishbone/pkg/render/styles"
)

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = sink.DefaultHeight

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// DefaultStyle is the default visual theme.
const DefaultStyle = styles.ThemeClassic

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual themes.
var ValidStyles = map[string]bool{
	styles.ThemeClassic: true,
	styles.ThemeMono:    true,
}

// Options contains all configuration for the visualization pipeline.
type Options struct {
	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG resolution multiplier

	// Logger receives the run's stage output. The runner fills a nil
	// Logger with its own; ValidateAndSetDefaults falls back to discard
	// for direct library callers.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed geometry.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CategoryCount int
	CauseCount    int
	LoadTime      time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: classic, mono)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}
