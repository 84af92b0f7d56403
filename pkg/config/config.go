// Package config defines the run configuration of a collage.
//
// A [Collage] value holds every parameter of one invocation: canvas
// geometry, alignment and fitting policy, text settings, colors and the
// input/output locations. It is assembled once at the CLI boundary from
// three layers, validated with [Collage.Validate], and then passed by value
// into the layout engine and renderer. Nothing in this package is global
// or mutable after validation.
//
// # Layers
//
//  1. [Default] returns the built-in defaults.
//  2. [LoadFile] overlays a TOML file; unknown keys are rejected.
//  3. [Collage.CopyField] copies explicitly set command-line flags on top.
//
// # Example
//
//	cfg := config.Default()
//	cfg.Width, cfg.Height = 1000, 600
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import (
	"runtime"

	"github.com/lestrrat-go/strftime"

	"github.com/matzehuels/collage/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultWidth       = 5100
	DefaultHeight      = 6600
	DefaultPadding     = 6
	DefaultTextSize    = 32
	DefaultTextOpacity = 1.0
	DefaultDateFormat  = "%m-%d"
	DefaultPrefix      = "collage"
	DefaultInput       = "images"
	DefaultOutputDir   = "."
	DefaultQuality     = 90
)

// =============================================================================
// Collage
// =============================================================================

// Collage is the full set of parameters for one run.
// Field tags name the keys used in TOML config files; command-line flags
// use the same names with dashes.
type Collage struct {
	// Canvas
	Width      int   `toml:"width"`    // grid area width in pixels
	Height     int   `toml:"height"`   // grid area height in pixels, excluding the info strip
	Padding    int   `toml:"padding"`  // gap between adjacent cells
	Border     int   `toml:"border"`   // gap between canvas edge and outer cells
	Background Color `toml:"bg_color"` // canvas fill

	// Placement
	Align      Alignment  `toml:"align"`       // anchor of letterboxed images
	Fit        FitMode    `toml:"fit"`         // letterbox or center-crop
	Grid       GridPolicy `toml:"grid"`        // grid shape policy
	Frame      int        `toml:"frame"`       // per-image frame thickness
	FrameColor Color      `toml:"frame_color"` // per-image frame color
	AutoRotate bool       `toml:"auto_rotate"` // rotate images to the cell orientation

	// Text
	TextSize    int     `toml:"text_size"`    // font size in pixels
	TextOpacity float64 `toml:"text_opacity"` // 0 (invisible) to 1 (opaque)
	DateFormat  string  `toml:"date_format"`  // strftime pattern
	Font        string  `toml:"font"`         // TTF/OTF path, empty for the embedded font
	Captions    bool    `toml:"captions"`     // draw capture dates on each image
	InfoBox     bool    `toml:"info_box"`     // append the info strip

	// Input and output
	Input     string    `toml:"folder"`     // directory holding the source images
	Sort      SortOrder `toml:"sort"`       // display order
	PerPage   int       `toml:"per_page"`   // images per collage, 0 for all
	OutputDir string    `toml:"output_dir"` // destination directory
	Prefix    string    `toml:"prefix"`     // output filename prefix
	Format    Format    `toml:"format"`     // png or jpeg
	Quality   int       `toml:"quality"`    // jpeg quality 1-100
	Workers   int       `toml:"workers"`    // decode workers, 0 for one per CPU
}

// Default returns the built-in configuration.
func Default() Collage {
	return Collage{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Padding:     DefaultPadding,
		Background:  White,
		Align:       Alignment{H: AlignLeft, V: AlignMiddle},
		Fit:         FitContain,
		Grid:        GridFit,
		FrameColor:  White,
		TextSize:    DefaultTextSize,
		TextOpacity: DefaultTextOpacity,
		DateFormat:  DefaultDateFormat,
		Input:       DefaultInput,
		Sort:        SortName,
		OutputDir:   DefaultOutputDir,
		Prefix:      DefaultPrefix,
		Format:      FormatPNG,
		Quality:     DefaultQuality,
	}
}

// Validate checks every field and returns the first problem found as an
// INVALID_CONFIGURATION error naming the flag and the offending value.
// Geometry that is individually valid but too large for the canvas is not
// detected here; the layout engine reports that as CANVAS_TOO_SMALL.
func (c Collage) Validate() error {
	positive := []struct {
		flag string
		v    int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"text-size", c.TextSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return invalid(p.flag, p.v, "must be > 0")
		}
	}

	nonNegative := []struct {
		flag string
		v    int
	}{
		{"padding", c.Padding},
		{"border", c.Border},
		{"frame", c.Frame},
		{"per-page", c.PerPage},
		{"workers", c.Workers},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return invalid(p.flag, p.v, "must be >= 0")
		}
	}

	if c.TextOpacity < 0 || c.TextOpacity > 1 {
		return invalid("text-opacity", c.TextOpacity, "must be between 0.0 and 1.0")
	}
	if c.Quality < 1 || c.Quality > 100 {
		return invalid("quality", c.Quality, "must be between 1 and 100")
	}
	if !c.Align.Valid() {
		return invalid("align", c.Align, "unrecognized alignment")
	}

	// Re-run the enum parsers so values from struct literals and TOML files
	// are held to the same rules as flags.
	fit, grid, sort, format := c.Fit, c.Grid, c.Sort, c.Format
	for _, err := range []error{
		fit.Set(string(c.Fit)),
		grid.Set(string(c.Grid)),
		sort.Set(string(c.Sort)),
		format.Set(string(c.Format)),
	} {
		if err != nil {
			return err
		}
	}

	if c.DateFormat == "" {
		return invalid("date-format", c.DateFormat, "cannot be empty")
	}
	if _, err := strftime.New(c.DateFormat); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "--date-format: invalid pattern %q", c.DateFormat)
	}

	if err := errors.ValidatePrefix(c.Prefix); err != nil {
		return err
	}
	if err := errors.ValidateDir("folder", c.Input); err != nil {
		return err
	}
	return errors.ValidateDir("output-dir", c.OutputDir)
}

// WorkerCount resolves Workers, mapping 0 to the number of CPUs.
func (c Collage) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

func invalid(flag string, v any, reason string) error {
	return errors.New(errors.ErrCodeInvalidConfiguration, "--%s: %s, got %v", flag, reason, v)
}
