package config

import (
	"slices"
	"strings"

	"github.com/matzehuels/collage/pkg/errors"
)

// FitMode decides how an image is sized to its cell. It applies to every
// image of a run.
type FitMode string

const (
	// FitContain letterboxes: the whole image is visible and aligned
	// inside the cell according to Alignment.
	FitContain FitMode = "fit"
	// FitFill scales to cover the cell and center-crops the overflow.
	FitFill FitMode = "fill"
)

// GridPolicy selects how rows and columns are derived from the image count.
type GridPolicy string

const (
	// GridFit uses exactly N cells, shaped closest to the canvas aspect.
	GridFit GridPolicy = "fit"
	// GridSquare uses floor(sqrt(N)) columns and as many rows as needed.
	GridSquare GridPolicy = "square"
)

// SortOrder is the display order of input images.
type SortOrder string

const (
	SortName SortOrder = "name"
	SortDate SortOrder = "date"
)

// Format is the encoding of the written collage.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

var (
	fitModes     = []FitMode{FitContain, FitFill}
	gridPolicies = []GridPolicy{GridFit, GridSquare}
	sortOrders   = []SortOrder{SortName, SortDate}
	formats      = []Format{FormatPNG, FormatJPEG}
)

// setChoice lower-cases s, checks it against valid and stores it in dst.
// dst is left untouched on error.
func setChoice[T ~string](dst *T, flag, s string, valid []T) error {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(valid, v) {
		names := make([]string, len(valid))
		for i, c := range valid {
			names[i] = string(c)
		}
		return errors.New(errors.ErrCodeInvalidConfiguration,
			"--%s: invalid value %q (must be one of %s)", flag, s, strings.Join(names, ", "))
	}
	*dst = v
	return nil
}

func (m *FitMode) Set(s string) error { return setChoice(m, "fit", s, fitModes) }
func (m *FitMode) String() string     { return string(*m) }
func (m *FitMode) Type() string       { return "mode" }

func (g *GridPolicy) Set(s string) error { return setChoice(g, "grid", s, gridPolicies) }
func (g *GridPolicy) String() string     { return string(*g) }
func (g *GridPolicy) Type() string       { return "policy" }

func (o *SortOrder) Set(s string) error { return setChoice(o, "sort", s, sortOrders) }
func (o *SortOrder) String() string     { return string(*o) }
func (o *SortOrder) Type() string       { return "order" }

// Set accepts "jpg" as an alias for jpeg.
func (f *Format) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "jpg") {
		s = string(FormatJPEG)
	}
	return setChoice(f, "format", s, formats)
}
func (f *Format) String() string { return string(*f) }
func (f *Format) Type() string   { return "format" }

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}
