// Package fonts provides the font faces used to draw captions and the info
// strip.
//
// The default typeface is Go Regular, embedded in the binary through
// golang.org/x/image/font/gofont, so collages render the same on every
// machine without any system fonts installed. A TrueType or OpenType file
// can be supplied instead with [Load].
package fonts

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/collage/pkg/errors"
)

// DefaultName is the display name of the embedded typeface.
const DefaultName = "Go Regular"

// Parsed embedded font (computed once on first access).
var (
	defaultFont     *opentype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// Font is a parsed typeface from which faces of any pixel size are made.
type Font struct {
	name string
	f    *opentype.Font
}

// Default returns the embedded typeface.
func Default() (*Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(goregular.TTF)
	})
	if defaultFontErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, defaultFontErr, "embedded font is corrupt")
	}
	return &Font{name: DefaultName, f: defaultFont}, nil
}

// Load parses the font file at path. An empty path returns [Default].
func Load(path string) (*Font, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "--font: cannot read %s", path)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "--font: %s is not a TrueType or OpenType font", path)
	}
	return &Font{name: path, f: f}, nil
}

// Name returns DefaultName for the embedded font and the file path otherwise.
func (f *Font) Name() string { return f.name }

// Face returns a face whose em size is px pixels.
func (f *Font) Face(px int) (font.Face, error) {
	face, err := opentype.NewFace(f.f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "cannot build %dpx face for %s", px, f.name)
	}
	return face, nil
}
