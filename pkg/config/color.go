package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/matzehuels/collage/pkg/errors"
)

// Color is an 8-bit non-premultiplied RGBA color written as "R,G,B" or
// "R,G,B,A" on the command line and in config files.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{255, 255, 255, 255}
	Black = Color{0, 0, 0, 255}
)

// ParseColor parses "R,G,B" or "R,G,B,A" with components in 0-255.
// Alpha defaults to 255.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("color %q: want R,G,B or R,G,B,A", s)
	}

	vals := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("color %q: component %q must be an integer in 0-255", s, strings.TrimSpace(p))
		}
		vals[i] = uint8(n)
	}
	return Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String formats c the way ParseColor reads it. Opaque colors omit alpha.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%d,%d,%d,%d", c.R, c.G, c.B, c.A)
}

// Set implements pflag.Value.
func (c *Color) Set(s string) error {
	parsed, err := ParseColor(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "invalid color")
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Color) Type() string { return "R,G,B" }

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error { return c.Set(string(b)) }
