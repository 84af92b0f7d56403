package config

import (
	"strings"

	"github.com/matzehuels/collage/pkg/errors"
)

// HAlign is the horizontal anchor of an image inside its cell.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical anchor of an image inside its cell.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Alignment anchors a letterboxed image inside its cell on both axes.
// It implements pflag.Value and encoding.TextMarshaler so it can be bound
// directly to a flag and round-trip through a TOML file.
type Alignment struct {
	H HAlign
	V VAlign
}

var (
	hTokens = map[string]HAlign{"left": AlignLeft, "center": AlignCenter, "right": AlignRight}
	vTokens = map[string]VAlign{"top": AlignTop, "center": AlignMiddle, "middle": AlignMiddle, "bottom": AlignBottom}
)

// ParseAlignment parses an alignment token.
//
// Accepted forms:
//   - "left", "right": horizontal anchor, vertically centered
//   - "top", "bottom": vertical anchor, horizontally centered
//   - "center": centered on both axes
//   - two tokens joined by "-" or " " in either order, e.g. "top-left",
//     "left top", "bottom-center", "center-right"
func ParseAlignment(s string) (Alignment, error) {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), func(r rune) bool {
		return r == '-' || r == ' ' || r == '_'
	})

	switch len(fields) {
	case 1:
		tok := fields[0]
		if tok == "center" || tok == "middle" {
			return Alignment{H: AlignCenter, V: AlignMiddle}, nil
		}
		if h, ok := hTokens[tok]; ok {
			return Alignment{H: h, V: AlignMiddle}, nil
		}
		if v, ok := vTokens[tok]; ok {
			return Alignment{H: AlignCenter, V: v}, nil
		}
	case 2:
		if a, ok := pairAlignment(fields[0], fields[1]); ok {
			return a, nil
		}
		if a, ok := pairAlignment(fields[1], fields[0]); ok {
			return a, nil
		}
	}
	return Alignment{}, errors.New(errors.ErrCodeInvalidConfiguration,
		"--align: unrecognized alignment %q (use left, center, right, top, bottom or a pair like top-left)", s)
}

// pairAlignment interprets v as the vertical and h as the horizontal token.
func pairAlignment(v, h string) (Alignment, bool) {
	va, vok := vTokens[v]
	ha, hok := hTokens[h]
	if !vok || !hok {
		return Alignment{}, false
	}
	return Alignment{H: ha, V: va}, true
}

// Valid reports whether both anchors are in range.
func (a Alignment) Valid() bool {
	return a.H >= AlignLeft && a.H <= AlignRight && a.V >= AlignTop && a.V <= AlignBottom
}

// String returns the canonical token for a, e.g. "left" or "top-right".
func (a Alignment) String() string {
	h := [...]string{"left", "center", "right"}
	v := [...]string{"top", "center", "bottom"}
	if !a.Valid() {
		return "invalid"
	}
	switch {
	case a.V == AlignMiddle && a.H == AlignCenter:
		return "center"
	case a.V == AlignMiddle:
		return h[a.H]
	case a.H == AlignCenter:
		return v[a.V]
	}
	return v[a.V] + "-" + h[a.H]
}

// Set implements pflag.Value.
func (a *Alignment) Set(s string) error {
	parsed, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Type implements pflag.Value.
func (a *Alignment) Type() string { return "align" }

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(b []byte) error { return a.Set(string(b)) }
