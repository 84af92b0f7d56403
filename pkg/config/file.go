package config

import (
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/collage/pkg/errors"
)

// LoadFile overlays the TOML file at path onto base and returns the result.
// Keys absent from the file keep their base value. Unknown keys are an
// error so that typos do not silently fall back to defaults.
func LoadFile(path string, base Collage) (Collage, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "--config: cannot read %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return base, errors.New(errors.ErrCodeInvalidConfiguration,
			"--config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Encode writes c as TOML. The output is accepted by LoadFile.
func Encode(w io.Writer, c Collage) error {
	return toml.NewEncoder(w).Encode(c)
}

// FlagKey maps a command-line flag name to its config file key.
func FlagKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// CopyField copies the field identified by its config file key from src
// into c. It reports false for keys that do not name a field.
func (c *Collage) CopyField(key string, src Collage) bool {
	switch key {
	case "width":
		c.Width = src.Width
	case "height":
		c.Height = src.Height
	case "padding":
		c.Padding = src.Padding
	case "border":
		c.Border = src.Border
	case "bg_color":
		c.Background = src.Background
	case "align":
		c.Align = src.Align
	case "fit":
		c.Fit = src.Fit
	case "grid":
		c.Grid = src.Grid
	case "frame":
		c.Frame = src.Frame
	case "frame_color":
		c.FrameColor = src.FrameColor
	case "auto_rotate":
		c.AutoRotate = src.AutoRotate
	case "text_size":
		c.TextSize = src.TextSize
	case "text_opacity":
		c.TextOpacity = src.TextOpacity
	case "date_format":
		c.DateFormat = src.DateFormat
	case "font":
		c.Font = src.Font
	case "captions":
		c.Captions = src.Captions
	case "info_box":
		c.InfoBox = src.InfoBox
	case "folder":
		c.Input = src.Input
	case "sort":
		c.Sort = src.Sort
	case "per_page":
		c.PerPage = src.PerPage
	case "output_dir":
		c.OutputDir = src.OutputDir
	case "prefix":
		c.Prefix = src.Prefix
	case "format":
		c.Format = src.Format
	case "quality":
		c.Quality = src.Quality
	case "workers":
		c.Workers = src.Workers
	default:
		return false
	}
	return true
}
