package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/collage/pkg/config"
)

// collageFlags holds the collage settings as parsed from the command line.
// Only flags the user actually set are applied on top of the config file.
type collageFlags struct {
	fs         *pflag.FlagSet
	values     config.Collage
	configPath string
}

// bindCollageFlags registers every collage setting on fs. Defaults shown in
// help come from config.Default.
func bindCollageFlags(fs *pflag.FlagSet) *collageFlags {
	f := &collageFlags{fs: fs, values: config.Default()}
	v := &f.values

	fs.StringVar(&f.configPath, "config", "", "TOML file with collage settings")

	// Canvas
	fs.IntVarP(&v.Width, "width", "w", v.Width, "canvas width in pixels")
	fs.IntVarP(&v.Height, "height", "h", v.Height, "canvas height in pixels, excluding the info strip")
	fs.IntVarP(&v.Padding, "padding", "P", v.Padding, "pixels between adjacent images")
	fs.IntVarP(&v.Border, "border", "B", v.Border, "pixels between the canvas edge and the images")
	fs.VarP(&v.Background, "bg-color", "g", "background color as R,G,B or R,G,B,A")

	// Placement
	fs.VarP(&v.Align, "align", "a", "image alignment in its cell: left, center, right, top, bottom or a pair like top-left")
	fs.Var(&v.Fit, "fit", "fit (letterbox) or fill (center-crop)")
	fs.Var(&v.Grid, "grid", "grid policy: fit (exactly one cell per image) or square")
	fs.IntVarP(&v.Frame, "frame", "t", v.Frame, "frame thickness around each image")
	fs.VarP(&v.FrameColor, "frame-color", "c", "frame color as R,G,B or R,G,B,A")
	fs.BoolVar(&v.AutoRotate, "auto-rotate", v.AutoRotate, "rotate images to match the orientation of their cell")

	// Text
	fs.IntVarP(&v.TextSize, "text-size", "s", v.TextSize, "text size in pixels")
	fs.Float64VarP(&v.TextOpacity, "text-opacity", "o", v.TextOpacity, "text opacity from 0.0 to 1.0")
	fs.StringVarP(&v.DateFormat, "date-format", "d", v.DateFormat, "strftime date format for the info strip and captions")
	fs.StringVarP(&v.Font, "font", "F", v.Font, "TrueType or OpenType font file (default embedded Go Regular)")
	fs.BoolVar(&v.Captions, "captions", v.Captions, "draw each image's capture date in its corner")
	fs.BoolVarP(&v.InfoBox, "info-box", "i", v.InfoBox, "append an info strip with the date and layout summary")

	// Input and output
	fs.StringVarP(&v.Input, "folder", "f", v.Input, "folder containing the images")
	fs.Var(&v.Sort, "sort", "image order: name or date")
	fs.IntVarP(&v.PerPage, "per-page", "p", v.PerPage, "images per collage, 0 for all on one")
	fs.StringVar(&v.OutputDir, "output-dir", v.OutputDir, "directory for the written collages")
	fs.StringVarP(&v.Prefix, "prefix", "x", v.Prefix, "output file name prefix")
	fs.Var(&v.Format, "format", "output format: png or jpeg")
	fs.IntVar(&v.Quality, "quality", v.Quality, "JPEG quality from 1 to 100")
	fs.IntVar(&v.Workers, "workers", v.Workers, "parallel decode workers, 0 for one per CPU")

	return f
}

// resolve merges defaults, the config file and explicitly set flags, in
// that order, and validates the result.
func (f *collageFlags) resolve() (config.Collage, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(f.configPath, cfg); err != nil {
			return config.Collage{}, err
		}
	}

	// Subcommands parse into their own merged flag set, so check Changed on
	// the shared flags instead of using Visit.
	f.fs.VisitAll(func(fl *pflag.Flag) {
		if fl.Changed {
			cfg.CopyField(config.FlagKey(fl.Name), f.values)
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Collage{}, err
	}
	return cfg, nil
}

// resolveConfig returns the effective configuration for cmd.
func (c *CLI) resolveConfig(cmd *cobra.Command) (config.Collage, error) {
	cfg, err := c.flags.resolve()
	if err != nil {
		return cfg, err
	}
	c.Logger.Debug("resolved configuration",
		"canvas", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"folder", cfg.Input,
		"config", c.flags.configPath,
		"command", cmd.Name())
	return cfg, nil
}
