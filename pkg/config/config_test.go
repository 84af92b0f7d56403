package config

import (
	"strings"
	"testing"

	"github.com/matzehuels/collage/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestDefaultOptionalDrawing(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		got  bool
	}{
		{"captions", c.Captions},
		{"info box", c.InfoBox},
		{"auto rotate", c.AutoRotate},
	}
	for _, tt := range tests {
		if tt.got {
			t.Errorf("Default() %s = true, want off until requested", tt.name)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Collage)
		wantFlag string
	}{
		{"zero width", func(c *Collage) { c.Width = 0 }, "--width"},
		{"negative height", func(c *Collage) { c.Height = -5 }, "--height"},
		{"zero text size", func(c *Collage) { c.TextSize = 0 }, "--text-size"},
		{"negative padding", func(c *Collage) { c.Padding = -1 }, "--padding"},
		{"negative border", func(c *Collage) { c.Border = -1 }, "--border"},
		{"negative frame", func(c *Collage) { c.Frame = -2 }, "--frame"},
		{"negative per page", func(c *Collage) { c.PerPage = -1 }, "--per-page"},
		{"negative workers", func(c *Collage) { c.Workers = -1 }, "--workers"},
		{"opacity above one", func(c *Collage) { c.TextOpacity = 1.5 }, "--text-opacity"},
		{"opacity below zero", func(c *Collage) { c.TextOpacity = -0.1 }, "--text-opacity"},
		{"quality zero", func(c *Collage) { c.Quality = 0 }, "--quality"},
		{"bad alignment", func(c *Collage) { c.Align = Alignment{H: 7} }, "--align"},
		{"bad fit", func(c *Collage) { c.Fit = "stretch" }, "--fit"},
		{"bad grid", func(c *Collage) { c.Grid = "hex" }, "--grid"},
		{"bad sort", func(c *Collage) { c.Sort = "size" }, "--sort"},
		{"bad format", func(c *Collage) { c.Format = "gif" }, "--format"},
		{"empty date format", func(c *Collage) { c.DateFormat = "" }, "--date-format"},
		{"bad date format", func(c *Collage) { c.DateFormat = "%Q" }, "--date-format"},
		{"empty prefix", func(c *Collage) { c.Prefix = "" }, "--prefix"},
		{"prefix with slash", func(c *Collage) { c.Prefix = "a/b" }, "--prefix"},
		{"empty folder", func(c *Collage) { c.Input = "" }, "--folder"},
		{"empty output dir", func(c *Collage) { c.OutputDir = " " }, "--output-dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Fatalf("Validate() error = %v, want INVALID_CONFIGURATION", err)
			}
			if !strings.Contains(err.Error(), tt.wantFlag) {
				t.Errorf("Validate() error = %q, want it to name %s", err, tt.wantFlag)
			}
		})
	}
}

func TestValidateAcceptsZeroSpacing(t *testing.T) {
	cfg := Default()
	cfg.Padding, cfg.Border, cfg.Frame = 0, 0, 0
	cfg.TextOpacity = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestFormatSet(t *testing.T) {
	var f Format
	if err := f.Set("JPG"); err != nil {
		t.Fatalf("Set(JPG) error = %v", err)
	}
	if f != FormatJPEG {
		t.Errorf("Set(JPG) = %q, want %q", f, FormatJPEG)
	}
	if f.Ext() != ".jpg" {
		t.Errorf("Ext() = %q, want .jpg", f.Ext())
	}
	if err := f.Set("tiff"); err == nil {
		t.Error("Set(tiff) should fail")
	}
	if f != FormatJPEG {
		t.Errorf("failed Set modified value to %q", f)
	}
}

func TestWorkerCount(t *testing.T) {
	cfg := Default()
	cfg.Workers = 3
	if got := cfg.WorkerCount(); got != 3 {
		t.Errorf("WorkerCount() = %d, want 3", got)
	}
	cfg.Workers = 0
	if got := cfg.WorkerCount(); got < 1 {
		t.Errorf("WorkerCount() = %d, want >= 1", got)
	}
}
