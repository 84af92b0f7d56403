package fonts

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/collage/pkg/errors"
)

func TestDefaultFace(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if f.Name() != DefaultName {
		t.Errorf("Name() = %q, want %q", f.Name(), DefaultName)
	}

	small, err := f.Face(16)
	if err != nil {
		t.Fatalf("Face(16) error: %v", err)
	}
	defer small.Close()
	large, err := f.Face(64)
	if err != nil {
		t.Fatalf("Face(64) error: %v", err)
	}
	defer large.Close()

	if s, l := small.Metrics().Height, large.Metrics().Height; l <= s {
		t.Errorf("64px line height %v not larger than 16px line height %v", l, s)
	}
}

func TestDefaultIsShared(t *testing.T) {
	a, _ := Default()
	b, _ := Default()
	if a.f != b.f {
		t.Error("Default() parsed the embedded font twice")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "none.ttf")},
		{"not a font", "fonts_test.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Errorf("Load(%q) error = %v, want INVALID_CONFIGURATION", tt.path, err)
			}
		})
	}
}
