package io

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/collage/pkg/errors"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.png", true},
		{"a.webp", true},
		{"a.TIF", true},
		{"a.txt", false},
		{"jpg", false},
		{"a.jpg.bak", false},
	}
	for _, tt := range tests {
		if got := IsSupported(tt.name); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "b.png", 2, 2)
	writePNG(t, dir, "a.png", 2, 2)
	writePNG(t, dir, ".hidden.png", 2, 2)
	writeFile(t, dir, "notes.txt", "x")
	writeFile(t, dir, "C.JPG", "not really a jpeg")
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	want := []string{"C.JPG", "a.png", "b.png"}
	if !slices.Equal(names, want) {
		t.Errorf("Scan() = %v, want %v", names, want)
	}
}

func TestScanEmpty(t *testing.T) {
	got, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Scan() = %v, want empty", got)
	}
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("Scan() error = %v, want INVALID_CONFIGURATION", err)
	}
}
