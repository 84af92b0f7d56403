package errors

import (
	"strings"
	"testing"
)

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "collage", false},
		{"valid with dash", "summer-trip", false},
		{"valid with dot", "v1.2", false},
		{"valid unicode", "ferien_été", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"slash", "out/collage", true},
		{"backslash", `out\collage`, true},
		{"traversal", "..collage", true},
		{"control char", "col\x01lage", true},
		{"newline", "col\nlage", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfiguration) {
				t.Errorf("ValidatePrefix(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfiguration)
			}
		})
	}
}

func TestValidateDir(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "images", false},
		{"dot", ".", false},
		{"absolute", "/tmp/photos", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "img\x00s", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDir("folder", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
