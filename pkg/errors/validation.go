package errors

import (
	"strings"
	"unicode"
)

// ValidatePrefix validates an output filename prefix.
// The prefix becomes part of a file name, so it must be a plain name:
//   - No empty prefix
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidConfiguration, "--prefix: cannot be empty")
	}

	if len(prefix) > 128 {
		return New(ErrCodeInvalidConfiguration, "--prefix: too long (max 128 characters)")
	}

	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfiguration, "--prefix: contains control characters")
		}
	}

	if strings.ContainsAny(prefix, `/\`) || strings.Contains(prefix, "..") {
		return New(ErrCodeInvalidConfiguration, "--prefix: %q must not contain path separators", prefix)
	}

	return nil
}

// ValidateDir validates a directory flag value.
// Existence is checked by the caller; this only rejects values that can
// never name a directory.
func ValidateDir(flag, dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidConfiguration, "--%s: cannot be empty", flag)
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfiguration, "--%s: contains invalid characters", flag)
		}
	}

	return nil
}
