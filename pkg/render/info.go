package render

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/layout"
)

// InfoLines returns the layout.InfoLines lines of the info strip for page
// (1-based) of pages: the date now formatted with cfg.DateFormat, then the
// grid and page, the canvas geometry and colors, and the placement and text
// settings.
func InfoLines(cfg config.Collage, l *layout.Layout, page, pages int, now time.Time) ([]string, error) {
	f, err := strftime.New(cfg.DateFormat)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "--date-format: invalid pattern %q", cfg.DateFormat)
	}
	return []string{
		f.FormatString(now),
		fmt.Sprintf("%d images | grid %s | page %d of %d", len(l.Placements), l.Grid, page, pages),
		fmt.Sprintf("canvas %s | padding %d | border %d | frame %d (%s) | background %s",
			l.Canvas, cfg.Padding, cfg.Border, cfg.Frame, cfg.FrameColor, cfg.Background),
		fmt.Sprintf("align %s | fit %s | grid policy %s | text %dpx at %.2f | date %s | prefix %s",
			cfg.Align, cfg.Fit, cfg.Grid, cfg.TextSize, cfg.TextOpacity, cfg.DateFormat, cfg.Prefix),
	}, nil
}

// Caption formats a capture date for a per-image caption.
func Caption(cfg config.Collage, taken time.Time) (string, error) {
	if taken.IsZero() {
		return "", nil
	}
	s, err := strftime.Format(cfg.DateFormat, taken)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "--date-format: invalid pattern %q", cfg.DateFormat)
	}
	return s, nil
}
