package layout

import (
	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/errors"
)

// InfoLines is the number of text lines in the info strip.
const InfoLines = 4

// LineHeight returns the line advance used for text of the given size.
func LineHeight(textSize int) int { return (3*textSize + 1) / 2 }

// InfoMargin returns the inner margin of the info strip.
func InfoMargin(textSize int) int { return (textSize + 1) / 2 }

// InfoStripHeight returns the height of the info strip appended below the
// grid when the info box is enabled.
func InfoStripHeight(textSize int) int {
	return InfoLines*LineHeight(textSize) + 2*InfoMargin(textSize)
}

// CanvasSize returns the size of the output image: the grid area plus the
// info strip when enabled.
func CanvasSize(cfg config.Collage) Size {
	s := Size{Width: cfg.Width, Height: cfg.Height}
	if cfg.InfoBox {
		s.Height += InfoStripHeight(cfg.TextSize)
	}
	return s
}

// Compute lays out images, in order, on the canvas described by cfg.
// The result is deterministic: identical inputs give identical layouts.
func Compute(images []Size, cfg config.Collage) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no images to lay out")
	}
	for i, s := range images {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, errors.New(errors.ErrCodeImageDecode, "image %d has invalid size %s", i, s)
		}
	}

	grid, err := ChooseGrid(len(images), float64(cfg.Width)/float64(cfg.Height), cfg.Grid)
	if err != nil {
		return nil, err
	}

	area := Rect{X: cfg.Border, Y: cfg.Border, Width: cfg.Width - 2*cfg.Border, Height: cfg.Height - 2*cfg.Border}
	cols, colErr := split(area.X, area.Width, grid.Columns, cfg.Padding)
	rows, rowErr := split(area.Y, area.Height, grid.Rows, cfg.Padding)
	if colErr || rowErr {
		return nil, tooSmall(cfg, grid, area)
	}
	// The first span of each axis is the smallest one.
	if cols[0].size-2*cfg.Frame < 1 || rows[0].size-2*cfg.Frame < 1 {
		return nil, tooSmall(cfg, grid, area)
	}

	l := &Layout{
		Canvas:     CanvasSize(cfg),
		Area:       area,
		Grid:       grid,
		Cells:      make([]Cell, 0, grid.Cells()),
		Placements: make([]Placement, 0, len(images)),
	}
	if cfg.InfoBox {
		l.InfoStrip = Rect{X: 0, Y: cfg.Height, Width: cfg.Width, Height: InfoStripHeight(cfg.TextSize)}
	}

	for r, row := range rows {
		for c, col := range cols {
			l.Cells = append(l.Cells, Cell{
				Row:    r,
				Column: c,
				Box:    Rect{X: col.pos, Y: row.pos, Width: col.size, Height: row.size},
			})
		}
	}

	for i, src := range images {
		l.Placements = append(l.Placements, place(i, src, l.Cells[i].Box, cfg))
	}
	return l, nil
}

// span is one column or row: its start coordinate and extent.
type span struct {
	pos, size int
}

// split divides total pixels starting at origin into n spans separated by
// gap. Every span gets the floored share; the last also takes the residue.
// It reports true when a span would be smaller than one pixel.
func split(origin, total, n, gap int) ([]span, bool) {
	avail := total - (n-1)*gap
	base := avail / n
	if avail <= 0 || base < 1 {
		return nil, true
	}

	spans := make([]span, n)
	pos := origin
	for i := range spans {
		size := base
		if i == n-1 {
			size += avail - base*n
		}
		spans[i] = span{pos: pos, size: size}
		pos += size + gap
	}
	return spans, false
}

func tooSmall(cfg config.Collage, grid Grid, area Rect) error {
	cellW := (area.Width - (grid.Columns-1)*cfg.Padding) / max(grid.Columns, 1)
	cellH := (area.Height - (grid.Rows-1)*cfg.Padding) / max(grid.Rows, 1)
	return errors.New(errors.ErrCodeCanvasTooSmall,
		"a %dx%d canvas cannot hold a %s grid: cells would be %dx%d px with %d px frame",
		cfg.Width, cfg.Height, grid, cellW, cellH, cfg.Frame).
		WithHint("reduce --padding, --border or --frame, or increase --width/--height")
}
