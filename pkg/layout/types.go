package layout

import (
	"fmt"
	"image"
)

// Size is the pixel size of an image or area.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String formats s as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Landscape reports whether s is wider than tall.
func (s Size) Landscape() bool { return s.Width > s.Height }

// Portrait reports whether s is taller than wide.
func (s Size) Portrait() bool { return s.Height > s.Width }

// Swap returns s rotated by 90 degrees.
func (s Size) Swap() Size { return Size{Width: s.Height, Height: s.Width} }

// Rect is an axis-aligned rectangle in canvas pixels. X and Y are the
// top-left corner; the right and bottom edges are exclusive.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Size returns the dimensions of r.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Inset shrinks r by d on every side. A negative d grows it.
func (r Rect) Inset(d int) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

// String formats r as "WxH+X+Y".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Grid is the number of rows and columns of a collage.
type Grid struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Cells returns the number of grid positions.
func (g Grid) Cells() int { return g.Rows * g.Columns }

// String formats g as "rows×columns".
func (g Grid) String() string { return fmt.Sprintf("%d×%d", g.Rows, g.Columns) }

// Cell is one grid position.
type Cell struct {
	Row    int  `json:"row"`
	Column int  `json:"column"`
	Box    Rect `json:"box"`
}

// Placement tells the renderer where one source image goes.
type Placement struct {
	Index   int  `json:"index"`   // position in the input sequence
	Source  Size `json:"source"`  // size of the decoded source image
	Rotated bool `json:"rotated"` // rotate the source 90° counter-clockwise before scaling
	Cell    Rect `json:"cell"`    // the cell assigned to the image
	Dest    Rect `json:"dest"`    // drawn area including the frame
	Content Rect `json:"content"` // area covered by image pixels
}

// Layout is the fully resolved geometry of one collage.
type Layout struct {
	Canvas     Size        `json:"canvas"`               // full output size
	Area       Rect        `json:"area"`                 // usable grid area inside the border
	Grid       Grid        `json:"grid"`                 // chosen shape
	Cells      []Cell      `json:"cells"`                // every grid position in row-major order
	Placements []Placement `json:"placements"`           // one per input image, in input order
	InfoStrip  Rect        `json:"info_strip,omitempty"` // reserved info box area, empty when disabled
}
