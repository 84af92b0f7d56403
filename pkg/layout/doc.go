// Package layout maps a sequence of images onto a fixed-size canvas.
//
// # Overview
//
// Given the pixel sizes of N source images and a validated
// [config.Collage], [Compute] decides the grid shape, cuts the canvas into
// cells and resolves, for every image, the integer rectangle its pixels are
// drawn into. The result is a [Layout] that the renderer can composite
// without any further arithmetic.
//
// # Grid Selection
//
// With the default [config.GridFit] policy the grid has exactly N cells:
// among the divisor pairs rows×cols = N, the pair whose aspect cols/rows is
// closest to the canvas aspect width/height wins. Distance is measured in
// log space, |ln(cols/rows) − ln(width/height)|, so a grid twice too wide
// and one twice too tall score the same; an exact tie goes to fewer rows.
//
// [config.GridSquare] keeps floor(√N) columns and adds rows as needed,
// leaving trailing cells empty.
//
// # Cell Geometry
//
// The usable area is the canvas minus the border on all four sides. Cells
// are floor((usable − (n−1)·padding) / n) wide; the last column (and row)
// absorbs the rounding residue so that cells, padding and border add up to
// the canvas size exactly.
//
// # Fitting
//
// One policy applies to every image of a run:
//
//   - [config.FitContain]: the image is scaled, up or down, to the largest
//     size that fits the cell and anchored by the configured alignment.
//   - [config.FitFill]: the image covers the cell; the renderer
//     center-crops the overflow. Alignment is not used.
//
// A per-image frame sits inside the cell and wraps the image content.
//
// # Errors
//
// [Compute] returns INVALID_CONFIGURATION for invalid configs, EMPTY_INPUT
// for zero images and CANVAS_TOO_SMALL when padding, border and frame leave
// less than one pixel per cell.
package layout
