// Package render draws a computed layout onto a canvas.
//
// # Overview
//
// Rendering is the step after [layout.Compute]: every geometric decision has
// already been made, and this package only turns rectangles into pixels.
//
//   - [Prepare] rotates and resamples one source image to its placement
//   - [Render] fills the canvas, draws frames and tiles, then text
//   - [InfoLines] builds the four lines shown in the info strip
//
// # Resampling
//
// Images are resized with the Lanczos filter from disintegration/imaging.
// In fit mode the image is scaled to exactly the content rectangle chosen by
// the layout engine; in fill mode it is scaled to cover the content
// rectangle and center-cropped. [Prepare] is safe to call from several
// goroutines, so callers typically run it on the decode workers.
//
// # Text
//
// Captions and the info strip are drawn with fogleman/gg in white at the
// configured text opacity. Captions get a one pixel black shadow so they remain
// legible on bright photos; the info strip sits on a translucent gray band.
//
//	img, err := render.Render(l, tiles, cfg,
//	    render.WithCaptions(dates),
//	    render.WithInfo(lines),
//	)
//
// [layout.Compute]: github.com/matzehuels/collage/pkg/layout.Compute
package render
