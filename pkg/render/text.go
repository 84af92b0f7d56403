package render

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/layout"
)

// drawCaptions writes each caption in the top-left corner of its content
// area with a 1px shadow offset down and right. Text is drawn on a small
// scratch context the size of the caption band, which also clips it to the
// content area, and then composited onto the canvas.
func drawCaptions(canvas *image.RGBA, face font.Face, l *layout.Layout, tiles []image.Image, captions []string, cfg config.Collage) {
	margin := layout.InfoMargin(cfg.TextSize)
	band := 2*margin + layout.LineHeight(cfg.TextSize)
	for i, p := range l.Placements {
		if i >= len(captions) || captions[i] == "" || tiles[i] == nil {
			continue
		}
		box := p.Content
		box.Height = min(box.Height, band)

		dc := gg.NewContext(box.Width, box.Height)
		dc.SetFontFace(face)
		x, y := float64(margin), float64(margin)
		dc.SetRGBA(0, 0, 0, cfg.TextOpacity)
		dc.DrawStringAnchored(captions[i], x+1, y+1, 0, 1)
		dc.SetRGBA(1, 1, 1, cfg.TextOpacity)
		dc.DrawStringAnchored(captions[i], x, y, 0, 1)

		draw.Draw(canvas, box.Image(), dc.Image(), image.Point{}, draw.Over)
	}
}

// drawInfo writes up to layout.InfoLines lines into the strip, each
// vertically centered in its line slot.
func drawInfo(canvas *image.RGBA, face font.Face, strip layout.Rect, lines []string, cfg config.Collage) {
	margin := layout.InfoMargin(cfg.TextSize)
	lh := layout.LineHeight(cfg.TextSize)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetFontFace(face)
	dc.SetRGBA(1, 1, 1, cfg.TextOpacity)
	for i, line := range lines {
		if i == layout.InfoLines {
			break
		}
		x := float64(strip.X + margin)
		y := float64(strip.Y+margin+i*lh) + float64(lh)/2
		dc.DrawStringAnchored(line, x, y, 0, 0.5)
	}
}
