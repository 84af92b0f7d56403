package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/fonts"
	"github.com/matzehuels/collage/pkg/layout"
)

// infoBand is the translucent fill behind the info strip text.
var infoBand = color.NRGBA{R: 128, G: 128, B: 128, A: 128}

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	font     *fonts.Font
	captions []string
	info     []string
}

// WithFont sets the typeface for captions and the info strip.
// The embedded default font is used otherwise.
func WithFont(f *fonts.Font) Option { return func(r *renderer) { r.font = f } }

// WithCaptions draws captions[i] in the corner of placement i.
// Empty entries are skipped.
func WithCaptions(captions []string) Option { return func(r *renderer) { r.captions = captions } }

// WithInfo sets the info strip text. It is ignored when the layout has no
// info strip.
func WithInfo(lines []string) Option { return func(r *renderer) { r.info = lines } }

// Prepare rotates img if the placement asks for it and resamples it to the
// placement's content size.
func Prepare(img image.Image, p layout.Placement, fit config.FitMode) image.Image {
	if p.Rotated {
		img = imaging.Rotate90(img)
	}
	w, h := p.Content.Width, p.Content.Height
	if fit == config.FitFill {
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Render draws l onto a new canvas of l.Canvas size. tiles[i] is the image
// for l.Placements[i]; nil tiles leave their cell empty. Tiles whose size
// does not match the placement are passed through [Prepare] first.
func Render(l *layout.Layout, tiles []image.Image, cfg config.Collage, opts ...Option) (*image.RGBA, error) {
	if l == nil {
		return nil, errors.New(errors.ErrCodeInternal, "render: nil layout")
	}
	if len(tiles) != len(l.Placements) {
		return nil, errors.New(errors.ErrCodeInternal, "render: %d tiles for %d placements", len(tiles), len(l.Placements))
	}

	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, l.Canvas.Width, l.Canvas.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	for i, p := range l.Placements {
		if tiles[i] == nil {
			continue
		}
		drawTile(canvas, tiles[i], p, cfg)
	}

	needText := cfg.TextOpacity > 0 && (hasText(r.captions) || (!l.InfoStrip.Empty() && len(r.info) > 0))
	if !l.InfoStrip.Empty() {
		draw.Draw(canvas, l.InfoStrip.Image(), image.NewUniform(infoBand), image.Point{}, draw.Over)
	}
	if !needText {
		return canvas, nil
	}

	face, err := r.face(cfg.TextSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	drawCaptions(canvas, face, l, tiles, r.captions, cfg)
	if !l.InfoStrip.Empty() {
		drawInfo(canvas, face, l.InfoStrip, r.info, cfg)
	}
	return canvas, nil
}

func (r *renderer) face(px int) (font.Face, error) {
	f := r.font
	if f == nil {
		var err error
		if f, err = fonts.Default(); err != nil {
			return nil, err
		}
	}
	return f.Face(px)
}

func drawTile(canvas *image.RGBA, tile image.Image, p layout.Placement, cfg config.Collage) {
	if cfg.Frame > 0 && cfg.FrameColor.A > 0 {
		draw.Draw(canvas, p.Dest.Image(), image.NewUniform(cfg.FrameColor), image.Point{}, draw.Over)
	}
	if tile.Bounds().Size() != p.Content.Image().Size() {
		tile = Prepare(tile, p, cfg.Fit)
	}
	draw.Draw(canvas, p.Content.Image(), tile, tile.Bounds().Min, draw.Over)
}

func hasText(lines []string) bool {
	for _, s := range lines {
		if s != "" {
			return true
		}
	}
	return false
}
