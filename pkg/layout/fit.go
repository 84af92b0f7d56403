package layout

import "github.com/matzehuels/collage/pkg/config"

// place resolves the placement of image i with source size src in cell.
func place(i int, src Size, cell Rect, cfg config.Collage) Placement {
	p := Placement{Index: i, Source: src, Cell: cell}
	box := cell.Inset(cfg.Frame)

	eff := src
	if cfg.AutoRotate && needsRotation(src, box.Size()) {
		p.Rotated = true
		eff = src.Swap()
	}

	switch cfg.Fit {
	case config.FitFill:
		p.Content = box
	default:
		fitted := FitSize(eff, box.Size())
		p.Content = Rect{
			X:      box.X + offset(box.Width-fitted.Width, int(cfg.Align.H)),
			Y:      box.Y + offset(box.Height-fitted.Height, int(cfg.Align.V)),
			Width:  fitted.Width,
			Height: fitted.Height,
		}
	}
	p.Dest = p.Content.Inset(-cfg.Frame)
	return p
}

// FitSize returns the largest size with the aspect ratio of src that fits
// in box. Both dimensions are at least one pixel and never exceed box.
func FitSize(src, box Size) Size {
	// Compare src.W/src.H against box.W/box.H without floating point.
	if src.Width*box.Height >= src.Height*box.Width {
		return Size{Width: box.Width, Height: max(1, src.Height*box.Width/src.Width)}
	}
	return Size{Width: max(1, src.Width*box.Height/src.Height), Height: box.Height}
}

// needsRotation reports whether src and box disagree on orientation.
// Square sizes never trigger a rotation.
func needsRotation(src, box Size) bool {
	return (src.Landscape() && box.Portrait()) || (src.Portrait() && box.Landscape())
}

// offset distributes residual space for an anchor: 0 start, 1 center, 2 end.
// HAlign and VAlign share this ordering.
func offset(residual, anchor int) int {
	switch anchor {
	case 0:
		return 0
	case 2:
		return residual
	}
	return residual / 2
}
