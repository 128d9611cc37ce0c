//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps rasterized history in a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a w*h pixel raster.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the painter image with src. Rasters of the wrong size
// are ignored.
func (gp *GridPainter) Upload(src *image.RGBA) {
	if src == nil || src.Rect.Dx() != gp.w || src.Rect.Dy() != gp.h {
		return
	}
	gp.img.WritePixels(src.Pix)
}

// Blit draws the top rows pixel rows of the painter image onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, rows int) {
	rows = max(0, min(rows, gp.h))
	if rows == 0 {
		return
	}
	part := gp.img.SubImage(image.Rect(0, 0, gp.w, rows)).(*ebiten.Image)
	dst.DrawImage(part, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
