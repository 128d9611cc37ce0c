package render

import (
	"image"
	"image/color"
)

// fillBinaryRGBA converts sampled cells into RGBA pixels in buf, repeating
// each sample as a scale by scale block.
func fillBinaryRGBA(buf []byte, stride int, s *Sampler, on, off color.Color, scale int) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	fg := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	bg := [4]byte{uint8(rOff >> 8), uint8(gOff >> 8), uint8(bOff >> 8), uint8(aOff >> 8)}

	w, h := s.Bounds()
	for y := 0; y < h; y++ {
		line := buf[y*scale*stride:]
		for x := 0; x < w; x++ {
			px := bg
			if s.At(x, y) {
				px = fg
			}
			for dx := 0; dx < scale; dx++ {
				copy(line[(x*scale+dx)*4:], px[:])
			}
		}
		for dy := 1; dy < scale; dy++ {
			copy(buf[(y*scale+dy)*stride:], line[:w*scale*4])
		}
	}
}

// Rasterize samples the history into a new image, scaling every sample to
// a scale by scale block. Scales below one are treated as one.
func Rasterize(s *Sampler, on, off color.Color, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	w, h := s.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	fillBinaryRGBA(img.Pix, img.Stride, s, on, off, scale)
	return img
}

// Foreground and Background are the default cell colors: set cells are
// black on white.
var (
	Foreground color.Color = color.Black
	Background color.Color = color.White
)
