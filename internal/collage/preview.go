package collage

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Preview scales img down to fit within maxEdge on both axes, keeping
// the aspect ratio. Images already within bounds are returned as a
// plain RGBA copy.
func Preview(img image.Image, maxEdge int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if maxEdge > 0 && (w > maxEdge || h > maxEdge) {
		longest := w
		if h > longest {
			longest = h
		}
		scale := float64(maxEdge) / float64(longest)
		w = int(float64(w) * scale)
		h = int(float64(h) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
