package draw

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FallbackDrawer renders text when a font's glyph cache has no usable
// entries (§4.3 "Fallback", §9 "Font fallback as a capability"). It
// draws into dst starting at pen and returns the end pen position.
type FallbackDrawer func(height int, text string, cr, cg, cb, ca byte, dst *Surface, pen Point) Point

// platformFallback is the default FallbackDrawer, backed by a fixed
// monospace bitmap face. It ignores height and always draws at
// basicfont's single fixed size; callers needing different sizes
// supply their own FallbackDrawer.
func platformFallback(height int, text string, cr, cg, cb, ca byte, dst *Surface, pen Point) Point {
	face := basicfont.Face7x13
	advance := font.MeasureString(face, text)
	w := int(advance >> 6)
	if w <= 0 {
		return pen
	}
	h := face.Metrics().Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(stdcolor.RGBA{cr, cg, cb, ca}),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(face.Metrics().Ascent.Ceil())},
	}
	d.DrawString(text)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dp := Pt(pen.X+x, pen.Y-face.Metrics().Ascent.Ceil()+y)
			if !dp.In(dst.r) {
				continue
			}
			dr, dg, db, da := dst.at(dp)
			coverage := byte(a >> 8)
			nr, ng, nb, na := composite(SoverD, cr, cg, cb, ca, dr, dg, db, da, coverage)
			dst.set(dp, nr, ng, nb, na)
		}
	}
	return Pt(pen.X+w, pen.Y)
}
