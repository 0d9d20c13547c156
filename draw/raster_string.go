package draw

// stringHasGlyphs reports whether any entry in f's glyph table has a
// nonzero width, the test that selects between cached rendering and
// the platform fallback (§4.3 "Fallback", §4.4).
func stringHasGlyphs(f *Font) bool {
	if f == nil {
		return false
	}
	for i := 0; i < len(f.glyphs)-1; i++ {
		if f.glyphs[i].width != 0 {
			return true
		}
	}
	return false
}

// drawString renders indices into dst starting pen p using font f
// backed by fontImg, colouring ink pixels from src sampled at sp
// (§4.3 "String"). When bg is non-nil it first fills the string's
// bounding band from bg sampled at bgp. It returns the final pen point.
func drawString(dst *Surface, clip Rectangle, src *Surface, sp Point, srcRepl bool, f *Font, fontImg *Surface, p Point, indices []uint16, bg *Surface, bgp Point, bgRepl bool, fallback FallbackDrawer, op Op) Point {
	sr, sg, sb, sa := sample(src, Pt(sp.X-src.r.Min.X, sp.Y-src.r.Min.Y), srcRepl)

	if !stringHasGlyphs(f) {
		text := make([]rune, 0, len(indices))
		for _, idx := range indices {
			text = append(text, rune(idx))
		}
		height := 13
		if f != nil {
			height = f.height
		}
		if bg != nil {
			br, bg2, bb, ba := sample(bg, Pt(bgp.X-bg.r.Min.X, bgp.Y-bg.r.Min.Y), bgRepl)
			w := len(text) * 7
			band := Rect(p.X, p.Y-height, p.X+w, p.Y)
			band, ok := band.Clip(clip)
			if ok {
				dst.fill(band, br, bg2, bb, ba)
			}
		}
		return fallback(height, string(text), sr, sg, sb, sa, dst, p)
	}

	// Precompute the advance so the background band can be painted
	// before any glyph ink (§4.3 "String" background variant).
	totalWidth := 0
	for _, idx := range indices {
		i := int(idx)
		if i < 0 || i+1 >= len(f.glyphs) {
			continue
		}
		g := f.glyphs[i]
		sentinel := f.glyphs[i+1]
		if g.width == 0 || sentinel.x <= g.x {
			continue
		}
		totalWidth += int(g.width)
	}

	if bg != nil {
		br, bgc, bb, ba := sample(bg, Pt(bgp.X-bg.r.Min.X, bgp.Y-bg.r.Min.Y), bgRepl)
		band := Rect(p.X, p.Y-f.height, p.X+totalWidth, p.Y)
		band, ok := band.Clip(clip)
		if ok {
			dst.fill(band, br, bgc, bb, ba)
		}
	}

	penX := p.X
	for _, idx := range indices {
		i := int(idx)
		if i < 0 || i+1 >= len(f.glyphs) {
			continue
		}
		g := f.glyphs[i]
		sentinel := f.glyphs[i+1]
		if g.width == 0 || sentinel.x <= g.x {
			continue
		}
		srcRect := Rect(g.x, g.top, sentinel.x, g.bottom)
		dstOrigin := Pt(penX+int(g.left), p.Y-f.ascent+g.top)
		for y := srcRect.Min.Y; y < srcRect.Max.Y; y++ {
			for x := srcRect.Min.X; x < srcRect.Max.X; x++ {
				gp := Pt(x, y)
				if !gp.In(fontImg.r) {
					continue
				}
				_, _, _, ga := fontImg.at(gp)
				if ga == 0 {
					continue
				}
				dp := Pt(dstOrigin.X+(x-srcRect.Min.X), dstOrigin.Y+(y-srcRect.Min.Y))
				if !dp.In(clip) {
					continue
				}
				dr, dg, db, da := dst.at(dp)
				nr, ng, nb, na := composite(op, sr, sg, sb, sa, dr, dg, db, da, ga)
				dst.set(dp, nr, ng, nb, na)
			}
		}
		penX += int(g.width)
	}
	return Pt(penX, p.Y)
}
