package draw

// sample reads the pixel of surf that corresponds to destination offset
// off from the blit's origin, honouring replication (§3 "Replication",
// §4.3 "Blit"): when repl is set, the offset wraps modulo surf's
// extent.
func sample(surf *Surface, off Point, repl bool) (r, g, b, a byte) {
	w, h := surf.r.Dx(), surf.r.Dy()
	x, y := off.X, off.Y
	if repl {
		if w > 0 {
			x = ((x % w) + w) % w
		} else {
			x = 0
		}
		if h > 0 {
			y = ((y % h) + h) % h
		} else {
			y = 0
		}
	}
	p := Pt(surf.r.Min.X+x, surf.r.Min.Y+y)
	if !p.In(surf.r) {
		return 0, 0, 0, 0
	}
	return surf.at(p)
}

// blit composites src over dst within dstR, gated by mask's coverage
// when mask is non-nil (§4.3 "Blit"). origin is the command's original
// r.min — offsets into src/mask are measured from origin, not from
// dstR.Min, so that clipping dstR never shifts the sampled source
// pixels. dstR must already be clipped by the caller to the
// destination's clip/extent and to the current op-target.
func blit(dst *Surface, dstR Rectangle, origin Point, src *Surface, sp Point, srcRepl bool, mask *Surface, mp Point, maskRepl bool, op Op) {
	for y := dstR.Min.Y; y < dstR.Max.Y; y++ {
		for x := dstR.Min.X; x < dstR.Max.X; x++ {
			dpt := Pt(x, y)
			off := Point{x - origin.X, y - origin.Y}
			sr, sg, sb, sa := sample(src, Point{sp.X - src.r.Min.X + off.X, sp.Y - src.r.Min.Y + off.Y}, srcRepl)
			coverage := byte(255)
			if mask != nil {
				_, _, _, ma := sample(mask, Point{mp.X - mask.r.Min.X + off.X, mp.Y - mask.r.Min.Y + off.Y}, maskRepl)
				coverage = ma
			}
			dr, dg, db, da := dst.at(dpt)
			nr, ng, nb, na := composite(op, sr, sg, sb, sa, dr, dg, db, da, coverage)
			dst.set(dpt, nr, ng, nb, na)
		}
	}
}
