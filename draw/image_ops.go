package draw

// Draw composites src over dst within r using the SoverD operator,
// gated by mask's coverage when mask is non-nil (nil means no mask).
// It is a convenience wrapper around the same blit used
// by the 'd' opcode, for callers (tests, Border) that hold Image
// values directly rather than driving them through a Rasterizer.
func (dst *Image) Draw(r Rectangle, src, mask *Image, sp Point) {
	dst.DrawOp(r, src, mask, sp, SoverD)
}

// DrawOp is Draw with an explicit compositing operator (§4.3 "Blit").
func (dst *Image) DrawOp(r Rectangle, src, mask *Image, sp Point, op Op) {
	target, ok := r.Clip(dst.clipr)
	if !ok {
		return
	}
	var maskSurf *Surface
	maskRepl := false
	if mask != nil {
		maskSurf = mask.surface
		maskRepl = mask.repl
	}
	blit(dst.surface, target, r.Min, src.surface, sp, src.repl, maskSurf, ZP, maskRepl, op)
}
