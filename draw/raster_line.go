package draw

import "math"

// strokeContains reports whether pt lies within a stroke of half-width
// rad along the segment p0-p1, honouring the two independent end caps
// (§4.3 "Line"). Endarrow is approximated as Enddisc, as the spec
// permits.
func strokeContains(p0, p1 Point, rad int, cap0, cap1 int, pt Point) bool {
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	length := math.Hypot(dx, dy)
	r := float64(rad)
	if r < 0.5 {
		r = 0.5
	}
	if length == 0 {
		dist := math.Hypot(float64(pt.X-p0.X), float64(pt.Y-p0.Y))
		return dist <= r
	}
	rx, ry := float64(pt.X-p0.X), float64(pt.Y-p0.Y)
	t := (rx*dx + ry*dy) / (length * length)
	perp := math.Abs(rx*dy-ry*dx) / length

	if t < 0 {
		if cap0&Endmask == Endsquare {
			return t >= -r/length && perp <= r
		}
		return math.Hypot(float64(pt.X-p0.X), float64(pt.Y-p0.Y)) <= r
	}
	if t > 1 {
		if cap1&Endmask == Endsquare {
			return t <= 1+r/length && perp <= r
		}
		return math.Hypot(float64(pt.X-p1.X), float64(pt.Y-p1.Y)) <= r
	}
	return perp <= r
}

// strokeBBox returns the pixel bounding box of a stroke of half-width
// rad along p0-p1.
func strokeBBox(p0, p1 Point, rad int) Rectangle {
	minx, maxx := p0.X, p1.X
	if minx > maxx {
		minx, maxx = maxx, minx
	}
	miny, maxy := p0.Y, p1.Y
	if miny > maxy {
		miny, maxy = maxy, miny
	}
	return Rect(minx-rad-1, miny-rad-1, maxx+rad+2, maxy+rad+2)
}

// drawLine strokes the segment p0-p1 with the given radius and end
// caps, painting into dst within clip using the flat colour sampled
// from src at sp (§4.3 "Line").
func drawLine(dst *Surface, clip Rectangle, p0, p1 Point, end0, end1, radius int, src *Surface, sp Point, srcRepl bool, op Op) {
	// stroke width is max(1, 2*radius); the geometry test uses the
	// half-width directly, falling back to a single pixel at radius 0.
	half := radius
	if half < 0 {
		half = 0
	}

	sr, sg, sb, sa := sample(src, Pt(sp.X-src.r.Min.X, sp.Y-src.r.Min.Y), srcRepl)

	bbox := strokeBBox(p0, p1, half)
	bbox, ok := bbox.Clip(clip)
	if !ok {
		return
	}
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			pt := Pt(x, y)
			if !strokeContains(p0, p1, half, end0, end1, pt) {
				continue
			}
			dr, dg, db, da := dst.at(pt)
			nr, ng, nb, na := composite(op, sr, sg, sb, sa, dr, dg, db, da, 255)
			dst.set(pt, nr, ng, nb, na)
		}
	}
}
