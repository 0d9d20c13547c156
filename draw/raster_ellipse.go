package draw

import "math"

// ellipseParams bundles the shape parameters shared by ellipse, filled
// ellipse, and arc (§4.3).
type ellipseParams struct {
	center     Point
	a, b       int // x- and y-radius
	thick      int // negative or filled means a solid fill
	filled     bool
	alpha, phi int // arc extent and start, degrees*64; unused outside arc
	isArc      bool
}

// inEllipseBand reports whether pt falls within the ellipse's stroked
// band (or its filled interior) described by p.
func inEllipseBand(p ellipseParams, pt Point) bool {
	dx := float64(pt.X-p.center.X) / float64(max1(p.a))
	dy := float64(pt.Y-p.center.Y) / float64(max1(p.b))
	d2 := dx*dx + dy*dy
	if p.filled || p.thick < 0 {
		return d2 <= 1
	}
	thick := p.thick
	if thick < 1 {
		thick = 1
	}
	// Approximate the band by testing against an inner and outer ellipse
	// offset by thick pixels, expressed in normalised radius units.
	outerA, outerB := float64(p.a), float64(p.b)
	innerA, innerB := outerA-float64(thick), outerB-float64(thick)
	if innerA < 0 {
		innerA = 0
	}
	if innerB < 0 {
		innerB = 0
	}
	odx := float64(pt.X-p.center.X) / max1f(outerA)
	ody := float64(pt.Y-p.center.Y) / max1f(outerB)
	idx := float64(pt.X-p.center.X) / max1f(innerA)
	idy := float64(pt.Y-p.center.Y) / max1f(innerB)
	return odx*odx+ody*ody <= 1 && idx*idx+idy*idy >= 1
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func max1f(n float64) float64 {
	if n < 1 {
		return 1
	}
	return n
}

// angleOf returns the angle of pt around p.center in 64ths of a degree,
// measured counter-clockwise from the positive x-axis, normalised to
// [0, 23040) (§9 "Arc angles").
func angleOf(center, pt Point) int {
	rad := math.Atan2(float64(-(pt.Y - center.Y)), float64(pt.X-center.X))
	deg := rad * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return int(deg * 64)
}

// inArcSlice reports whether the angle from center to pt falls within
// [phi, phi+|alpha|], both ends included (§4.3 "Arc"). A negative alpha
// is taken as its magnitude, so the slice always runs counter-clockwise
// from phi.
func inArcSlice(center Point, phi, alpha int, pt Point) bool {
	a := angleOf(center, pt)
	start := ((phi % 23040) + 23040) % 23040
	span := alpha
	if span < 0 {
		span = -span
	}
	rel := a - start
	if rel < 0 {
		rel += 23040
	}
	return rel <= span
}

// drawEllipse paints an ellipse or arc per p, clipped to clip, with a
// flat colour sampled once from src at sp.
func drawEllipse(dst *Surface, clip Rectangle, p ellipseParams, src *Surface, sp Point, srcRepl bool, op Op) {
	sr, sg, sb, sa := sample(src, Pt(sp.X-src.r.Min.X, sp.Y-src.r.Min.Y), srcRepl)

	bbox := Rect(p.center.X-p.a-1, p.center.Y-p.b-1, p.center.X+p.a+2, p.center.Y+p.b+2)
	bbox, ok := bbox.Clip(clip)
	if !ok {
		return
	}
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		for x := bbox.Min.X; x < bbox.Max.X; x++ {
			pt := Pt(x, y)
			if !inEllipseBand(p, pt) {
				continue
			}
			if p.isArc {
				inSlice := inArcSlice(p.center, p.phi, p.alpha, pt)
				if !inSlice {
					if !(p.filled && pt.Eq(p.center)) {
						continue
					}
				}
			}
			dr, dg, db, da := dst.at(pt)
			nr, ng, nb, na := composite(op, sr, sg, sb, sa, dr, dg, db, da, 255)
			dst.set(pt, nr, ng, nb, na)
		}
	}
}
