package draw

// decodePoly reads n+1 points from d using delta-coord per axis, with
// independent x/y accumulators both seeded at zero (§4.1, §9 "Polygon
// coord seed").
func decodePoly(d *Decoder, n int) ([]Point, error) {
	pts := make([]Point, n+1)
	px, py := 0, 0
	for i := 0; i <= n; i++ {
		x, err := d.Delta(px)
		if err != nil {
			return nil, err
		}
		y, err := d.Delta(py)
		if err != nil {
			return nil, err
		}
		px, py = x, y
		pts[i] = Pt(x, y)
	}
	return pts, nil
}

// drawPolyOutline strokes the open polyline through pts, applying end0
// to the very first vertex and end1 to the very last, with rounded
// interior joins.
func drawPolyOutline(dst *Surface, clip Rectangle, pts []Point, end0, end1, radius int, src *Surface, sp Point, srcRepl bool, op Op) {
	for i := 0; i+1 < len(pts); i++ {
		e0, e1 := Enddisc, Enddisc
		if i == 0 {
			e0 = end0
		}
		if i+2 == len(pts) {
			e1 = end1
		}
		drawLine(dst, clip, pts[i], pts[i+1], e0, e1, radius, src, sp, srcRepl, op)
	}
}

// drawPolyFilled rasterizes the filled polygon through pts using a
// scanline fill with the requested winding rule (§4.3 "Polygon").
func drawPolyFilled(dst *Surface, clip Rectangle, pts []Point, wind int, src *Surface, sp Point, srcRepl bool, op Op) {
	if len(pts) < 3 {
		return
	}
	sr, sg, sb, sa := sample(src, Pt(sp.X-src.r.Min.X, sp.Y-src.r.Min.Y), srcRepl)

	miny, maxy := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.Y < miny {
			miny = p.Y
		}
		if p.Y > maxy {
			maxy = p.Y
		}
	}
	if miny < clip.Min.Y {
		miny = clip.Min.Y
	}
	if maxy > clip.Max.Y {
		maxy = clip.Max.Y
	}

	type crossing struct {
		x  float64
		dir int
	}

	for y := miny; y < maxy; y++ {
		yc := float64(y) + 0.5
		var xs []crossing
		for i := 0; i < len(pts); i++ {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			ay, by := float64(a.Y), float64(b.Y)
			if (yc >= ay && yc < by) || (yc >= by && yc < ay) {
				t := (yc - ay) / (by - ay)
				x := float64(a.X) + t*float64(b.X-a.X)
				dir := 1
				if by < ay {
					dir = -1
				}
				xs = append(xs, crossing{x, dir})
			}
		}
		if len(xs) == 0 {
			continue
		}
		for i := 1; i < len(xs); i++ {
			for j := i; j > 0 && xs[j-1].x > xs[j].x; j-- {
				xs[j-1], xs[j] = xs[j], xs[j-1]
			}
		}
		winding := 0
		for i := 0; i < len(xs); i++ {
			if wind == 0 {
				winding ^= 1
			} else {
				winding += xs[i].dir
			}
			if !insideByRule(winding, wind) || i+1 >= len(xs) {
				continue
			}
			start := int(xs[i].x + 0.5)
			end := int(xs[i+1].x + 0.5)
			if start < clip.Min.X {
				start = clip.Min.X
			}
			if end > clip.Max.X {
				end = clip.Max.X
			}
			for x := start; x < end; x++ {
				pt := Pt(x, y)
				dr, dg, db, da := dst.at(pt)
				nr, ng, nb, na := composite(op, sr, sg, sb, sa, dr, dg, db, da, 255)
				dst.set(pt, nr, ng, nb, na)
			}
		}
	}
}

func insideByRule(winding, wind int) bool {
	if wind == 0 {
		return winding%2 != 0
	}
	return winding != 0
}
