package draw

// Surface is a rectangular straight-RGBA8 pixel buffer. It backs every
// Image, including the display (id 0), so the inner raster loop stays
// monomorphic instead of dispatching through an interface (§9
// "Polymorphism over surfaces").
type Surface struct {
	r        Rectangle
	pix      []byte // r.Dx()*r.Dy()*4 bytes, row-major, RGBA8
	attached bool    // true only for the display surface
}

// newSurface allocates a zeroed surface of the given extent.
func newSurface(r Rectangle) *Surface {
	w, h := r.Dx(), r.Dy()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Surface{r: r, pix: make([]byte, w*h*4)}
}

func (s *Surface) stride() int {
	return s.r.Dx() * 4
}

func (s *Surface) offset(p Point) int {
	return (p.Y-s.r.Min.Y)*s.stride() + (p.X-s.r.Min.X)*4
}

// at returns the RGBA8 pixel at p, which must lie in s.r.
func (s *Surface) at(p Point) (r, g, b, a byte) {
	o := s.offset(p)
	return s.pix[o], s.pix[o+1], s.pix[o+2], s.pix[o+3]
}

// set writes the RGBA8 pixel at p, which must lie in s.r.
func (s *Surface) set(p Point, r, g, b, a byte) {
	o := s.offset(p)
	s.pix[o], s.pix[o+1], s.pix[o+2], s.pix[o+3] = r, g, b, a
}

// resize replaces the surface's backing store with a freshly zeroed
// buffer of the given extent, used only by resize_display (§4.2).
func (s *Surface) resize(r Rectangle) {
	s.r = r
	w, h := r.Dx(), r.Dy()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.pix = make([]byte, w*h*4)
}

// fill paints every pixel in r (already clipped to s.r by the caller)
// with a flat colour.
func (s *Surface) fill(r Rectangle, cr, cg, cb, ca byte) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.set(Pt(x, y), cr, cg, cb, ca)
		}
	}
}
