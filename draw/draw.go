// Package draw implements the server side of the Plan 9 /dev/draw
// protocol: a retained-mode image/font/screen model, a rasterizer that
// decodes and executes draw commands against it, and a glyph cache. See
// draw(2) and graphics(2) from the Plan 9 manual for the wire protocol
// this package interprets.
package draw

// Point is a location in the integer grid.
type Point struct {
	X, Y int
}

// ZP is the zero point.
var ZP Point

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{x, y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Eq reports whether p and q are equal.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// In reports whether p is in r.
func (p Point) In(r Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Rectangle is a rectangle in the integer grid.
type Rectangle struct {
	Min, Max Point
}

// ZR is the zero rectangle.
var ZR Rectangle

// Rect returns the rectangle with corners (x0, y0) and (x1, y1).
// The corners don't need to be in any particular order.
func Rect(x0, y0, x1, y1 int) Rectangle {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rectangle{Point{x0, y0}, Point{x1, y1}}
}

// Rpt returns the rectangle with corners min and max, uncanonicalized.
func Rpt(min, max Point) Rectangle {
	return Rectangle{min, max}
}

// Dx returns the width of r.
func (r Rectangle) Dx() int {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rectangle) Dy() int {
	return r.Max.Y - r.Min.Y
}

// Add returns r translated by p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{r.Min.Add(p), r.Max.Add(p)}
}

// Empty reports whether r contains no points (§3: empty iff equality in
// either axis).
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Eq reports whether r and s are equal.
func (r Rectangle) Eq(s Rectangle) bool {
	return r.Min.Eq(s.Min) && r.Max.Eq(s.Max)
}

// In reports whether r is entirely inside s.
func (r Rectangle) In(s Rectangle) bool {
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

// Clip clips r to be inside s, returning the clipped rectangle and
// whether any pixels remain.
func (r Rectangle) Clip(s Rectangle) (Rectangle, bool) {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r, !r.Empty()
}

// Inset returns r inset by n on every side. Negative n expands r. Used
// by BorderOp to expand r when the border thickness is negative (§4.4
// Supplemented features).
func (r Rectangle) Inset(n int) Rectangle {
	if r.Dx() < 2*n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

// Combine returns the smallest rectangle containing both r and s, used
// to accumulate the refresh rectangle (§2, §8 scenario 1).
func (r Rectangle) Combine(s Rectangle) Rectangle {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Pix is a channel descriptor: the order and depth of pixel components.
type Pix uint32

// Channel descriptor bits.
const (
	CRed    = 0
	CGreen  = 1
	CBlue   = 2
	CGrey   = 3
	CAlpha  = 4
	CMap    = 5
	CIgnore = 6
	NChan   = 7
)

// Standard pixel formats (§3). Each channel byte is (type<<4)|nbits,
// packed MSB-first in the order the channel appears in its format
// string, matching strtochan/chantodepth exactly.
const (
	GREY1  Pix = CGrey<<4 | 1 // "k1"
	GREY2  Pix = CGrey<<4 | 2 // "k2"
	GREY4  Pix = CGrey<<4 | 4 // "k4"
	GREY8  Pix = CGrey<<4 | 8 // "k8"
	CMAP8  Pix = CMap<<4 | 8  // "m8"
	RGB15  Pix = (CIgnore<<4|1)<<24 | (CRed<<4|5)<<16 | (CGreen<<4|5)<<8 | (CBlue<<4 | 5) // "x1r5g5b5"
	RGB16  Pix = (CRed<<4|5)<<16 | (CGreen<<4|6)<<8 | (CBlue<<4 | 5)                      // "r5g6b5"
	RGB24  Pix = (CRed<<4|8)<<16 | (CGreen<<4|8)<<8 | (CBlue<<4 | 8)                      // "r8g8b8"
	RGBA32 Pix = (CRed<<4|8)<<24 | (CGreen<<4|8)<<16 | (CBlue<<4|8)<<8 | (CAlpha<<4 | 8)   // "r8g8b8a8"
	ARGB32 Pix = (CAlpha<<4|8)<<24 | (CRed<<4|8)<<16 | (CGreen<<4|8)<<8 | (CBlue<<4 | 8)   // "a8r8g8b8"
	ABGR32 Pix = (CAlpha<<4|8)<<24 | (CBlue<<4|8)<<16 | (CGreen<<4|8)<<8 | (CRed<<4 | 8)   // "a8b8g8r8"
	XRGB32 Pix = (CIgnore<<4|8)<<24 | (CRed<<4|8)<<16 | (CGreen<<4|8)<<8 | (CBlue<<4 | 8)  // "x8r8g8b8"
	XBGR32 Pix = (CIgnore<<4|8)<<24 | (CBlue<<4|8)<<16 | (CGreen<<4|8)<<8 | (CRed<<4 | 8)  // "x8b8g8r8"
	BGR24  Pix = (CBlue<<4|8)<<16 | (CGreen<<4|8)<<8 | (CRed<<4 | 8)                       // "b8g8r8"
)

// Refresh methods for the alloc opcode's refresh byte (§9 open
// question). The alloc opcode decodes the byte and discards it: every
// value is treated as Refnone, and the value is not stored on the Image.
const (
	Refbackup = 0
	Refnone   = 1
	Refmesg   = 2
)

// End styles for the line and polygon opcodes (§4.3 Line).
const (
	Endsquare = 0
	Enddisc   = 1
	Endarrow  = 2
	Endmask   = 0x1F
)

// Op is a Porter-Duff compositing operator. The wire values are fixed by
// §4.3 and must match exactly since they arrive as an opaque byte on the
// wire — they are not renumbered from the teacher's client-side iota
// ordering, which never had to agree with a byte on a wire.
type Op int

const (
	Clear  Op = 0
	DoutS  Op = 1
	SoutD  Op = 2
	SxorD  Op = 3
	DinS   Op = 4
	D      Op = 5
	DatopS Op = 6
	DoverS Op = 7
	SinD   Op = 8
	SatopD Op = 9
	S      Op = 10
	SoverD Op = 11
)

func (op Op) valid() bool {
	return op >= Clear && op <= SoverD
}
