package draw

import "testing"

type cmdBuilder struct {
	buf []byte
}

func (c *cmdBuilder) op(b byte) *cmdBuilder { c.buf = append(c.buf, b); return c }
func (c *cmdBuilder) byte_(b byte) *cmdBuilder { c.buf = append(c.buf, b); return c }
func (c *cmdBuilder) long(v int32) *cmdBuilder { c.buf = encodeLong(c.buf, v); return c }
func (c *cmdBuilder) ulong(v uint32) *cmdBuilder { return c.long(int32(v)) }
func (c *cmdBuilder) point(p Point) *cmdBuilder { c.buf = encodePoint(c.buf, p); return c }
func (c *cmdBuilder) rect(r Rectangle) *cmdBuilder {
	c.point(r.Min)
	c.point(r.Max)
	return c
}
func (c *cmdBuilder) short(v uint16) *cmdBuilder {
	var a [2]byte
	bpshort(a[:], v)
	c.buf = append(c.buf, a[:]...)
	return c
}

func TestFlatFillScenario(t *testing.T) {
	rz := NewRasterizer(4, 4)
	var c cmdBuilder
	c.op('b').long(1).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0xFFFF0000)
	c.op('d').long(0).long(1).long(0).rect(Rect(0, 0, 4, 4)).point(Pt(0, 0)).point(Pt(0, 0))
	c.op('v')

	_, flushes, err := rz.Process(c.buf)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(flushes) != 1 || !flushes[0].Eq(Rect(0, 0, 4, 4)) {
		t.Fatalf("flush rect = %v, want (0,0)-(4,4)", flushes)
	}
	disp, _ := rz.Store().Lookup(0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := disp.surface.at(Pt(x, y))
			if r != 0xFF || g != 0 || b != 0 || a != 0xFF {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d)", x, y, r, g, b, a)
			}
		}
	}
}

func TestOperatorResetScenario(t *testing.T) {
	rz := NewRasterizer(4, 4)
	var c cmdBuilder
	c.op('b').long(1).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0xFFFF0000)
	c.op('O').byte_(byte(S))
	c.op('d').long(0).long(1).long(0).rect(Rect(0, 0, 4, 4)).point(Pt(0, 0)).point(Pt(0, 0))

	c.op('b').long(2).long(0).byte_(Refnone).ulong(uint32(RGBA32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0x8000FF00)
	c.op('d').long(0).long(2).long(0).rect(Rect(0, 0, 2, 2)).point(Pt(0, 0)).point(Pt(0, 0))

	if _, _, err := rz.Process(c.buf); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rz.Store().currentOp != SoverD {
		t.Fatalf("currentOp = %v, want SoverD", rz.Store().currentOp)
	}
	disp, _ := rz.Store().Lookup(0)
	r, g, b, a := disp.surface.at(Pt(0, 0))
	if g < 0x60 || r < 0x60 || a != 0xFF {
		t.Fatalf("blended pixel = (%d,%d,%d,%d), want a translucent-green-over-red blend", r, g, b, a)
	}
}

func TestGlyphRenderingScenario(t *testing.T) {
	rz := NewRasterizer(32, 16)
	var c cmdBuilder
	// solid white colour image
	c.op('b').long(2).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0xFFFFFFFF)
	// source colour image for the glyph raster (opaque ink)
	c.op('b').long(3).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0xFFFFFFFF)
	// font backing image
	c.op('b').long(5).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(0).
		rect(Rect(0, 0, 4, 10)).rect(Rect(0, 0, 4, 10)).ulong(0)
	c.op('i').long(5).long(1).long(8)
	c.op('l').long(5).long(3).long(0).rect(Rect(0, 0, 4, 8)).point(Pt(0, 0)).byte_(0).byte_(4)
	c.op('s').long(0).long(2).long(5).point(Pt(0, 8)).rect(Rect(0, 0, 32, 16)).point(Pt(0, 0)).long(1).short(0)

	resp, _, err := rz.Process(c.buf)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	d := NewDecoder(resp)
	p, err := d.Point()
	if err != nil {
		t.Fatalf("decode response point: %v", err)
	}
	if p != Pt(4, 8) {
		t.Fatalf("response point = %v, want (4,8)", p)
	}
}

func TestFlushDrains(t *testing.T) {
	rz := NewRasterizer(4, 4)
	var c cmdBuilder
	c.op('v').op('v')
	_, flushes, err := rz.Process(c.buf)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(flushes) != 2 {
		t.Fatalf("got %d flushes, want 2", len(flushes))
	}
	if !flushes[0].Empty() || !flushes[1].Empty() {
		t.Fatalf("flushes = %v, want both empty", flushes)
	}
}

func TestClipAndReplicationScenario(t *testing.T) {
	rz := NewRasterizer(5, 5)
	var c cmdBuilder
	c.op('b').long(2).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 2, 2)).rect(Rect(0, 0, 2, 2)).ulong(0)
	resp, _, err := rz.Process(c.buf)
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	_ = resp
	img, _ := rz.Store().Lookup(2)
	// paint a distinct 2x2 tile pattern directly on the surface
	img.surface.set(Pt(0, 0), 1, 1, 1, 255)
	img.surface.set(Pt(1, 0), 2, 2, 2, 255)
	img.surface.set(Pt(0, 1), 3, 3, 3, 255)
	img.surface.set(Pt(1, 1), 4, 4, 4, 255)

	var c2 cmdBuilder
	c2.op('d').long(0).long(2).long(0).rect(Rect(0, 0, 5, 5)).point(Pt(0, 0)).point(Pt(0, 0))
	if _, _, err := rz.Process(c2.buf); err != nil {
		t.Fatalf("draw: %v", err)
	}
	disp, _ := rz.Store().Lookup(0)
	r, _, _, _ := disp.surface.at(Pt(3, 1))
	want, _, _, _ := img.surface.at(Pt(1, 1))
	if r != want {
		t.Fatalf("pixel(3,1).r = %d, want %d (tile pattern (1,1))", r, want)
	}
}

func TestUnknownOpcode(t *testing.T) {
	rz := NewRasterizer(4, 4)
	_, _, err := rz.Process([]byte{0xFE})
	if err == nil {
		t.Fatal("expected error for unknown opcode")
	}
	derr, ok := err.(*Error)
	if !ok || derr.Kind != ErrMalformedStream {
		t.Fatalf("err = %v, want MalformedStream", err)
	}
}

func TestLoadUnloadRoundtrip(t *testing.T) {
	rz := NewRasterizer(4, 4)
	var c cmdBuilder
	c.op('b').long(9).long(0).byte_(Refnone).ulong(uint32(RGB24)).byte_(0).
		rect(Rect(0, 0, 2, 2)).rect(Rect(0, 0, 2, 2)).ulong(0)
	if _, _, err := rz.Process(c.buf); err != nil {
		t.Fatalf("alloc: %v", err)
	}

	data := []byte{
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60,
		0x70, 0x80, 0x90, 0xA0, 0xB0, 0xC0,
	}
	var load cmdBuilder
	load.op('y').long(9).rect(Rect(0, 0, 2, 2))
	load.buf = append(load.buf, data...)
	resp, _, err := rz.Process(load.buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := NewDecoder(resp)
	n, _ := d.Long()
	if int(n) != len(data) {
		t.Fatalf("consumed = %d, want %d", n, len(data))
	}

	var unload cmdBuilder
	unload.op('r').long(9).rect(Rect(0, 0, 2, 2))
	out, _, err := rz.Process(unload.buf)
	if err != nil {
		t.Fatalf("unload: %v", err)
	}
	if len(out) != len(data) {
		t.Fatalf("unload len = %d, want %d", len(out), len(data))
	}
	for i := range data {
		if out[i] != data[i] {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, out[i], data[i])
		}
	}
}
