package draw

import "testing"

func TestLineScenario(t *testing.T) {
	rz := NewRasterizer(8, 8)
	var c cmdBuilder
	c.op('b').long(1).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0xFFFFFFFF)
	c.op('L').long(0).point(Pt(1, 4)).point(Pt(6, 4)).byte_(Endsquare).byte_(Endsquare).long(0).long(1).point(Pt(0, 0))
	c.op('v')

	_, flushes, err := rz.Process(c.buf)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(flushes) != 1 || flushes[0].Empty() {
		t.Fatalf("flush rect = %v, want a nonempty damage rect", flushes)
	}
	disp, _ := rz.Store().Lookup(0)
	r, _, _, _ := disp.surface.at(Pt(3, 4))
	if r != 0xFF {
		t.Fatalf("pixel on the line = %d, want 255", r)
	}
}

func TestFilledEllipseScenario(t *testing.T) {
	rz := NewRasterizer(12, 12)
	var c cmdBuilder
	c.op('b').long(1).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0xFFFFFFFF)
	c.op('E').long(0).long(1).point(Pt(0, 0)).point(Pt(6, 6)).long(4).long(4).long(0).long(0).long(0)
	c.op('v')

	if _, _, err := rz.Process(c.buf); err != nil {
		t.Fatalf("Process: %v", err)
	}
	disp, _ := rz.Store().Lookup(0)
	r, _, _, _ := disp.surface.at(Pt(6, 6))
	if r != 0xFF {
		t.Fatalf("centre pixel = %d, want 255 (inside filled ellipse)", r)
	}
	r, _, _, _ = disp.surface.at(Pt(0, 0))
	if r != 0 {
		t.Fatalf("corner pixel = %d, want 0 (outside ellipse)", r)
	}
}

func TestFilledPolygonScenario(t *testing.T) {
	rz := NewRasterizer(10, 10)
	var c cmdBuilder
	c.op('b').long(1).long(0).byte_(Refnone).ulong(uint32(XRGB32)).byte_(1).
		rect(Rect(0, 0, 1, 1)).rect(Rect(0, 0, 1, 1)).ulong(0xFFFFFFFF)
	c.op('P').long(0).long(4).byte_(0).byte_(0).long(0).long(1).point(Pt(0, 0))

	pts := []Point{Pt(1, 1), Pt(8, 1), Pt(8, 8), Pt(1, 8), Pt(1, 1)}
	px, py := 0, 0
	for _, p := range pts {
		c.buf = appendDelta(c.buf, px, p.X)
		c.buf = appendDelta(c.buf, py, p.Y)
		px, py = p.X, p.Y
	}
	c.op('v')

	if _, _, err := rz.Process(c.buf); err != nil {
		t.Fatalf("Process: %v", err)
	}
	disp, _ := rz.Store().Lookup(0)
	r, _, _, _ := disp.surface.at(Pt(4, 4))
	if r != 0xFF {
		t.Fatalf("interior pixel = %d, want 255", r)
	}
	r, _, _, _ = disp.surface.at(Pt(0, 0))
	if r != 0 {
		t.Fatalf("exterior pixel = %d, want 0", r)
	}
}
