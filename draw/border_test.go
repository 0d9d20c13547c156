package draw

import "testing"

func TestBorderPaintsEdgesNotInterior(t *testing.T) {
	st := NewStore(10, 10)
	dst, err := st.Alloc(1, 0, XRGB32, false, Rect(0, 0, 10, 10), Rect(0, 0, 10, 10), 0)
	if err != nil {
		t.Fatalf("alloc dst: %v", err)
	}
	color, err := st.Alloc(2, 0, XRGB32, true, Rect(0, 0, 1, 1), Rect(0, 0, 1, 1), 0xFFFFFFFF)
	if err != nil {
		t.Fatalf("alloc color: %v", err)
	}

	dst.Border(Rect(1, 1, 9, 9), 2, color, ZP)

	r, _, _, _ := dst.surface.at(Pt(1, 1))
	if r != 0xFF {
		t.Errorf("edge pixel = %d, want 255", r)
	}
	r, _, _, _ = dst.surface.at(Pt(5, 5))
	if r != 0 {
		t.Errorf("interior pixel = %d, want 0 (untouched)", r)
	}
}

func TestIsDisplay(t *testing.T) {
	st := NewStore(4, 4)
	disp, _ := st.Lookup(0)
	if !disp.IsDisplay() {
		t.Error("id 0 should report IsDisplay() == true")
	}
	other, _ := st.Alloc(1, 0, XRGB32, false, Rect(0, 0, 1, 1), Rect(0, 0, 1, 1), 0)
	if other.IsDisplay() {
		t.Error("non-zero id should report IsDisplay() == false")
	}
}
