package draw

import "testing"

func TestFormatParseCtlRoundtrip(t *testing.T) {
	st := NewStore(10, 10)
	if _, err := st.Alloc(7, 0, RGB24, true, Rect(1, 2, 5, 6), Rect(1, 2, 4, 5), 0); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	rec, err := st.FormatCtl(3, 7)
	if err != nil {
		t.Fatalf("FormatCtl: %v", err)
	}
	if len(rec) != ctlRecordSize {
		t.Fatalf("record length = %d, want %d", len(rec), ctlRecordSize)
	}
	clientID, imageID, chanStr, repl, r, clipr, err := ParseCtl(rec)
	if err != nil {
		t.Fatalf("ParseCtl: %v", err)
	}
	if clientID != 3 || imageID != 7 {
		t.Errorf("ids = %d,%d, want 3,7", clientID, imageID)
	}
	if chanStr != chantostr(RGB24) {
		t.Errorf("chanStr = %q, want %q", chanStr, chantostr(RGB24))
	}
	if !repl {
		t.Error("repl = false, want true")
	}
	if !r.Eq(Rect(1, 2, 5, 6)) || !clipr.Eq(Rect(1, 2, 4, 5)) {
		t.Errorf("rects = %v/%v, want (1,2)-(5,6)/(1,2)-(4,5)", r, clipr)
	}
}

func TestFormatRefresh(t *testing.T) {
	got := FormatRefresh(Rect(1, 2, 3, 4))
	want := []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}
