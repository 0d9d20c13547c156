package draw

import "strconv"

const ctlFieldWidth = 12
const ctlFieldCount = 12
const ctlRecordSize = ctlFieldWidth * ctlFieldCount

// padField right-justifies s into a fixed width field, space-padded,
// truncating on the left if s is too long (§6 "Ctl record").
func padField(s string) string {
	if len(s) >= ctlFieldWidth {
		return s[len(s)-ctlFieldWidth:]
	}
	pad := ctlFieldWidth - len(s)
	buf := make([]byte, ctlFieldWidth)
	for i := 0; i < pad; i++ {
		buf[i] = ' '
	}
	copy(buf[pad:], s)
	return string(buf)
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatCtl builds the 144-byte ctl record for the image with the
// given client id (§6 "Ctl record").
func (st *Store) FormatCtl(clientID int32, imageID int32) (string, error) {
	img, err := st.Lookup(imageID)
	if err != nil {
		return "", err
	}
	fields := []string{
		strconv.Itoa(int(clientID)),
		strconv.Itoa(int(imageID)),
		chantostr(img.chanFmt),
		boolField(img.repl),
		strconv.Itoa(img.r.Min.X),
		strconv.Itoa(img.r.Min.Y),
		strconv.Itoa(img.r.Max.X),
		strconv.Itoa(img.r.Max.Y),
		strconv.Itoa(img.clipr.Min.X),
		strconv.Itoa(img.clipr.Min.Y),
		strconv.Itoa(img.clipr.Max.X),
		strconv.Itoa(img.clipr.Max.Y),
	}
	out := make([]byte, 0, ctlRecordSize)
	for _, f := range fields {
		out = append(out, padField(f)...)
	}
	return string(out), nil
}

// ParseCtl parses a 144-byte ctl record back into its fields, for
// tests that check the round trip and for hosts that need to read a
// peer's ctl file.
func ParseCtl(rec string) (clientID, imageID int32, chanStr string, repl bool, r, clipr Rectangle, err error) {
	if len(rec) < ctlRecordSize {
		return 0, 0, "", false, ZR, ZR, newError(ErrMalformedStream, "ctl record too short: %d bytes", len(rec))
	}
	field := func(i int) string {
		return trimSpace(rec[i*ctlFieldWidth : (i+1)*ctlFieldWidth])
	}
	clientID = int32(atoi(field(0)))
	imageID = int32(atoi(field(1)))
	chanStr = field(2)
	repl = field(3) == "1"
	r = Rect(atoi(field(4)), atoi(field(5)), atoi(field(6)), atoi(field(7)))
	clipr = Rect(atoi(field(8)), atoi(field(9)), atoi(field(10)), atoi(field(11)))
	return
}

// FormatRefresh encodes a refresh rectangle as the 16-byte little
// endian record described in §6.
func FormatRefresh(r Rectangle) []byte {
	buf := make([]byte, 16)
	bplong(buf[0:], uint32(int32(r.Min.X)))
	bplong(buf[4:], uint32(int32(r.Min.Y)))
	bplong(buf[8:], uint32(int32(r.Max.X)))
	bplong(buf[12:], uint32(int32(r.Max.Y)))
	return buf
}
