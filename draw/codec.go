package draw

// Decoder is a stateful cursor over a command buffer (§4.1). Byte,
// Short, Long, ULong, Point, Rect and Delta return value types; Bytes
// and Rest return slices aliasing the source buffer; Str copies its
// bytes into a newly allocated string.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps buf for sequential decoding starting at offset 0.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Len reports the number of unread bytes.
func (d *Decoder) Len() int {
	return len(d.buf) - d.pos
}

// Pos reports the current read offset, for building response payloads
// that need to know how many input bytes a command consumed (§4.3 Load).
func (d *Decoder) Pos() int {
	return d.pos
}

func (d *Decoder) need(n int) error {
	if d.pos+n > len(d.buf) {
		return newError(ErrMalformedStream, "short read: need %d bytes, have %d", n, d.Len())
	}
	return nil
}

// Byte reads a single unsigned byte.
func (d *Decoder) Byte() (byte, error) {
	if err := d.need(1); err != nil {
		return 0, err
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

// Short reads a little-endian u16.
func (d *Decoder) Short() (uint16, error) {
	if err := d.need(2); err != nil {
		return 0, err
	}
	v := gshort(d.buf[d.pos:])
	d.pos += 2
	return v, nil
}

// Long reads a little-endian i32.
func (d *Decoder) Long() (int32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := int32(glong(d.buf[d.pos:]))
	d.pos += 4
	return v, nil
}

// ULong reads a little-endian u32.
func (d *Decoder) ULong() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := glong(d.buf[d.pos:])
	d.pos += 4
	return v, nil
}

// Point reads a long×long point.
func (d *Decoder) Point() (Point, error) {
	x, err := d.Long()
	if err != nil {
		return ZP, err
	}
	y, err := d.Long()
	if err != nil {
		return ZP, err
	}
	return Pt(int(x), int(y)), nil
}

// Rect reads a long×4 rectangle (min then max).
func (d *Decoder) Rect() (Rectangle, error) {
	min, err := d.Point()
	if err != nil {
		return ZR, err
	}
	max, err := d.Point()
	if err != nil {
		return ZR, err
	}
	return Rpt(min, max), nil
}

// Str reads a length-prefixed (1-byte length) UTF-8 string.
func (d *Decoder) Str() (string, error) {
	n, err := d.Byte()
	if err != nil {
		return "", err
	}
	if err := d.need(int(n)); err != nil {
		return "", err
	}
	s := string(d.buf[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

// Bytes reads n raw bytes, aliasing the underlying buffer.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	if err := d.need(n); err != nil {
		return nil, err
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// Rest returns every remaining byte and advances to the end. Used by
// Load, which has no length prefix and instead runs to the end of the
// current command buffer (§4.3).
func (d *Decoder) Rest() []byte {
	b := d.buf[d.pos:]
	d.pos = len(d.buf)
	return b
}

// deltaCoordMask is the sign-extension mask for the 7-bit delta field:
// bit 6 set means negative, so OR in the high bits of an int when set.
const deltaCoordMask = ^0x3F

// Delta reads one delta-coord value relative to prev (§4.1, §9). The
// top bit of the first byte selects between a signed 7-bit delta and a
// signed 23-bit absolute value spanning three bytes.
func (d *Decoder) Delta(prev int) (int, error) {
	b0, err := d.Byte()
	if err != nil {
		return 0, err
	}
	if b0&0x80 == 0 {
		v := int(b0 & 0x7F)
		if v&0x40 != 0 {
			v |= deltaCoordMask
		}
		return prev + v, nil
	}
	b1, err := d.Byte()
	if err != nil {
		return 0, err
	}
	b2, err := d.Byte()
	if err != nil {
		return 0, err
	}
	v := int(b0&0x7F) | int(b1)<<7 | int(b2)<<15
	if v&(1<<22) != 0 {
		v -= 1 << 23
	}
	return v, nil
}

// bplong puts a 32-bit little-endian value into a byte slice.
func bplong(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// bpshort puts a 16-bit little-endian value into a byte slice.
func bpshort(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// glong gets a 32-bit little-endian value from a byte slice.
func glong(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// gshort gets a 16-bit little-endian value from a byte slice.
func gshort(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// encodePoint appends a point's wire encoding (two longs) to buf, used to
// build the response to the string opcode (§4.3).
func encodePoint(buf []byte, p Point) []byte {
	var a [8]byte
	bplong(a[0:], uint32(int32(p.X)))
	bplong(a[4:], uint32(int32(p.Y)))
	return append(buf, a[:]...)
}

// encodeLong appends a single little-endian i32 to buf, used for the
// load-opcode response (bytes consumed) and similar single-value replies.
func encodeLong(buf []byte, v int32) []byte {
	var a [4]byte
	bplong(a[0:], uint32(v))
	return append(buf, a[:]...)
}

// appendDelta appends the delta-coord encoding of newx relative to oldx.
// It is the writer counterpart of Decoder.Delta, kept for tests that
// check the round-trip property (§8 invariant 6) and for tooling that
// records synthetic command streams. Mirrors the teacher's addcoord.
func appendDelta(buf []byte, oldx, newx int) []byte {
	dx := newx - oldx
	if uint(dx-(-0x40)) <= 0x7F {
		return append(buf, byte(dx)&0x7F)
	}
	var a [3]byte
	a[0] = 0x80 | byte(newx&0x7F)
	a[1] = byte(newx >> 7)
	a[2] = byte(newx >> 15)
	return append(buf, a[:]...)
}
