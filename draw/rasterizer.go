package draw

// Rasterizer decodes and executes draw command buffers against a
// Store (§4.3). It is the sole entry point a transport needs: hand it
// a buffer, get back any response bytes the buffer's commands produced
// plus the refresh rectangles any flush opcodes emitted.
type Rasterizer struct {
	store    *Store
	fallback FallbackDrawer
}

// NewRasterizer creates a rasterizer over a freshly allocated display
// of the given extent.
func NewRasterizer(w, h int) *Rasterizer {
	return &Rasterizer{store: NewStore(w, h), fallback: platformFallback}
}

// Store exposes the underlying image/font store, e.g. for a transport
// building ctl records.
func (rz *Rasterizer) Store() *Store {
	return rz.store
}

// SetFallback overrides the platform text drawer, e.g. for tests that
// supply a deterministic mock (§9 "Font fallback as a capability").
func (rz *Rasterizer) SetFallback(f FallbackDrawer) {
	rz.fallback = f
}

// Process decodes and executes every command in buf in order,
// returning the concatenation of each command's response bytes (for
// opcodes that produce one) and the list of refresh rectangles emitted
// by any flush opcodes encountered, in order (§2 "Data flow", §4.3
// "Flush"). A malformed or partial trailing command aborts the buffer;
// earlier commands' effects and any refresh rectangles already
// accumulated are preserved (§7).
func (rz *Rasterizer) Process(buf []byte) ([]byte, []Rectangle, error) {
	d := NewDecoder(buf)
	var resp []byte
	var flushes []Rectangle
	for d.Len() > 0 {
		opb, err := d.Byte()
		if err != nil {
			return resp, flushes, err
		}
		out, flushed, ok, err := rz.dispatch(d, opb)
		if err != nil {
			return resp, flushes, err
		}
		if ok {
			resp = append(resp, out...)
		}
		if flushed {
			flushes = append(flushes, rz.store.refresh)
			rz.store.refresh = ZR
		}
	}
	return resp, flushes, nil
}

func (rz *Rasterizer) addRefresh(r Rectangle) {
	if r.Empty() {
		return
	}
	rz.store.refresh = rz.store.refresh.Combine(r)
}

// endDrawingOp resets the sticky operator after a drawing opcode
// executes (§4.3 "Operator model", §8 invariant 3).
func (rz *Rasterizer) endDrawingOp() {
	rz.store.currentOp = SoverD
}

func (rz *Rasterizer) dispatch(d *Decoder, opb byte) (resp []byte, flushed bool, hasResp bool, err error) {
	st := rz.store
	switch opb {
	case 'b':
		return nil, false, false, rz.opAlloc(d)
	case 'f':
		id, err := d.Long()
		if err != nil {
			return nil, false, false, err
		}
		return nil, false, false, st.Free(id)
	case 'A':
		return nil, false, false, rz.opAllocScreen(d)
	case 'F':
		id, err := d.Long()
		if err != nil {
			return nil, false, false, err
		}
		st.FreeScreen(id)
		return nil, false, false, nil
	case 'd':
		return nil, false, false, rz.opDraw(d)
	case 'L':
		return nil, false, false, rz.opLine(d)
	case 'e':
		return nil, false, false, rz.opEllipse(d, false)
	case 'E':
		return nil, false, false, rz.opEllipse(d, true)
	case 'a':
		return nil, false, false, rz.opArc(d)
	case 'p':
		return nil, false, false, rz.opPoly(d, false)
	case 'P':
		return nil, false, false, rz.opPoly(d, true)
	case 's':
		out, err := rz.opString(d, false)
		return out, false, true, err
	case 'x':
		out, err := rz.opString(d, true)
		return out, false, true, err
	case 'y':
		out, err := rz.opLoad(d, false)
		return out, false, true, err
	case 'Y':
		out, err := rz.opLoad(d, true)
		return out, false, true, err
	case 'r':
		out, err := rz.opUnload(d)
		return out, false, true, err
	case 'o':
		return nil, false, false, rz.opOrigin(d)
	case 'c':
		return nil, false, false, rz.opSetClip(d)
	case 'O':
		b, err := d.Byte()
		if err != nil {
			return nil, false, false, err
		}
		op := Op(int(int8(b)))
		if !op.valid() {
			return nil, false, false, newError(ErrMalformedStream, "invalid operator %d", b)
		}
		st.currentOp = op
		return nil, false, false, nil
	case 't', 'B':
		n, err := d.Long()
		if err != nil {
			return nil, false, false, err
		}
		for i := int32(0); i < n; i++ {
			if _, err := d.Long(); err != nil {
				return nil, false, false, err
			}
		}
		return nil, false, false, nil
	case 'N', 'n':
		id, err := d.Long()
		if err != nil {
			return nil, false, false, err
		}
		in, err := d.Byte()
		if err != nil {
			return nil, false, false, err
		}
		name, err := d.Str()
		if err != nil {
			return nil, false, false, err
		}
		if in != 0 {
			if _, err := st.Lookup(id); err != nil {
				st.images[id] = st.images[0]
			}
			st.names[name] = id
		} else {
			delete(st.names, name)
		}
		return nil, false, false, nil
	case 'i':
		fontID, err := d.Long()
		if err != nil {
			return nil, false, false, err
		}
		n, err := d.Long()
		if err != nil {
			return nil, false, false, err
		}
		ascent, err := d.Long()
		if err != nil {
			return nil, false, false, err
		}
		return nil, false, false, st.InitFont(fontID, int(n), int(ascent))
	case 'l':
		return nil, false, false, rz.opLoadChar(d)
	case 'I':
		return rz.opInit(), false, true, nil
	case 'v':
		return nil, true, false, nil
	default:
		return nil, false, false, newError(ErrMalformedStream, "unknown opcode 0x%02x", opb)
	}
}
