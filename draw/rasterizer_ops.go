package draw

// opAlloc implements the 'b' opcode (§4.2 "alloc").
func (rz *Rasterizer) opAlloc(d *Decoder) error {
	id, err := d.Long()
	if err != nil {
		return err
	}
	if id == 0 {
		return newError(ErrDisplayInvariant, "cannot reallocate the display via alloc")
	}
	screenID, err := d.Long()
	if err != nil {
		return err
	}
	if _, err := d.Byte(); err != nil { // refresh method; recorded nowhere beyond honouring Refnone implicitly
		return err
	}
	chanWord, err := d.ULong()
	if err != nil {
		return err
	}
	replB, err := d.Byte()
	if err != nil {
		return err
	}
	r, err := d.Rect()
	if err != nil {
		return err
	}
	clipr, err := d.Rect()
	if err != nil {
		return err
	}
	color, err := d.ULong()
	if err != nil {
		return err
	}
	_, err = rz.store.Alloc(id, screenID, Pix(chanWord), replB != 0, r, clipr, color)
	return err
}

// opAllocScreen implements the 'A' opcode.
func (rz *Rasterizer) opAllocScreen(d *Decoder) error {
	id, err := d.Long()
	if err != nil {
		return err
	}
	imageID, err := d.Long()
	if err != nil {
		return err
	}
	fillID, err := d.Long()
	if err != nil {
		return err
	}
	pub, err := d.Byte()
	if err != nil {
		return err
	}
	rz.store.AllocScreen(id, imageID, fillID, pub != 0)
	return nil
}

// opDraw implements the 'd' opcode (§4.3 "Blit").
func (rz *Rasterizer) opDraw(d *Decoder) error {
	dstID, err := d.Long()
	if err != nil {
		return err
	}
	srcID, err := d.Long()
	if err != nil {
		return err
	}
	maskID, err := d.Long()
	if err != nil {
		return err
	}
	r, err := d.Rect()
	if err != nil {
		return err
	}
	sp, err := d.Point()
	if err != nil {
		return err
	}
	mp, err := d.Point()
	if err != nil {
		return err
	}
	defer rz.endDrawingOp()

	dst, err := rz.store.Lookup(dstID)
	if err != nil {
		return err
	}
	src, err := rz.store.Lookup(srcID)
	if err != nil {
		return err
	}
	var mask *Surface
	maskRepl := false
	if maskID != 0 {
		m, err := rz.store.Lookup(maskID)
		if err != nil {
			return err
		}
		mask = m.surface
		maskRepl = m.repl
	}
	target, ok := r.Clip(dst.clipr)
	if !ok {
		return nil
	}
	blit(dst.surface, target, r.Min, src.surface, sp, src.repl, mask, mp, maskRepl, rz.store.currentOp)
	rz.addRefresh(target)
	return nil
}

// opLine implements the 'L' opcode (§4.3 "Line").
func (rz *Rasterizer) opLine(d *Decoder) error {
	dstID, err := d.Long()
	if err != nil {
		return err
	}
	p0, err := d.Point()
	if err != nil {
		return err
	}
	p1, err := d.Point()
	if err != nil {
		return err
	}
	end0, err := d.Byte()
	if err != nil {
		return err
	}
	end1, err := d.Byte()
	if err != nil {
		return err
	}
	radius, err := d.Long()
	if err != nil {
		return err
	}
	srcID, err := d.Long()
	if err != nil {
		return err
	}
	sp, err := d.Point()
	if err != nil {
		return err
	}
	defer rz.endDrawingOp()

	dst, err := rz.store.Lookup(dstID)
	if err != nil {
		return err
	}
	src, err := rz.store.Lookup(srcID)
	if err != nil {
		return err
	}
	half := int(radius)
	if half < 0 {
		half = 0
	}
	bbox := strokeBBox(p0, p1, half)
	clip, ok := bbox.Clip(dst.clipr)
	if !ok {
		return nil
	}
	drawLine(dst.surface, clip, p0, p1, int(end0), int(end1), int(radius), src.surface, sp, src.repl, rz.store.currentOp)
	rz.addRefresh(clip)
	return nil
}

func (rz *Rasterizer) decodeEllipseShape(d *Decoder) (dstID, srcID int32, sp Point, p ellipseParams, err error) {
	dstID, err = d.Long()
	if err != nil {
		return
	}
	srcID, err = d.Long()
	if err != nil {
		return
	}
	sp, err = d.Point()
	if err != nil {
		return
	}
	center, err2 := d.Point()
	if err2 != nil {
		err = err2
		return
	}
	a, err3 := d.Long()
	if err3 != nil {
		err = err3
		return
	}
	b, err4 := d.Long()
	if err4 != nil {
		err = err4
		return
	}
	thick, err5 := d.Long()
	if err5 != nil {
		err = err5
		return
	}
	alpha, err6 := d.Long()
	if err6 != nil {
		err = err6
		return
	}
	phi, err7 := d.Long()
	if err7 != nil {
		err = err7
		return
	}
	p = ellipseParams{center: center, a: int(a), b: int(b), thick: int(thick), alpha: int(alpha), phi: int(phi)}
	return
}

// opEllipse implements the 'e'/'E' opcodes (§4.3 "Ellipse / filled ellipse").
func (rz *Rasterizer) opEllipse(d *Decoder, filled bool) error {
	dstID, srcID, sp, p, err := rz.decodeEllipseShape(d)
	if err != nil {
		return err
	}
	p.filled = filled
	defer rz.endDrawingOp()

	dst, err := rz.store.Lookup(dstID)
	if err != nil {
		return err
	}
	src, err := rz.store.Lookup(srcID)
	if err != nil {
		return err
	}
	bbox := Rect(p.center.X-p.a-1, p.center.Y-p.b-1, p.center.X+p.a+2, p.center.Y+p.b+2)
	clip, ok := bbox.Clip(dst.clipr)
	if !ok {
		return nil
	}
	drawEllipse(dst.surface, clip, p, src.surface, sp, src.repl, rz.store.currentOp)
	rz.addRefresh(clip)
	return nil
}

// opArc implements the 'a' opcode (§4.3 "Arc").
func (rz *Rasterizer) opArc(d *Decoder) error {
	dstID, srcID, sp, p, err := rz.decodeEllipseShape(d)
	if err != nil {
		return err
	}
	p.isArc = true
	p.filled = p.thick < 0
	defer rz.endDrawingOp()

	dst, err := rz.store.Lookup(dstID)
	if err != nil {
		return err
	}
	src, err := rz.store.Lookup(srcID)
	if err != nil {
		return err
	}
	bbox := Rect(p.center.X-p.a-1, p.center.Y-p.b-1, p.center.X+p.a+2, p.center.Y+p.b+2)
	clip, ok := bbox.Clip(dst.clipr)
	if !ok {
		return nil
	}
	drawEllipse(dst.surface, clip, p, src.surface, sp, src.repl, rz.store.currentOp)
	rz.addRefresh(clip)
	return nil
}

// opPoly implements the 'p'/'P' opcodes (§4.3 "Polygon").
func (rz *Rasterizer) opPoly(d *Decoder, filled bool) error {
	dstID, err := d.Long()
	if err != nil {
		return err
	}
	n, err := d.Long()
	if err != nil {
		return err
	}
	f0, err := d.Byte()
	if err != nil {
		return err
	}
	f1, err := d.Byte()
	if err != nil {
		return err
	}
	f2, err := d.Long()
	if err != nil {
		return err
	}
	srcID, err := d.Long()
	if err != nil {
		return err
	}
	sp, err := d.Point()
	if err != nil {
		return err
	}
	pts, err := decodePoly(d, int(n))
	if err != nil {
		return err
	}
	defer rz.endDrawingOp()

	dst, err := rz.store.Lookup(dstID)
	if err != nil {
		return err
	}
	src, err := rz.store.Lookup(srcID)
	if err != nil {
		return err
	}

	minx, maxx := pts[0].X, pts[0].X
	miny, maxy := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.X < minx {
			minx = p.X
		}
		if p.X > maxx {
			maxx = p.X
		}
		if p.Y < miny {
			miny = p.Y
		}
		if p.Y > maxy {
			maxy = p.Y
		}
	}
	bbox := Rect(minx-1, miny-1, maxx+1, maxy+1)
	clip, ok := bbox.Clip(dst.clipr)
	if !ok {
		return nil
	}
	if filled {
		wind := int(f0)
		drawPolyFilled(dst.surface, clip, pts, wind, src.surface, sp, src.repl, rz.store.currentOp)
	} else {
		radius := int(f2)
		drawPolyOutline(dst.surface, clip, pts, int(f0), int(f1), radius, src.surface, sp, src.repl, rz.store.currentOp)
	}
	rz.addRefresh(clip)
	return nil
}

// opString implements the 's'/'x' opcodes (§4.3 "String").
func (rz *Rasterizer) opString(d *Decoder, withBg bool) ([]byte, error) {
	dstID, err := d.Long()
	if err != nil {
		return nil, err
	}
	srcID, err := d.Long()
	if err != nil {
		return nil, err
	}
	fontID, err := d.Long()
	if err != nil {
		return nil, err
	}
	p, err := d.Point()
	if err != nil {
		return nil, err
	}
	clipr, err := d.Rect()
	if err != nil {
		return nil, err
	}
	sp, err := d.Point()
	if err != nil {
		return nil, err
	}
	n, err := d.Long()
	if err != nil {
		return nil, err
	}
	var bgID int32
	var bgp Point
	if withBg {
		bgID, err = d.Long()
		if err != nil {
			return nil, err
		}
		bgp, err = d.Point()
		if err != nil {
			return nil, err
		}
	}
	indices := make([]uint16, n)
	for i := range indices {
		v, err := d.Short()
		if err != nil {
			return nil, err
		}
		indices[i] = v
	}
	defer rz.endDrawingOp()

	dst, err := rz.store.Lookup(dstID)
	if err != nil {
		return nil, err
	}
	src, err := rz.store.Lookup(srcID)
	if err != nil {
		return nil, err
	}
	f, _ := rz.store.LookupFont(fontID)
	var fontImg *Surface
	if fi, err := rz.store.Lookup(fontID); err == nil {
		fontImg = fi.surface
	}
	var bg *Surface
	bgRepl := false
	if withBg {
		bgImg, err := rz.store.Lookup(bgID)
		if err != nil {
			return nil, err
		}
		bg = bgImg.surface
		bgRepl = bgImg.repl
	}

	clip, ok := clipr.Clip(dst.clipr)
	if !ok {
		return encodePoint(nil, p), nil
	}

	end := drawString(dst.surface, clip, src.surface, sp, src.repl, f, fontImg, p, indices, bg, bgp, bgRepl, rz.fallback, rz.store.currentOp)
	refreshR := Rect(p.X, p.Y-dst.r.Dy(), end.X, p.Y)
	refreshR, _ = refreshR.Clip(clip)
	rz.addRefresh(refreshR)
	return encodePoint(nil, end), nil
}

// opLoad implements the 'y'/'Y' opcodes (§4.3 "Load").
func (rz *Rasterizer) opLoad(d *Decoder, compressed bool) ([]byte, error) {
	id, err := d.Long()
	if err != nil {
		return nil, err
	}
	r, err := d.Rect()
	if err != nil {
		return nil, err
	}
	startPos := d.Pos()
	data := d.Rest()

	img, err := rz.store.Lookup(id)
	if err != nil {
		return nil, err
	}
	target, ok := r.Clip(img.r)
	if !ok {
		return encodeLong(nil, int32(len(data))), nil
	}
	depth := chantodepth(img.chanFmt)
	if depth == 0 {
		depth = chantodepth(XRGB32)
	}
	bpl := bytesPerLine(r, depth)
	want := bpl * r.Dy()

	raw := data
	if compressed {
		raw = decodeRLE(data, want)
	} else if len(raw) > want {
		raw = raw[:want]
	}

	for y := target.Min.Y; y < target.Max.Y; y++ {
		rowIdx := y - r.Min.Y
		rowStart := rowIdx * bpl
		if rowStart+bpl > len(raw) {
			break
		}
		row := raw[rowStart : rowStart+bpl]
		rgba := rowToRGBA(img.chanFmt, row, r.Dx())
		for x := target.Min.X; x < target.Max.X; x++ {
			colIdx := x - r.Min.X
			o := colIdx * 4
			img.surface.set(Pt(x, y), rgba[o], rgba[o+1], rgba[o+2], rgba[o+3])
		}
	}
	rz.addRefresh(target)

	consumed := len(data)
	if !compressed {
		consumed = want
		if consumed > len(data) {
			consumed = len(data)
		}
	}
	_ = startPos
	return encodeLong(nil, int32(consumed)), nil
}

// opUnload implements the 'r' opcode (§4.3 "Unload").
func (rz *Rasterizer) opUnload(d *Decoder) ([]byte, error) {
	id, err := d.Long()
	if err != nil {
		return nil, err
	}
	r, err := d.Rect()
	if err != nil {
		return nil, err
	}
	img, err := rz.store.Lookup(id)
	if err != nil {
		return nil, err
	}
	if !r.In(img.r) {
		return nil, newError(ErrOutOfRange, "unload rect %v outside image %v", r, img.r)
	}
	depth := chantodepth(img.chanFmt)
	if depth == 0 {
		depth = chantodepth(XRGB32)
	}
	bpl := bytesPerLine(r, depth)
	out := make([]byte, 0, bpl*r.Dy())
	rgba := make([]byte, r.Dx()*4)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, ca := img.surface.at(Pt(x, y))
			o := (x - r.Min.X) * 4
			rgba[o], rgba[o+1], rgba[o+2], rgba[o+3] = cr, cg, cb, ca
		}
		out = append(out, rgbaToRow(img.chanFmt, rgba, r.Dx())...)
	}
	return out, nil
}

// opOrigin implements the 'o' opcode. The real semantics (logical vs
// screen origin) are an open protocol question (§9); the parameters
// are decoded for wire compatibility and recorded as a no-op.
func (rz *Rasterizer) opOrigin(d *Decoder) error {
	if _, err := d.Long(); err != nil {
		return err
	}
	if _, err := d.Point(); err != nil {
		return err
	}
	if _, err := d.Point(); err != nil {
		return err
	}
	return nil
}

// opSetClip implements the 'c' opcode.
func (rz *Rasterizer) opSetClip(d *Decoder) error {
	id, err := d.Long()
	if err != nil {
		return err
	}
	repl, err := d.Byte()
	if err != nil {
		return err
	}
	clipr, err := d.Rect()
	if err != nil {
		return err
	}
	return rz.store.SetClip(id, repl != 0, clipr)
}

// opLoadChar implements the 'l' opcode (§4.3 "LoadChar").
func (rz *Rasterizer) opLoadChar(d *Decoder) error {
	fontID, err := d.Long()
	if err != nil {
		return err
	}
	srcID, err := d.Long()
	if err != nil {
		return err
	}
	index, err := d.Long()
	if err != nil {
		return err
	}
	r, err := d.Rect()
	if err != nil {
		return err
	}
	p, err := d.Point()
	if err != nil {
		return err
	}
	left, err := d.Byte()
	if err != nil {
		return err
	}
	width, err := d.Byte()
	if err != nil {
		return err
	}
	return rz.store.LoadChar(fontID, srcID, int(index), r, p, int8(left), width)
}

// opInit implements the 'I' opcode (§4.3 "Init", §6 "Init").
func (rz *Rasterizer) opInit() []byte {
	disp, _ := rz.store.Lookup(0)
	buf := make([]byte, 0, 4+4+128+16)
	buf = encodeLong(buf, 0)
	buf = encodeLong(buf, int32(uint32(XRGB32)))
	label := make([]byte, 128)
	buf = append(buf, label...)
	buf = encodeLong(buf, int32(disp.r.Min.X))
	buf = encodeLong(buf, int32(disp.r.Min.Y))
	buf = encodeLong(buf, int32(disp.r.Max.X))
	buf = encodeLong(buf, int32(disp.r.Max.Y))
	return buf
}
