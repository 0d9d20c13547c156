package draw

// Image is a rectangular pixel buffer owned by the Store and identified
// by a signed 32-bit id (§3). Id 0 is the visible display; it is
// created implicitly and can never be freed.
type Image struct {
	id       int32
	screenID int32
	r        Rectangle
	clipr    Rectangle
	repl     bool
	chanFmt  Pix
	surface  *Surface
}

// Bounds returns the image's origin rectangle (§3).
func (img *Image) Bounds() Rectangle { return img.r }

// At returns the straight RGBA8 colour of the pixel at (x, y) in the
// image's own coordinate space. It is the read-side counterpart used
// by presentation code outside the package (e.g. a display backend)
// that needs the compositor's rendered output.
func (img *Image) At(x, y int) (r, g, b, a byte) {
	return img.surface.at(Pt(x, y))
}

// Screen is a logical grouping of images, tracked for protocol
// completeness; layering order is advisory (§3).
type Screen struct {
	id      int32
	imageID int32
	fillID  int32
	public  bool
}

// glyph is one entry of a Font's metrics table (§3).
type glyph struct {
	x           int
	top, bottom int
	left        int8
	width       uint8
}

// Font is the glyph metrics table for the image keyed by the same id
// (§3, §4.4). A font is deleted when its backing image is freed.
type Font struct {
	imageID int32
	ascent  int
	height  int
	glyphs  []glyph // length n+1; entry n is the sentinel
}

// Store owns every Image, Screen, and Font, and the rasterizer's
// cross-command state: the sticky current operator and the accumulated
// refresh rectangle (§4.2, §9 "Ownership of surfaces").
type Store struct {
	images  map[int32]*Image
	screens map[int32]*Screen
	fonts   map[int32]*Font
	names   map[string]int32

	currentOp Op
	refresh   Rectangle
}

// NewStore creates a store with a display surface (id 0) of the given
// extent, initialised to zero and formatted XRGB32.
func NewStore(w, h int) *Store {
	r := Rect(0, 0, w, h)
	disp := &Image{
		id:      0,
		r:       r,
		clipr:   r,
		chanFmt: XRGB32,
		surface: newSurface(r),
	}
	disp.surface.attached = true
	return &Store{
		images:    map[int32]*Image{0: disp},
		screens:   map[int32]*Screen{},
		fonts:     map[int32]*Font{},
		names:     map[string]int32{},
		currentOp: SoverD,
	}
}

// Lookup returns the image with the given id.
func (st *Store) Lookup(id int32) (*Image, error) {
	img, ok := st.images[id]
	if !ok {
		return nil, newError(ErrUnknownImage, "no image %d", id)
	}
	return img, nil
}

// LookupFont returns the glyph table keyed by id.
func (st *Store) LookupFont(id int32) (*Font, error) {
	f, ok := st.fonts[id]
	if !ok {
		return nil, newError(ErrUnknownFont, "no font %d", id)
	}
	return f, nil
}

// Alloc creates or replaces image id with the given geometry, filled
// with color decoded per chanFmt. Replacing an existing id must not
// affect the display surface (§4.2).
func (st *Store) Alloc(id, screenID int32, chanFmt Pix, repl bool, r, clipr Rectangle, color uint32) (*Image, error) {
	if chantodepth(chanFmt) == 0 {
		return nil, newError(ErrAllocationFailure, "bad channel descriptor 0x%x", uint32(chanFmt))
	}
	if !clipr.In(r) {
		return nil, newError(ErrOutOfRange, "clip %v not inside %v", clipr, r)
	}
	img := &Image{
		id:       id,
		screenID: screenID,
		r:        r,
		clipr:    clipr,
		repl:     repl,
		chanFmt:  chanFmt,
		surface:  newSurface(r),
	}
	cr, cg, cb, ca := decodeColor(chanFmt, color)
	img.surface.fill(r, cr, cg, cb, ca)
	st.images[id] = img
	delete(st.fonts, id)
	return img, nil
}

// decodeColor interprets a 32-bit AxRGB allocation colour (§3: byte
// order A,R,G,B most to least significant) quantised to chanFmt and
// re-expanded to straight RGBA8, so a GREY8 image allocated with a
// colour value is filled with the same grey level load/unload would
// report.
func decodeColor(chanFmt Pix, color uint32) (r, g, b, a byte) {
	cr := byte(color >> 16)
	cg := byte(color >> 8)
	cb := byte(color)
	ca := byte(color >> 24)
	comps := channelComponents(chanFmt)
	depth := chantodepth(chanFmt)
	if comps == nil || depth == 0 {
		return cr, cg, cb, ca
	}
	word := rgbaToPixel(comps, depth, cr, cg, cb, ca)
	return pixelToRGBA(comps, word, depth)
}

// Free destroys image id and any font keyed by it. Freeing id 0 is a
// display invariant violation (§4.2, §7).
func (st *Store) Free(id int32) error {
	if id == 0 {
		return newError(ErrDisplayInvariant, "cannot free the display")
	}
	delete(st.images, id)
	delete(st.fonts, id)
	return nil
}

// SetClip atomically updates an image's clip rectangle and replication
// flag.
func (st *Store) SetClip(id int32, repl bool, clipr Rectangle) error {
	img, err := st.Lookup(id)
	if err != nil {
		return err
	}
	if !clipr.In(img.r) {
		return newError(ErrOutOfRange, "clip %v not inside %v", clipr, img.r)
	}
	img.repl = repl
	img.clipr = clipr
	return nil
}

// ResizeDisplay resizes id 0's surface to (w, h); the clip and extent
// rectangles grow to match with origin (0, 0) (§4.2).
func (st *Store) ResizeDisplay(w, h int) error {
	if w <= 0 || h <= 0 {
		return newError(ErrDisplayInvariant, "non-positive display extent %dx%d", w, h)
	}
	disp := st.images[0]
	r := Rect(0, 0, w, h)
	disp.r = r
	disp.clipr = r
	disp.surface.resize(r)
	disp.surface.attached = true
	return nil
}

// AllocScreen creates or replaces screen id, advisory bookkeeping only
// (§3).
func (st *Store) AllocScreen(id, imageID, fillID int32, public bool) {
	st.screens[id] = &Screen{id: id, imageID: imageID, fillID: fillID, public: public}
}

// FreeScreen drops screen id.
func (st *Store) FreeScreen(id int32) {
	delete(st.screens, id)
}

// InitFont allocates a glyph table of size n+1 with zeroed metrics
// (§4.3 "InitFont").
func (st *Store) InitFont(fontID int32, n int, ascent int) error {
	if _, err := st.Lookup(fontID); err != nil {
		return err
	}
	if n < 0 {
		return newError(ErrOutOfRange, "negative glyph count %d", n)
	}
	st.fonts[fontID] = &Font{
		imageID: fontID,
		ascent:  ascent,
		height:  ascent,
		glyphs:  make([]glyph, n+1),
	}
	return nil
}

// LoadChar copies the glyph raster for index from srcID into fontID's
// backing image at r and records its metrics (§4.3 "LoadChar").
func (st *Store) LoadChar(fontID, srcID int32, index int, r Rectangle, p Point, left int8, width uint8) error {
	f, err := st.LookupFont(fontID)
	if err != nil {
		return err
	}
	if index < 0 || index+1 >= len(f.glyphs) {
		return newError(ErrOutOfRange, "glyph index %d out of range [0,%d)", index, len(f.glyphs)-1)
	}
	fontImg, err := st.Lookup(fontID)
	if err != nil {
		return err
	}
	srcImg, err := st.Lookup(srcID)
	if err != nil {
		return err
	}
	if !r.In(fontImg.r) {
		return newError(ErrOutOfRange, "glyph rect %v outside font image %v", r, fontImg.r)
	}
	blit(fontImg.surface, r, r.Min, srcImg.surface, p, srcImg.repl, nil, ZP, false, S)
	f.glyphs[index] = glyph{x: r.Min.X, top: r.Min.Y, bottom: r.Max.Y, left: left, width: width}
	f.glyphs[index+1].x = r.Max.X
	if r.Max.Y > f.height {
		f.height = r.Max.Y
	}
	return nil
}
