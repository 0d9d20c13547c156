// Drawdemo drives a draw.Rasterizer in-process with a small scripted
// opcode stream and presents its display surface in an SDL2 window
// once, after the script has run; the flush rectangles the script
// reports are not used.
package main

import (
	"flag"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/elizafairlady/drawcompositor/draw"
)

var (
	width  = flag.Int("w", 320, "display width")
	height = flag.Int("h", 240, "display height")
)

func main() {
	flag.Parse()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("sdl init: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("drawdemo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(*width), int32(*height), sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		log.Fatalf("get surface: %v", err)
	}

	rz := draw.NewRasterizer(*width, *height)
	if _, _, err := rz.Process(sampleScript(*width, *height)); err != nil {
		log.Fatalf("process script: %v", err)
	}

	presentDisplay(rz, surface)
	if err := window.UpdateSurface(); err != nil {
		log.Fatalf("update surface: %v", err)
	}

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}
		sdl.Delay(16)
	}
}

// presentDisplay copies the compositor's id-0 display surface into an
// SDL2 surface, converting straight RGBA8 to the SDL surface's native
// byte order pixel by pixel.
func presentDisplay(rz *draw.Rasterizer, dst *sdl.Surface) {
	disp, err := rz.Store().Lookup(0)
	if err != nil {
		log.Fatalf("lookup display: %v", err)
	}
	w, h := disp.Bounds().Dx(), disp.Bounds().Dy()
	format, err := sdl.AllocFormat(uint32(dst.Format.Format))
	if err != nil {
		log.Fatalf("alloc format: %v", err)
	}
	defer format.Free()

	pixels := dst.Pixels()
	pitch := int(dst.Pitch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := disp.At(x, y)
			mapped := sdl.MapRGBA(format, r, g, b, a)
			off := y*pitch + x*4
			if off+3 >= len(pixels) {
				continue
			}
			pixels[off+0] = byte(mapped)
			pixels[off+1] = byte(mapped >> 8)
			pixels[off+2] = byte(mapped >> 16)
			pixels[off+3] = byte(mapped >> 24)
		}
	}
}

// sampleScript builds a small opcode stream: allocate a colour image,
// draw it across the display, then flush.
func sampleScript(w, h int) []byte {
	var b []byte
	b = opByte(b, 'b')
	b = opLong(b, 1)
	b = opLong(b, 0)
	b = append(b, draw.Refnone)
	b = opULong(b, uint32(draw.XRGB32))
	b = append(b, 1)
	b = opRect(b, draw.Rect(0, 0, 1, 1))
	b = opRect(b, draw.Rect(0, 0, 1, 1))
	b = opULong(b, 0xFF2060A0)

	b = opByte(b, 'd')
	b = opLong(b, 0)
	b = opLong(b, 1)
	b = opLong(b, 0)
	b = opRect(b, draw.Rect(0, 0, w, h))
	b = opPoint(b, draw.Pt(0, 0))
	b = opPoint(b, draw.Pt(0, 0))

	b = opByte(b, 'v')
	return b
}

func opByte(b []byte, c byte) []byte { return append(b, c) }

func opLong(b []byte, v int32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func opULong(b []byte, v uint32) []byte { return opLong(b, int32(v)) }

func opPoint(b []byte, p draw.Point) []byte {
	b = opLong(b, int32(p.X))
	b = opLong(b, int32(p.Y))
	return b
}

func opRect(b []byte, r draw.Rectangle) []byte {
	b = opPoint(b, r.Min)
	b = opPoint(b, r.Max)
	return b
}
