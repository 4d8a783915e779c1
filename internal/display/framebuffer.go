// Package display provides the concrete output sinks: an image-backed
// framebuffer implementing render.Surface, and the LED ring.
package display

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
)

// Base glyph cell of basicfont.Face7x13, used for text sizing.
const (
	glyphW = 7
	glyphH = 13
)

// Framebuffer is a render.Surface backed by an in-memory RGBA image. On the
// device this image is what gets pushed to the panel; on a host build it is
// what the preview endpoint serves as PNG.
type Framebuffer struct {
	mu  sync.Mutex
	img *image.RGBA
}

// NewFramebuffer allocates a w x h framebuffer cleared to black. Unset
// dimensions default to the 240x240 round panel.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 {
		w = 240
	}
	if h <= 0 {
		h = 240
	}
	fb := &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	fb.FillScreen(render.Black)
	return fb
}

func toRGBA(c render.Color) color.RGBA {
	r, g, b := c.RGB888()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (f *Framebuffer) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

func (f *Framebuffer) FillScreen(c render.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	draw.Draw(f.img, f.img.Bounds(), &image.Uniform{C: toRGBA(c)}, image.Point{}, draw.Src)
}

func (f *Framebuffer) FillRect(x, y, w, h int, c render.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Bounds())
	draw.Draw(f.img, r, &image.Uniform{C: toRGBA(c)}, image.Point{}, draw.Src)
}

func (f *Framebuffer) set(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(f.img.Bounds()) {
		f.img.SetRGBA(x, y, c)
	}
}

func (f *Framebuffer) FillCircle(cx, cy, rad int, c render.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	col := toRGBA(c)
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy <= rad*rad {
				f.set(cx+dx, cy+dy, col)
			}
		}
	}
}

func (f *Framebuffer) DrawCircle(cx, cy, rad int, c render.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	col := toRGBA(c)
	// midpoint circle
	x, y, d := rad, 0, 1-rad
	for x >= y {
		for _, p := range [][2]int{
			{cx + x, cy + y}, {cx + y, cy + x}, {cx - y, cy + x}, {cx - x, cy + y},
			{cx - x, cy - y}, {cx - y, cy - x}, {cx + y, cy - x}, {cx + x, cy - y},
		} {
			f.set(p[0], p[1], col)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int, c render.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	col := toRGBA(c)
	// Bresenham
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		f.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (f *Framebuffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, c render.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	col := toRGBA(c)

	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)

	edge := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			w0 := edge(x1, y1, x2, y2, px, py)
			w1 := edge(x2, y2, x0, y0, px, py)
			w2 := edge(x0, y0, x1, y1, px, py)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				f.set(px, py, col)
			}
		}
	}
}

// DrawText renders s at integer scale size using the 7x13 base face. Glyphs
// are rasterized at scale 1 and block-scaled up, which matches the chunky
// look of the panel firmware's setTextSize.
func (f *Framebuffer) DrawText(x, y, size int, s string, c render.Color) {
	if size < 1 {
		size = 1
	}
	w := len(s) * glyphW
	if w == 0 {
		return
	}
	cell := image.NewRGBA(image.Rect(0, 0, w, glyphH))
	d := font.Drawer{
		Dst:  cell,
		Src:  image.NewUniform(toRGBA(c)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)

	f.mu.Lock()
	defer f.mu.Unlock()
	for cy := 0; cy < glyphH; cy++ {
		for cx := 0; cx < w; cx++ {
			src := cell.RGBAAt(cx, cy)
			if src.A == 0 {
				continue
			}
			for sy := 0; sy < size; sy++ {
				for sx := 0; sx < size; sx++ {
					f.set(x+cx*size+sx, y+cy*size+sy, src)
				}
			}
		}
	}
}

// TextWidth returns the pixel width of s at the given scale.
func TextWidth(s string, size int) int {
	if size < 1 {
		size = 1
	}
	return len(s) * glyphW * size
}

// Snapshot returns a copy of the current frame for encoding or diffing.
func (f *Framebuffer) Snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := image.NewRGBA(f.img.Bounds())
	copy(dup.Pix, f.img.Pix)
	return dup
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
