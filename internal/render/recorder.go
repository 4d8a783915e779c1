package render

import "fmt"

// Op identifies a recorded paint operation.
type Op string

const (
	OpFillScreen   Op = "fill_screen"
	OpFillRect     Op = "fill_rect"
	OpFillCircle   Op = "fill_circle"
	OpDrawCircle   Op = "draw_circle"
	OpFillTriangle Op = "fill_triangle"
	OpDrawLine     Op = "draw_line"
	OpDrawText     Op = "draw_text"
)

// PaintOp is one recorded drawing call with its arguments.
type PaintOp struct {
	Op    Op
	Args  []int
	Text  string
	Color Color
}

func (p PaintOp) String() string {
	return fmt.Sprintf("%s%v %q #%04x", p.Op, p.Args, p.Text, uint16(p.Color))
}

// Recorder is a Surface that captures paint operations instead of producing
// pixels. Renderer tests assert on the captured stream: how many ops an
// update produced, which regions were cleared, which triangles a ring fill
// emitted.
type Recorder struct {
	W, H int
	Ops  []PaintOp
}

// NewRecorder returns a recording surface of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) record(op Op, c Color, text string, args ...int) {
	r.Ops = append(r.Ops, PaintOp{Op: op, Args: args, Text: text, Color: c})
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) FillScreen(c Color) { r.record(OpFillScreen, c, "") }

func (r *Recorder) FillRect(x, y, w, h int, c Color) {
	r.record(OpFillRect, c, "", x, y, w, h)
}

func (r *Recorder) FillCircle(cx, cy, rad int, c Color) {
	r.record(OpFillCircle, c, "", cx, cy, rad)
}

func (r *Recorder) DrawCircle(cx, cy, rad int, c Color) {
	r.record(OpDrawCircle, c, "", cx, cy, rad)
}

func (r *Recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	r.record(OpFillTriangle, c, "", x0, y0, x1, y1, x2, y2)
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 int, c Color) {
	r.record(OpDrawLine, c, "", x0, y0, x1, y1)
}

func (r *Recorder) DrawText(x, y, size int, s string, c Color) {
	r.record(OpDrawText, c, s, x, y, size)
}

// Reset drops the recorded operations, keeping the surface size.
func (r *Recorder) Reset() { r.Ops = nil }

// Count returns how many operations of the given kind were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, p := range r.Ops {
		if p.Op == op {
			n++
		}
	}
	return n
}

// CountColor returns how many operations of the given kind used color c.
func (r *Recorder) CountColor(op Op, c Color) int {
	n := 0
	for _, p := range r.Ops {
		if p.Op == op && p.Color == c {
			n++
		}
	}
	return n
}

// Texts returns every drawn string in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, p := range r.Ops {
		if p.Op == OpDrawText {
			out = append(out, p.Text)
		}
	}
	return out
}
