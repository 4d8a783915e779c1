// Package geometry draws annular arc segments and related polar shapes on a
// render.Surface. It keeps no state between calls; every function paints and
// returns.
package geometry

import (
	"math"

	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
)

const degToRad = math.Pi / 180

// quadSpanDeg is the largest arc span rendered as a single quadrilateral.
// Tiny slivers get over-segmented (and visibly noisy) otherwise.
const quadSpanDeg = 5.0

// minSegments is the floor on subdivision for the general case, enough to
// keep a full ring visually round at the panel's radii.
const minSegments = 20

// ArcSpec describes one ring-fill operation: a filled annular wedge centered
// on (CenterX, CenterY) between StartAngle and EndAngle. Angles are degrees;
// callers offset so that -90 is 12 o'clock. EndAngle < StartAngle requests
// wraparound across the 0/360 boundary.
type ArcSpec struct {
	CenterX, CenterY int
	Radius           int // centerline radius of the ring
	Thickness        int
	StartAngle       float64
	EndAngle         float64
	Color            render.Color
	RoundCaps        bool
}

// PointOnCircle converts polar coordinates (degrees, screen convention:
// 0 right, 90 down) to the pixel at distance r from (cx, cy).
func PointOnCircle(cx, cy int, r, deg float64) (int, int) {
	rad := deg * degToRad
	x := float64(cx) + math.Cos(rad)*r
	y := float64(cy) + math.Sin(rad)*r
	return int(math.Round(x)), int(math.Round(y))
}

// Segments returns the subdivision count for an arc of the given span and
// radius. It grows with both: longer arcs need more pieces, and a larger
// radius makes each chord error more visible.
func Segments(spanDeg float64, radius int) int {
	n := int(spanDeg/quadSpanDeg) + radius/20
	if n < minSegments {
		n = minSegments
	}
	return n
}

// FillRing paints the annular wedge described by spec. Degenerate inputs do
// not crash: a non-positive thickness paints nothing and an inner radius
// below zero is clamped.
func FillRing(s render.Surface, spec ArcSpec) {
	if spec.Thickness <= 0 {
		return
	}

	// Wraparound: split at the 0/360 boundary and recurse once. Both halves
	// are well-ordered, so the recursion is bounded to depth 1.
	if spec.EndAngle < spec.StartAngle {
		first := spec
		first.EndAngle = 360
		second := spec
		second.StartAngle = 0
		if first.EndAngle < first.StartAngle || second.EndAngle < second.StartAngle {
			return
		}
		FillRing(s, first)
		FillRing(s, second)
		return
	}

	inner := float64(spec.Radius) - float64(spec.Thickness)/2
	if inner < 0 {
		inner = 0
	}
	outer := float64(spec.Radius) + float64(spec.Thickness)/2

	span := spec.EndAngle - spec.StartAngle

	// Small arcs collapse to one quad between the four corner points.
	if span <= quadSpanDeg {
		fillQuad(s, spec, inner, outer, spec.StartAngle, spec.EndAngle)
	} else {
		n := Segments(span, spec.Radius)
		step := span / float64(n)
		for i := 0; i < n; i++ {
			a0 := spec.StartAngle + float64(i)*step
			a1 := spec.StartAngle + float64(i+1)*step
			fillQuad(s, spec, inner, outer, a0, a1)
		}
	}

	if spec.RoundCaps && span < 360 {
		drawCaps(s, spec)
	}
}

// fillQuad paints the annular cell between angles a0 and a1 as two triangles
// with consistent winding so adjacent cells share edges without seams.
func fillQuad(s render.Surface, spec ArcSpec, inner, outer, a0, a1 float64) {
	x0, y0 := PointOnCircle(spec.CenterX, spec.CenterY, inner, a0)
	x1, y1 := PointOnCircle(spec.CenterX, spec.CenterY, outer, a0)
	x2, y2 := PointOnCircle(spec.CenterX, spec.CenterY, outer, a1)
	x3, y3 := PointOnCircle(spec.CenterX, spec.CenterY, inner, a1)
	s.FillTriangle(x0, y0, x1, y1, x2, y2, spec.Color)
	s.FillTriangle(x0, y0, x2, y2, x3, y3, spec.Color)
}

// drawCaps rounds off the stroke ends with filled circles at both endpoints.
// An oversized cap goes down first, then a slightly smaller one, masking the
// aliasing gap where the cap meets the last segment.
func drawCaps(s render.Surface, spec ArcSpec) {
	capR := spec.Thickness / 2
	if capR < 1 {
		return
	}
	for _, deg := range []float64{spec.StartAngle, spec.EndAngle} {
		cx, cy := PointOnCircle(spec.CenterX, spec.CenterY, float64(spec.Radius), deg)
		s.FillCircle(cx, cy, capR+1, spec.Color)
		s.FillCircle(cx, cy, capR, spec.Color)
	}
}

// RadialTicks draws the wedge between startAngle and endAngle as thick chord
// line segments instead of filled triangles: one line at the given radius and
// one per pixel of thickness stepping inward. The weather mode's thin outer
// seconds ring is built this way.
func RadialTicks(s render.Surface, cx, cy, radius, thickness int, startAngle, endAngle float64, c render.Color) {
	for t := 0; t < thickness; t++ {
		r := float64(radius - t)
		if r <= 0 {
			break
		}
		x0, y0 := PointOnCircle(cx, cy, r, startAngle)
		x1, y1 := PointOnCircle(cx, cy, r, endAngle)
		s.DrawLine(x0, y0, x1, y1, c)
	}
}
