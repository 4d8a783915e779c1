// Package modes implements the visual clock modes. Every mode owns a
// render.State with the values it last painted and repaints only deltas on
// update; a full repaint happens on first use, on mode entry, and whenever
// the coordinator forces a refresh.
package modes

import (
	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
)

// Renderer is the lifecycle contract every mode implements. Init resets the
// tracked previous values, DrawFull paints the whole view, Update repaints
// only elements whose value changed, Cleanup releases whatever the mode set
// up. Update must fall back to DrawFull while the mode is uninitialized.
type Renderer interface {
	Name() string
	Init()
	DrawFull(t arcclock.TimeSample)
	Update(t arcclock.TimeSample)
	Cleanup()
}

// ColonBlinker is implemented by modes with a blinking colon, toggled by the
// coordinator on its own sub-second cadence independent of time deltas.
type ColonBlinker interface {
	BlinkColon()
}

// Face bundles the paint surface with the precomputed screen geometry the
// firmware kept in globals.
type Face struct {
	Surface render.Surface
	CenterX int
	CenterY int
	Radius  int
	Width   int
	Height  int
}

// NewFace derives the face geometry from the surface dimensions.
func NewFace(s render.Surface) Face {
	w, h := s.Size()
	r := w
	if h < r {
		r = h
	}
	return Face{
		Surface: s,
		CenterX: w / 2,
		CenterY: h / 2,
		Radius:  r / 2,
		Width:   w,
		Height:  h,
	}
}

// scaleY maps a layout coordinate from the reference 240px-tall panel onto
// the actual surface height.
func (f Face) scaleY(v int) int { return v * f.Height / 240 }

// scaleX does the same for the horizontal axis.
func (f Face) scaleX(v int) int { return v * f.Width / 240 }

// ZeroPolicy decides how a progress ring renders the value zero: either as a
// full circle (the lap just completed) or as an empty ring. The firmware's
// revisions disagree, so it is configuration rather than a constant.
type ZeroPolicy int

const (
	// ZeroFullCircle renders value 0 as a complete ring. Default.
	ZeroFullCircle ZeroPolicy = iota
	// ZeroEmpty renders value 0 with no foreground at all.
	ZeroEmpty
)

// ParseZeroPolicy maps the config strings onto a policy; anything unknown
// falls back to the full-circle default.
func ParseZeroPolicy(s string) ZeroPolicy {
	if s == "empty" {
		return ZeroEmpty
	}
	return ZeroFullCircle
}

// Background paints mode-specific background art (the JPEG/GIF slot on the
// device). It reports false when the asset is unavailable so the renderer
// can fall back to drawn shapes.
type Background func(s render.Surface) bool
