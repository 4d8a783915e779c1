package modes

import (
	"fmt"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/geometry"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

// Activity-ring palette, close to the original watch rings.
const (
	ringHoursColor     render.Color = 0x04FF
	ringMinutesColor   render.Color = 0x07E0
	ringSecondsColor   render.Color = 0xF800
	ringHoursBgColor   render.Color = 0x0219
	ringMinutesBgColor render.Color = 0x0300
	ringSecondsBgColor render.Color = 0x4000
)

// progressStart puts the zero point of every ring at 12 o'clock.
const progressStart = -90

// Rings renders three concentric progress rings (hours inner, minutes
// middle, seconds outer) over a dim full-circle background, plus a compact
// digital readout in the center. Each ring follows the rollover rule
// independently: when its value wraps, the background ring is repainted
// before the new, near-empty foreground arc goes down.
type Rings struct {
	face   Face
	themes *theme.Resolver
	st     *render.State
	policy ZeroPolicy

	hoursRadius   int
	minutesRadius int
	secondsRadius int
	thickness     int
}

// NewRings builds the activity-rings mode with the given zero-value policy.
func NewRings(face Face, themes *theme.Resolver, policy ZeroPolicy) *Rings {
	return &Rings{
		face:          face,
		themes:        themes,
		st:            render.NewState(),
		policy:        policy,
		hoursRadius:   face.Radius * 45 / 120,
		minutesRadius: face.Radius * 75 / 120,
		secondsRadius: face.Radius * 105 / 120,
		thickness:     face.Radius * 16 / 120,
	}
}

func (r *Rings) Name() string { return arcclock.ModeAppleRings.String() }

func (r *Rings) Init()    { r.st.Reset() }
func (r *Rings) Cleanup() { r.st.Reset() }

// SetZeroPolicy swaps the zero-value rendering at runtime. The caller is
// expected to force a full repaint afterwards.
func (r *Rings) SetZeroPolicy(p ZeroPolicy) { r.policy = p }

func (r *Rings) DrawFull(t arcclock.TimeSample) {
	r.face.Surface.FillScreen(render.Black)
	r.paintBackgroundRing(r.hoursRadius, ringHoursBgColor)
	r.paintBackgroundRing(r.minutesRadius, ringMinutesBgColor)
	r.paintBackgroundRing(r.secondsRadius, ringSecondsBgColor)

	r.st.Reset()
	r.st.MarkInitialized()
	r.Update(t)
}

func (r *Rings) Update(t arcclock.TimeSample) {
	if !r.st.Initialized() {
		r.DrawFull(t)
		return
	}

	displayHours := ringHourValue(t)
	changed := false

	if displayHours != r.st.Hour {
		if render.Rollover(r.st.Hour, displayHours) {
			r.paintBackgroundRing(r.hoursRadius, ringHoursBgColor)
		}
		r.paintProgress(r.hoursRadius, displayHours, hourDegreesPerUnit(t), ringHoursColor)
		r.st.Hour = displayHours
		changed = true
	}

	if t.Minute != r.st.Minute {
		if render.Rollover(r.st.Minute, t.Minute) {
			r.paintBackgroundRing(r.minutesRadius, ringMinutesBgColor)
		}
		r.paintProgress(r.minutesRadius, t.Minute, 6, ringMinutesColor)
		r.st.Minute = t.Minute
		changed = true
	}

	if t.Second != r.st.Second {
		if render.Rollover(r.st.Second, t.Second) {
			r.paintBackgroundRing(r.secondsRadius, ringSecondsBgColor)
		}
		r.paintProgress(r.secondsRadius, t.Second, 6, ringSecondsColor)
		r.st.Second = t.Second
		changed = true
	}

	if changed {
		r.paintCenterDigits(t)
	}
}

// ringHourValue maps the 24h hour onto ring units: 0..23 in 24-hour format,
// 0..11 otherwise.
func ringHourValue(t arcclock.TimeSample) int {
	if t.Is24Hour {
		return t.Hour
	}
	return t.Hour % 12
}

func hourDegreesPerUnit(t arcclock.TimeSample) float64 {
	if t.Is24Hour {
		return 15
	}
	return 30
}

func (r *Rings) paintBackgroundRing(radius int, c render.Color) {
	geometry.FillRing(r.face.Surface, geometry.ArcSpec{
		CenterX:   r.face.CenterX,
		CenterY:   r.face.CenterY,
		Radius:    radius,
		Thickness: r.thickness,
		EndAngle:  360,
		Color:     c,
	})
}

// paintProgress draws the foreground arc for value units of degPerUnit each,
// honoring the zero-value policy.
func (r *Rings) paintProgress(radius, value int, degPerUnit float64, c render.Color) {
	end := progressStart + float64(value)*degPerUnit
	if value == 0 {
		switch r.policy {
		case ZeroEmpty:
			return
		default:
			end = progressStart + 360
		}
	}
	geometry.FillRing(r.face.Surface, geometry.ArcSpec{
		CenterX:    r.face.CenterX,
		CenterY:    r.face.CenterY,
		Radius:     radius,
		Thickness:  r.thickness,
		StartAngle: progressStart,
		EndAngle:   end,
		Color:      c,
		RoundCaps:  true,
	})
}

// paintCenterDigits redraws the compact time readout inside the inner ring.
func (r *Rings) paintCenterDigits(t arcclock.TimeSample) {
	s := r.face.Surface
	cx, cy := r.face.CenterX, r.face.CenterY
	s.FillCircle(cx, cy, r.hoursRadius-r.thickness-2, render.Black)

	s.DrawText(cx-7, cy-22, 1, fmt.Sprintf("%02d", t.Second), render.White)
	s.DrawText(cx-35, cy-9, 2, fmt.Sprintf("%02d:%02d", t.DisplayHour(), t.Minute), render.White)
	if !t.Is24Hour {
		label := "AM"
		if t.IsPM() {
			label = "PM"
		}
		s.DrawText(cx-7, cy+12, 1, label, render.White)
	}
}
