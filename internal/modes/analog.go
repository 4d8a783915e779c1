package modes

import (
	"math"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/geometry"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

// Hand ids tracked in the render state.
const (
	handHour   = "hour"
	handMinute = "minute"
)

const (
	secondsRingThickness = 4
	secondsDegPerUnit    = 6
	// seconds ring angles start at 270 (12 o'clock in screen convention)
	secondsRingStart = 270
)

// Analog is the analog clock face: hour/minute hands as line segments and an
// accumulating filled ring of 6-degree wedges for seconds. Hands get a
// fractional carry from the next finer unit (minute +0.1°/s, hour +0.5°/min)
// so they creep instead of jumping.
type Analog struct {
	face   Face
	themes *theme.Resolver
	st     *render.State

	ringRadius int

	prevMinuteX, prevMinuteY int
	prevHourX, prevHourY     int

	hourColor   render.Color
	minuteColor render.Color
	markerColor render.Color
	dotColor    render.Color
}

// NewAnalog builds the analog mode. The seconds ring hugs the screen edge.
func NewAnalog(face Face, themes *theme.Resolver) *Analog {
	return &Analog{
		face:        face,
		themes:      themes,
		st:          render.NewState(),
		ringRadius:  face.Radius,
		hourColor:   render.White,
		minuteColor: render.Yellow,
		markerColor: render.Cyan,
		dotColor:    render.Cyan,
	}
}

func (a *Analog) Name() string { return arcclock.ModeArcAnalog.String() }

func (a *Analog) Init() {
	a.st.Reset()
	a.prevMinuteX, a.prevMinuteY = render.Unset, render.Unset
	a.prevHourX, a.prevHourY = render.Unset, render.Unset
}

func (a *Analog) Cleanup() {
	a.st.Reset()
}

// handAngles computes the hand angles in degrees from 12 o'clock, including
// the fractional carry from the finer unit.
func handAngles(t arcclock.TimeSample) (hourDeg, minuteDeg float64) {
	minuteDeg = float64(t.Minute)*6 + float64(t.Second)*0.1
	hourDeg = float64(t.Hour%12)*30 + float64(t.Minute)*0.5
	return hourDeg, minuteDeg
}

func (a *Analog) DrawFull(t arcclock.TimeSample) {
	a.face.Surface.FillScreen(render.Black)
	a.drawFaceMarkers()

	hourDeg, minuteDeg := handAngles(t)
	a.drawHand(handHour, hourDeg)
	a.drawHand(handMinute, minuteDeg)

	ringColor := a.themes.SecondRingColor()
	for i := 0; i < t.Second; i++ {
		a.drawSecondsWedge(i, ringColor)
	}
	a.st.Second = t.Second
	a.st.ArcFill = t.Second

	a.drawCenterDot()
	a.st.MarkInitialized()
}

func (a *Analog) Update(t arcclock.TimeSample) {
	if !a.st.Initialized() {
		a.DrawFull(t)
		return
	}

	hourDeg, minuteDeg := handAngles(t)

	if t.Second != a.st.Second {
		if render.Rollover(a.st.Second, t.Second) {
			// A single added wedge cannot erase a full lap: clear the whole
			// ring, clean both hands, and rebuild the face.
			a.clearSecondsRing()
			a.eraseHand(a.prevMinuteX, a.prevMinuteY)
			a.eraseHand(a.prevHourX, a.prevHourY)
			a.drawFaceMarkers()
			a.drawHand(handHour, hourDeg)
			a.drawHand(handMinute, minuteDeg)
			ringColor := a.themes.SecondRingColor()
			for i := 0; i < t.Second; i++ {
				a.drawSecondsWedge(i, ringColor)
			}
		} else {
			a.drawSecondsWedge(t.Second-1, a.themes.SecondRingColor())
		}
		a.st.Second = t.Second
		a.st.ArcFill = t.Second
		a.drawCenterDot()
	}

	if a.st.AngleChanged(handMinute, minuteDeg) {
		a.eraseHand(a.prevMinuteX, a.prevMinuteY)
		a.drawHand(handMinute, minuteDeg)
		a.drawCenterDot()
	}

	if a.st.AngleChanged(handHour, hourDeg) {
		a.eraseHand(a.prevHourX, a.prevHourY)
		a.drawHand(handHour, hourDeg)
		a.drawCenterDot()
	}
}

// drawFaceMarkers paints the 12 hour dots just inside the screen edge.
func (a *Analog) drawFaceMarkers() {
	for i := 0; i < 12; i++ {
		rad := float64(i) * 30 * math.Pi / 180
		x := a.face.CenterX + int(math.Sin(rad)*float64(a.face.Radius)*0.95)
		y := a.face.CenterY - int(math.Cos(rad)*float64(a.face.Radius)*0.95)
		a.face.Surface.FillCircle(x, y, 3, a.markerColor)
	}
}

func (a *Analog) handLength(hand string) int {
	if hand == handHour {
		return int(float64(a.face.Radius) * 0.5)
	}
	return int(float64(a.face.Radius) * 0.7)
}

// drawHand paints the hand at deg (measured from 12 o'clock, clockwise) and
// records its endpoint and angle for the next erase.
func (a *Analog) drawHand(hand string, deg float64) {
	rad := deg * math.Pi / 180
	length := float64(a.handLength(hand))
	x := a.face.CenterX + int(math.Sin(rad)*length)
	y := a.face.CenterY - int(math.Cos(rad)*length)

	color := a.minuteColor
	if hand == handHour {
		color = a.hourColor
	}
	a.face.Surface.DrawLine(a.face.CenterX, a.face.CenterY, x, y, color)

	a.st.SetAngle(hand, deg)
	if hand == handHour {
		a.prevHourX, a.prevHourY = x, y
	} else {
		a.prevMinuteX, a.prevMinuteY = x, y
	}
}

// eraseHand blacks out the old hand with a bundle of offset lines, thick
// enough to cover rounding drift from the draw.
func (a *Analog) eraseHand(px, py int) {
	if px == render.Unset && py == render.Unset {
		return
	}
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			a.face.Surface.DrawLine(
				a.face.CenterX+i, a.face.CenterY+j,
				px+i, py+j, render.Black)
		}
	}
}

func (a *Analog) drawSecondsWedge(i int, c render.Color) {
	start := float64(secondsRingStart + i*secondsDegPerUnit)
	geometry.FillRing(a.face.Surface, geometry.ArcSpec{
		CenterX:    a.face.CenterX,
		CenterY:    a.face.CenterY,
		Radius:     a.ringRadius,
		Thickness:  secondsRingThickness,
		StartAngle: start,
		EndAngle:   start + secondsDegPerUnit,
		Color:      c,
	})
}

func (a *Analog) clearSecondsRing() {
	for i := 0; i < 60; i++ {
		a.drawSecondsWedge(i, render.Black)
	}
}

func (a *Analog) drawCenterDot() {
	a.face.Surface.FillCircle(a.face.CenterX, a.face.CenterY, 5, a.dotColor)
}
