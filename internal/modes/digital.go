package modes

import (
	"fmt"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

// Digital is the arc-reactor digital clock: large hour/minute fields with a
// blinking colon, a small seconds field, and an AM/PM marker in 12-hour
// format. Every field sits in its own box, cleared to the background color
// before a redraw so only the changed digits repaint.
type Digital struct {
	face    Face
	themes  *theme.Resolver
	st      *render.State
	bg      Background
	bgColor render.Color

	showColon bool
	prevColon int // render.Unset | 0 | 1
	prevPM    int // render.Unset | 0 | 1
}

// NewDigital builds the digital mode over the given face. bg may be nil;
// the mode then paints a plain dark background.
func NewDigital(face Face, themes *theme.Resolver, bg Background) *Digital {
	return &Digital{
		face:    face,
		themes:  themes,
		st:      render.NewState(),
		bg:      bg,
		bgColor: render.DarkNavy,
	}
}

func (d *Digital) Name() string { return arcclock.ModeArcDigital.String() }

func (d *Digital) Init() {
	d.st.Reset()
	d.showColon = true
	d.prevColon = render.Unset
	d.prevPM = render.Unset
}

func (d *Digital) Cleanup() {
	d.st.Reset()
}

func (d *Digital) DrawFull(t arcclock.TimeSample) {
	if d.bg == nil || !d.bg(d.face.Surface) {
		d.face.Surface.FillScreen(render.Black)
	}
	d.st.Reset()
	d.prevColon = render.Unset
	d.prevPM = render.Unset
	d.st.MarkInitialized()
	d.Update(t)
}

func (d *Digital) Update(t arcclock.TimeSample) {
	if !d.st.Initialized() {
		d.DrawFull(t)
		return
	}

	accent := d.themes.SecondRingColor()

	if t.Second != d.st.Second {
		d.paintSeconds(t.Second, accent)
		d.st.Second = t.Second
	}

	if t.Hour != d.st.Hour {
		d.paintHours(t, accent)
		d.st.Hour = t.Hour

		if !t.Is24Hour {
			d.paintMeridiem(t, accent)
		}
	}

	colon := boolToInt(d.showColon)
	if colon != d.prevColon {
		d.paintColon(accent)
		d.prevColon = colon
	}

	if t.Minute != d.st.Minute {
		d.paintMinutes(t.Minute, accent)
		d.st.Minute = t.Minute
	}
}

// BlinkColon toggles the colon on the coordinator's blink cadence, repainting
// just the colon box.
func (d *Digital) BlinkColon() {
	d.showColon = !d.showColon
	if !d.st.Initialized() {
		return
	}
	d.paintColon(d.themes.SecondRingColor())
	d.prevColon = boolToInt(d.showColon)
}

func (d *Digital) paintSeconds(sec int, accent render.Color) {
	cx, cy := d.face.CenterX, d.face.CenterY
	s := d.face.Surface
	s.FillRect(cx-15, cy-50, 40, 20, d.bgColor)
	s.DrawText(cx-10, cy-50, 2, fmt.Sprintf("%02d", sec), accent)
}

func (d *Digital) paintHours(t arcclock.TimeSample, accent render.Color) {
	cx, cy := d.face.CenterX, d.face.CenterY
	s := d.face.Surface
	s.FillRect(cx-63, cy-25, 53, 45, d.bgColor)
	s.DrawText(cx-58, cy-20, 4, fmt.Sprintf("%02d", t.DisplayHour()), accent)
}

func (d *Digital) paintColon(accent render.Color) {
	cx, cy := d.face.CenterX, d.face.CenterY
	s := d.face.Surface
	s.FillRect(cx-10, cy-25, 20, 45, d.bgColor)
	if d.showColon {
		s.DrawText(cx-5, cy-20, 4, ":", accent)
	}
}

func (d *Digital) paintMinutes(minute int, accent render.Color) {
	cx, cy := d.face.CenterX, d.face.CenterY
	s := d.face.Surface
	s.FillRect(cx+10, cy-25, 53, 45, d.bgColor)
	s.DrawText(cx+10, cy-20, 4, fmt.Sprintf("%02d", minute), accent)
}

func (d *Digital) paintMeridiem(t arcclock.TimeSample, accent render.Color) {
	pm := boolToInt(t.IsPM())
	if pm == d.prevPM {
		return
	}
	cx, cy := d.face.CenterX, d.face.CenterY
	s := d.face.Surface
	s.FillRect(cx-15, cy+35, 40, 20, d.bgColor)
	label := "AM"
	if pm == 1 {
		label = "PM"
	}
	s.DrawText(cx-10, cy+35, 2, label, accent)
	d.prevPM = pm
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
