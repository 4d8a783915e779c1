package modes

import (
	"fmt"
	"strings"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/geometry"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

const (
	weatherRingThickness = 4
	weatherIconX         = 55
	weatherIconY         = 130
)

// Weather shows the current conditions (day, date, description, icon and
// temperatures) with the time at the bottom and a thin seconds ring around
// the screen edge built from radial line segments, one wedge per second.
// Invalid weather data renders a "Loading..." placeholder instead.
type Weather struct {
	face    Face
	themes  *theme.Resolver
	st      *render.State
	current func() arcclock.WeatherSnapshot
	units   string // "imperial" or "metric"

	ringRadius int
}

// NewWeather builds the weather mode. current supplies the latest snapshot
// and may return Valid=false forever; the mode still renders.
func NewWeather(face Face, themes *theme.Resolver, units string, current func() arcclock.WeatherSnapshot) *Weather {
	return &Weather{
		face:       face,
		themes:     themes,
		st:         render.NewState(),
		current:    current,
		units:      units,
		ringRadius: face.Radius * 115 / 120,
	}
}

func (w *Weather) Name() string { return arcclock.ModeWeather.String() }

func (w *Weather) Init()    { w.st.Reset() }
func (w *Weather) Cleanup() { w.st.Reset() }

func (w *Weather) DrawFull(t arcclock.TimeSample) {
	s := w.face.Surface
	s.FillScreen(render.Black)

	cx := w.face.CenterX

	s.DrawText(cx-len(t.Weekday)*6, w.face.scaleY(25), 2, t.Weekday, render.White)

	date := fmt.Sprintf("%02d.%02d.%04d", t.Day, t.Month, t.Year)
	s.DrawText(cx-len(date)*6, w.face.scaleY(50), 2, date, render.White)

	snap := w.current()
	if snap.Valid {
		w.drawIcon(snap)
		w.drawConditions(snap)
	} else {
		s.DrawText(w.face.scaleX(70), w.face.scaleY(110), 2, "Loading...", render.White)
	}

	w.paintTime(t)
	w.st.Hour = t.Hour
	w.st.Minute = t.Minute

	ringColor := w.themes.SecondRingColor()
	for i := 0; i < t.Second; i++ {
		w.drawSecondsSegment(i, ringColor)
	}
	w.st.Second = t.Second

	w.st.MarkInitialized()
}

func (w *Weather) Update(t arcclock.TimeSample) {
	if !w.st.Initialized() {
		w.DrawFull(t)
		return
	}

	if t.Hour != w.st.Hour || t.Minute != w.st.Minute {
		w.clearTimeArea()
		w.paintTime(t)
		w.st.Hour = t.Hour
		w.st.Minute = t.Minute
	}

	if t.Second != w.st.Second {
		if render.Rollover(w.st.Second, t.Second) {
			// the accumulated ring cannot be unwound segment by segment
			w.DrawFull(t)
			return
		}
		w.drawSecondsSegment(t.Second-1, w.themes.SecondRingColor())
		w.st.Second = t.Second
	}
}

func (w *Weather) drawSecondsSegment(i int, c render.Color) {
	start := float64(i*6 - 90)
	geometry.RadialTicks(w.face.Surface,
		w.face.CenterX, w.face.CenterY,
		w.ringRadius, weatherRingThickness,
		start, start+6, c)
}

func (w *Weather) unitSuffix() string {
	if strings.HasPrefix(w.units, "i") {
		return "F"
	}
	return "C"
}

func (w *Weather) drawConditions(snap arcclock.WeatherSnapshot) {
	s := w.face.Surface
	cx := w.face.CenterX

	desc := snap.Description
	if desc != "" {
		desc = strings.ToUpper(desc[:1]) + desc[1:]
	}
	s.DrawText(cx-len(desc)*3, w.face.scaleY(70), 1, desc, render.White)

	tempX := w.face.scaleX(100)
	temp := fmt.Sprintf("%d", snap.Temperature)
	s.DrawText(tempX, w.face.scaleY(90), 3, temp, render.White)
	degX := tempX + len(temp)*16 + 10
	s.DrawCircle(degX, w.face.scaleY(96), 4, render.White)
	s.DrawText(degX+11, w.face.scaleY(90), 2, w.unitSuffix(), render.White)

	s.DrawText(tempX, w.face.scaleY(115), 2, fmt.Sprintf("Feels: %d", snap.FeelsLike), render.White)
	s.DrawText(tempX, w.face.scaleY(135), 2, fmt.Sprintf("High: %d", snap.TempMax), render.White)
	s.DrawText(tempX, w.face.scaleY(155), 2, fmt.Sprintf("Low: %d", snap.TempMin), render.White)
}

// drawIcon paints a simple shape icon for the condition code, on the left
// side of the face.
func (w *Weather) drawIcon(snap arcclock.WeatherSnapshot) {
	s := w.face.Surface
	x := w.face.scaleX(weatherIconX)
	y := w.face.scaleY(weatherIconY)

	s.FillRect(x-40, y-40, 80, 80, render.Black)

	code := snap.ConditionCode
	if len(code) < 2 {
		code = "01d"
	}
	isDay := len(code) < 3 || code[2] == 'd'

	switch code[:2] {
	case "01": // clear
		if isDay {
			s.FillCircle(x, y, 20, render.Yellow)
		} else {
			s.FillCircle(x, y, 20, render.LightGray)
			s.FillCircle(x+10, y-10, 20, render.Black)
		}
	case "02": // few clouds
		s.FillCircle(x-10, y-5, 12, render.Yellow)
		s.FillRect(x-5, y, 30, 15, render.LightGray)
	case "03", "04": // clouds
		s.FillRect(x-25, y-10, 50, 20, render.LightGray)
		s.FillRect(x-15, y-20, 40, 15, render.White)
	case "09", "10": // rain
		s.FillRect(x-25, y-15, 50, 20, render.LightGray)
		for i := -15; i <= 15; i += 10 {
			s.FillRect(x+i, y+10, 3, 15, 0x5E9F)
		}
	case "11": // thunderstorm
		s.FillRect(x-25, y-15, 50, 20, render.LightGray)
		s.FillTriangle(x-5, y+5, x+10, y+15, x-10, y+20, render.Yellow)
		s.FillTriangle(x-10, y+20, x+10, y+15, x, y+35, render.Yellow)
	case "13": // snow
		s.FillRect(x-25, y-15, 50, 20, render.LightGray)
		for i := -15; i <= 15; i += 10 {
			s.FillCircle(x+i, y+15, 5, render.White)
		}
	case "50": // mist
		for i := -15; i <= 15; i += 7 {
			s.DrawLine(x-25, y+i, x+25, y+i, render.LightGray)
		}
	default:
		s.FillRect(x-25, y-15, 50, 30, render.LightGray)
		s.DrawText(x-10, y-10, 3, "?", render.White)
	}
}

func (w *Weather) clearTimeArea() {
	w.face.Surface.FillRect(w.face.CenterX-70, w.face.scaleY(195), 140, 16, render.Black)
}

func (w *Weather) paintTime(t arcclock.TimeSample) {
	str := fmt.Sprintf("%02d:%02d", t.DisplayHour(), t.Minute)
	if !t.Is24Hour {
		if t.IsPM() {
			str += " PM"
		} else {
			str += " AM"
		}
	}
	w.face.Surface.DrawText(w.face.CenterX-len(str)*6, w.face.scaleY(195), 2, str, render.White)
}
