package modes

import (
	"fmt"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

// boxColor is the near-black fill behind the time digits so they stay
// readable over the animated background.
const boxColor render.Color = 0x0001

// GifDigital is the digital clock drawn over an animated background. The
// animation playback lives in the asset collaborator (the background hook);
// the mode owns the boxed time fields, their vertical offset and the
// blinking colon, and repaints a field only when its value changes so the
// background shows through everywhere else.
type GifDigital struct {
	face   Face
	themes *theme.Resolver
	st     *render.State
	bg     Background

	// VerticalOffset shifts the time block so it clears the artwork's focal
	// point; persisted in settings on the device.
	VerticalOffset int

	showColon bool
	prevColon int
}

// NewGifDigital builds the GIF-background digital mode. bg may be nil.
func NewGifDigital(face Face, themes *theme.Resolver, bg Background, verticalOffset int) *GifDigital {
	return &GifDigital{
		face:           face,
		themes:         themes,
		st:             render.NewState(),
		bg:             bg,
		VerticalOffset: verticalOffset,
	}
}

func (g *GifDigital) Name() string { return arcclock.ModeGifDigital.String() }

func (g *GifDigital) Init() {
	g.st.Reset()
	g.showColon = true
	g.prevColon = render.Unset
}

func (g *GifDigital) Cleanup() { g.st.Reset() }

func (g *GifDigital) DrawFull(t arcclock.TimeSample) {
	if g.bg == nil || !g.bg(g.face.Surface) {
		g.face.Surface.FillScreen(render.Black)
	}
	g.st.Reset()
	g.prevColon = render.Unset
	g.st.MarkInitialized()
	g.Update(t)
}

func (g *GifDigital) Update(t arcclock.TimeSample) {
	if !g.st.Initialized() {
		g.DrawFull(t)
		return
	}

	accent := g.themes.SecondRingColor()
	cx := g.face.CenterX
	cy := g.face.CenterY + g.VerticalOffset
	s := g.face.Surface

	if t.Hour != g.st.Hour {
		s.FillRect(cx-63, cy-25, 53, 45, boxColor)
		s.DrawText(cx-58, cy-20, 4, fmt.Sprintf("%02d", t.DisplayHour()), accent)
		g.st.Hour = t.Hour
	}

	colon := boolToInt(g.showColon)
	if colon != g.prevColon {
		g.paintColon(accent)
		g.prevColon = colon
	}

	if t.Minute != g.st.Minute {
		s.FillRect(cx+10, cy-25, 53, 45, boxColor)
		s.DrawText(cx+10, cy-20, 4, fmt.Sprintf("%02d", t.Minute), accent)
		g.st.Minute = t.Minute
	}

	if t.Second != g.st.Second {
		s.FillRect(cx-15, cy+28, 40, 20, boxColor)
		s.DrawText(cx-10, cy+28, 2, fmt.Sprintf("%02d", t.Second), accent)
		g.st.Second = t.Second
	}
}

// BlinkColon toggles the colon on the coordinator's blink cadence.
func (g *GifDigital) BlinkColon() {
	g.showColon = !g.showColon
	if !g.st.Initialized() {
		return
	}
	g.paintColon(g.themes.SecondRingColor())
	g.prevColon = boolToInt(g.showColon)
}

func (g *GifDigital) paintColon(accent render.Color) {
	cx := g.face.CenterX
	cy := g.face.CenterY + g.VerticalOffset
	g.face.Surface.FillRect(cx-10, cy-25, 20, 45, boxColor)
	if g.showColon {
		g.face.Surface.DrawText(cx-5, cy-20, 4, ":", accent)
	}
}
