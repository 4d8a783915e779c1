package modes

import (
	"fmt"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

const pipGreen = render.Green

// PipBoy renders the retro green terminal look: header, date line, boxed
// time fields on the right half and the animated figure slot on the left.
// The figure itself comes from the background hook (the GIF decoder lives
// outside the core); without it a plain frame is drawn.
type PipBoy struct {
	face   Face
	themes *theme.Resolver
	st     *render.State
	figure Background
}

// NewPipBoy builds the Pip-Boy mode. figure may be nil.
func NewPipBoy(face Face, themes *theme.Resolver, figure Background) *PipBoy {
	return &PipBoy{
		face:   face,
		themes: themes,
		st:     render.NewState(),
		figure: figure,
	}
}

func (p *PipBoy) Name() string { return arcclock.ModePipBoy.String() }

func (p *PipBoy) Init()    { p.st.Reset() }
func (p *PipBoy) Cleanup() { p.st.Reset() }

func (p *PipBoy) DrawFull(t arcclock.TimeSample) {
	s := p.face.Surface
	s.FillScreen(render.Black)

	cx := p.face.CenterX

	header := "PIP-BOY 3000"
	s.DrawText(cx-len(header)*6, p.face.scaleY(20), 2, header, pipGreen)
	s.DrawLine(p.face.scaleX(20), p.face.scaleY(40), p.face.Width-p.face.scaleX(20), p.face.scaleY(40), pipGreen)

	date := fmt.Sprintf("%02d.%02d.%04d", t.Day, t.Month, t.Year)
	if len(t.Weekday) >= 3 {
		date = t.Weekday[:3] + " " + date
	}
	s.DrawText(cx-len(date)*6, p.face.scaleY(50), 2, date, pipGreen)

	if p.figure == nil || !p.figure(s) {
		// placeholder frame where the vault boy animation would play
		fx := p.face.scaleX(weatherIconX)
		fy := p.face.scaleY(weatherIconY)
		s.FillRect(fx-35, fy-45, 70, 90, render.Black)
		s.DrawLine(fx-35, fy-45, fx+35, fy-45, pipGreen)
		s.DrawLine(fx-35, fy+45, fx+35, fy+45, pipGreen)
		s.DrawLine(fx-35, fy-45, fx-35, fy+45, pipGreen)
		s.DrawLine(fx+35, fy-45, fx+35, fy+45, pipGreen)
	}

	footer := "VAULT-TEC"
	s.DrawText(cx-len(footer)*3, p.face.Height-p.face.scaleY(25), 1, footer, pipGreen)

	p.st.Reset()
	p.st.MarkInitialized()
	p.Update(t)
}

func (p *PipBoy) Update(t arcclock.TimeSample) {
	if !p.st.Initialized() {
		p.DrawFull(t)
		return
	}

	s := p.face.Surface
	timeX := p.face.scaleX(115)
	timeY := p.face.scaleY(105)

	if t.Hour != p.st.Hour {
		s.FillRect(timeX, timeY, 56, 30, render.Black)
		s.DrawText(timeX, timeY, 3, fmt.Sprintf("%02d", t.DisplayHour()), pipGreen)
		p.st.Hour = t.Hour
	}

	if t.Minute != p.st.Minute {
		s.FillRect(timeX+60, timeY, 56, 30, render.Black)
		s.DrawText(timeX+52, timeY, 3, fmt.Sprintf(":%02d", t.Minute), pipGreen)
		p.st.Minute = t.Minute
	}

	if t.Second != p.st.Second {
		s.FillRect(timeX+30, timeY+35, 30, 18, render.Black)
		s.DrawText(timeX+30, timeY+35, 2, fmt.Sprintf("%02d", t.Second), pipGreen)
		p.st.Second = t.Second
	}
}
