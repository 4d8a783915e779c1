package modes

import (
	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

// testFace returns a recording face at the panel's native 240x240.
func testFace() (Face, *render.Recorder) {
	rec := render.NewRecorder(240, 240)
	return NewFace(rec), rec
}

func sample(h, m, s int) arcclock.TimeSample {
	return arcclock.TimeSample{
		Hour: h, Minute: m, Second: s,
		Day: 14, Month: 7, Year: 2026, Weekday: "TUESDAY",
		Is24Hour: true,
	}
}

func sample12(h, m, s int) arcclock.TimeSample {
	t := sample(h, m, s)
	t.Is24Hour = false
	return t
}

func newThemes() *theme.Resolver { return theme.NewResolver() }

func hasText(texts []string, want string) bool {
	for _, s := range texts {
		if s == want {
			return true
		}
	}
	return false
}
