package theme

import (
	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
)

// Resolver decides the active accent/LED color. Precedence, highest first:
//
//  1. Pip-Boy mode always renders green, whatever else is set.
//  2. Automatic weather coloring, when enabled and the snapshot is valid.
//  3. The user's manually-cycled catalog color.
//
// A malformed or unknown weather condition keeps the current color instead
// of erroring. The resolver is not goroutine-safe; the coordinator serializes
// access.
type Resolver struct {
	mode    arcclock.Mode
	manual  ColorID
	auto    bool
	weather arcclock.WeatherSnapshot

	// current is the last resolved color, the fallback for condition codes
	// we cannot classify.
	current ColorID
}

// NewResolver starts on manual blue with weather coloring disabled.
func NewResolver() *Resolver {
	return &Resolver{manual: DefaultColor, current: DefaultColor}
}

// SetMode records the active clock mode.
func (r *Resolver) SetMode(m arcclock.Mode) { r.mode = m }

// SetManual selects a user color. Out-of-range indexes fall back to blue.
func (r *Resolver) SetManual(id ColorID) {
	if !ValidUser(id) {
		id = DefaultColor
	}
	r.manual = id
}

// Manual returns the user's current selection.
func (r *Resolver) Manual() ColorID { return r.manual }

// Cycle advances the manual selection to the next user color and returns it.
func (r *Resolver) Cycle() ColorID {
	r.manual = ColorID((int(r.manual) + 1) % UserColorCount)
	return r.manual
}

// SetAuto toggles automatic weather coloring.
func (r *Resolver) SetAuto(on bool) { r.auto = on }

// Auto reports whether automatic weather coloring is enabled.
func (r *Resolver) Auto() bool { return r.auto }

// SetWeather replaces the cached snapshot.
func (r *Resolver) SetWeather(snap arcclock.WeatherSnapshot) { r.weather = snap }

// Resolve returns the active accent color id and its catalog entry.
func (r *Resolver) Resolve() (ColorID, arcclock.ThemeColor) {
	id := r.resolveID()
	r.current = id
	return id, Lookup(id)
}

func (r *Resolver) resolveID() ColorID {
	if r.mode == arcclock.ModePipBoy {
		return ColorGreen
	}
	if r.auto && r.weather.Valid {
		if id, ok := conditionColor(r.weather.ConditionCode, r.weather.Temperature); ok {
			return id
		}
		// unknown condition: keep whatever is showing now
		return r.current
	}
	return r.manual
}

// SecondRingColor returns the display color for the seconds ring. Pip-Boy
// keeps its characteristic green regardless of LED selection; every other
// mode follows the resolved accent.
func (r *Resolver) SecondRingColor() render.Color {
	if r.mode == arcclock.ModePipBoy {
		return Display(ColorGreen)
	}
	id, _ := r.Resolve()
	return Display(id)
}

// conditionColor classifies an OpenWeatherMap icon code ("09d", "11n", ...)
// into a catalog color. The reported ok is false when the code cannot be
// classified, in which case the caller keeps the current color.
func conditionColor(code string, temp int) (ColorID, bool) {
	if len(code) < 2 {
		return 0, false
	}
	switch code[:2] {
	case "11": // thunderstorm
		return ColorStormPurple, true
	case "09", "10": // shower rain, rain/drizzle
		return ColorRainBlue, true
	case "13": // snow
		return ColorSnowWhite, true
	case "50": // mist, fog
		return ColorFogGray, true
	case "01", "02", "03", "04": // clear through overcast: band on temperature
		return TemperatureColor(temp), true
	default:
		return 0, false
	}
}
