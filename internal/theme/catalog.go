// Package theme holds the fixed color catalog and the accent-color
// resolution rules: which color the LED ring and on-screen accents use,
// derived from the active mode, live weather, or the user's manual pick.
package theme

import (
	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
)

// ColorID indexes the fixed catalog.
type ColorID int

// User-cyclable colors. Their order is the cycle order.
const (
	ColorBlue ColorID = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorPurple
	ColorWhite

	// UserColorCount is the number of colors reachable via the cycle button.
	UserColorCount int = iota
)

// Weather-derived colors, not part of the manual cycle.
const (
	ColorStormPurple ColorID = ColorID(UserColorCount) + iota
	ColorRainBlue
	ColorSnowWhite
	ColorFogGray
	ColorFreezingBlue
	ColorColdBlue
	ColorCoolCyan
	ColorComfortGreen
	ColorWarmYellow
	ColorHotOrange
	ColorVeryHotRed

	catalogSize int = UserColorCount + iota
)

// DefaultColor is the fallback for any out-of-range request.
const DefaultColor = ColorBlue

var catalog = [catalogSize]arcclock.ThemeColor{
	ColorBlue:   {R: 0, G: 20, B: 255, Packed: 0x051F, Name: "Blue"},
	ColorRed:    {R: 255, G: 0, B: 0, Packed: 0xF800, Name: "Red"},
	ColorGreen:  {R: 0, G: 255, B: 50, Packed: 0x07E0, Name: "Green"},
	ColorYellow: {R: 255, G: 255, B: 0, Packed: 0xFFE0, Name: "Yellow"},
	ColorCyan:   {R: 0, G: 255, B: 255, Packed: 0x07FF, Name: "Cyan"},
	ColorPurple: {R: 180, G: 0, B: 255, Packed: 0xC01F, Name: "Purple"},
	ColorWhite:  {R: 255, G: 255, B: 255, Packed: 0xFFFF, Name: "White"},

	ColorStormPurple:  {R: 130, G: 0, B: 200, Packed: 0x8018, Name: "Storm Purple"},
	ColorRainBlue:     {R: 0, G: 60, B: 255, Packed: 0x01FF, Name: "Rain Blue"},
	ColorSnowWhite:    {R: 240, G: 240, B: 255, Packed: 0xF7BF, Name: "Snow White"},
	ColorFogGray:      {R: 120, G: 120, B: 120, Packed: 0x7BCF, Name: "Fog Gray"},
	ColorFreezingBlue: {R: 0, G: 100, B: 255, Packed: 0x033F, Name: "Freezing Blue"},
	ColorColdBlue:     {R: 0, G: 160, B: 255, Packed: 0x051F, Name: "Cold Blue"},
	ColorCoolCyan:     {R: 0, G: 255, B: 200, Packed: 0x07F9, Name: "Cool Cyan"},
	ColorComfortGreen: {R: 0, G: 255, B: 60, Packed: 0x07E7, Name: "Comfort Green"},
	ColorWarmYellow:   {R: 255, G: 220, B: 0, Packed: 0xFEE0, Name: "Warm Yellow"},
	ColorHotOrange:    {R: 255, G: 120, B: 0, Packed: 0xFBC0, Name: "Hot Orange"},
	ColorVeryHotRed:   {R: 255, G: 20, B: 0, Packed: 0xF8A0, Name: "Very Hot Red"},
}

// Lookup returns the catalog entry for id. Out-of-range ids fall back to the
// default blue entry, never panic.
func Lookup(id ColorID) arcclock.ThemeColor {
	if id < 0 || int(id) >= catalogSize {
		id = DefaultColor
	}
	return catalog[id]
}

// Valid reports whether id names a catalog entry.
func Valid(id ColorID) bool { return id >= 0 && int(id) < catalogSize }

// ValidUser reports whether id is one of the manually-cyclable colors.
func ValidUser(id ColorID) bool { return id >= 0 && int(id) < UserColorCount }

// Display returns the RGB565 value for id, with the same fallback as Lookup.
func Display(id ColorID) render.Color {
	return render.Color(Lookup(id).Packed)
}

// Temperature band upper bounds, inclusive, in the configured display unit
// (the firmware ships Fahrenheit defaults).
const (
	TempFreezing = 32
	TempCold     = 50
	TempCool     = 65
	TempComfort  = 75
	TempWarm     = 85
	TempHot      = 95
)

// TemperatureColor maps a temperature to its band color. Boundaries are
// inclusive: 32 is still freezing, 33 is cold.
func TemperatureColor(temp int) ColorID {
	switch {
	case temp <= TempFreezing:
		return ColorFreezingBlue
	case temp <= TempCold:
		return ColorColdBlue
	case temp <= TempCool:
		return ColorCoolCyan
	case temp <= TempComfort:
		return ColorComfortGreen
	case temp <= TempWarm:
		return ColorWarmYellow
	case temp <= TempHot:
		return ColorHotOrange
	default:
		return ColorVeryHotRed
	}
}
