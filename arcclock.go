package arcclock

import (
	"fmt"
	"strings"
	"time"
)

// Mode is one selectable visual presentation of the clock.
type Mode int

const (
	ModeArcDigital Mode = iota
	ModeArcAnalog
	ModePipBoy
	ModeGifDigital
	ModeWeather
	ModeAppleRings

	ModeCount int = iota
)

var modeNames = [...]string{
	ModeArcDigital: "arc_digital",
	ModeArcAnalog:  "arc_analog",
	ModePipBoy:     "pipboy",
	ModeGifDigital: "gif_digital",
	ModeWeather:    "weather",
	ModeAppleRings: "apple_rings",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= ModeCount {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the defined clock modes.
func (m Mode) Valid() bool {
	return m >= 0 && int(m) < ModeCount
}

// Next returns the following mode, wrapping after the last one.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % ModeCount)
}

// ParseMode maps a mode name (as used by the control API) back to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// TimeSample is an immutable snapshot of the wall clock, produced once per
// tick by the time source and consumed by every renderer during that tick.
type TimeSample struct {
	Hour     int    `json:"hour"`   // 0..23
	Minute   int    `json:"minute"` // 0..59
	Second   int    `json:"second"` // 0..59
	Day      int    `json:"day"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Weekday  string `json:"weekday"` // "MONDAY", ...
	Is24Hour bool   `json:"is_24_hour"`
}

// DisplayHour converts the 24h Hour to the value shown on screen,
// honoring the 12/24-hour setting (0 and 12 both render as 12 in 12h mode).
func (t TimeSample) DisplayHour() int {
	if t.Is24Hour {
		return t.Hour
	}
	switch {
	case t.Hour == 0:
		return 12
	case t.Hour > 12:
		return t.Hour - 12
	default:
		return t.Hour
	}
}

// IsPM reports whether the sample falls in the PM half of the day.
func (t TimeSample) IsPM() bool { return t.Hour >= 12 }

// WeatherSnapshot is the read-only cache produced by the weather collaborator.
// It is overwritten wholesale on each successful fetch; Valid stays false
// until the first one.
type WeatherSnapshot struct {
	ConditionCode string    `json:"condition_code"` // OpenWeatherMap icon code, e.g. "09d"
	Description   string    `json:"description"`
	Temperature   int       `json:"temperature"`
	FeelsLike     int       `json:"feels_like"`
	TempMin       int       `json:"temp_min"`
	TempMax       int       `json:"temp_max"`
	Humidity      int       `json:"humidity"`
	WindSpeed     int       `json:"wind_speed"`
	UpdatedAt     time.Time `json:"updated_at"`
	Valid         bool      `json:"valid"`
}

// ThemeColor is one entry of the fixed color catalog: LED channels plus the
// RGB565 value used on the display, and a human-readable name for the
// color-change overlay.
type ThemeColor struct {
	R      uint8  `json:"r"`
	G      uint8  `json:"g"`
	B      uint8  `json:"b"`
	Packed uint16 `json:"packed"` // RGB565
	Name   string `json:"name"`
}

// ClockState is the externally visible snapshot of the device.
type ClockState struct {
	Mode             Mode            `json:"-"`
	ModeName         string          `json:"mode"`
	ColorIndex       int             `json:"color_index"`
	Color            ThemeColor      `json:"color"`
	AutoWeatherColor bool            `json:"auto_weather_color"`
	Weather          WeatherSnapshot `json:"weather"`
	Time             TimeSample      `json:"time"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Settings is the persisted device configuration, the Go counterpart of the
// firmware's EEPROM/settings-file record.
type Settings struct {
	ID               int       `json:"id"`
	BackgroundIndex  int       `json:"background_index"`
	ClockMode        int       `json:"clock_mode"`
	VerticalOffset   int       `json:"vertical_offset"`
	LEDColor         int       `json:"led_color"`
	AutoWeatherColor bool      `json:"auto_weather_color"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DeviceEvent is a single entry of the append-only device log.
type DeviceEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // MODE_CHANGE | COLOR_CHANGE | WEATHER_UPDATE | REFRESH | ERROR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

// Event types written by the coordinator and collaborators.
const (
	EventModeChange    = "MODE_CHANGE"
	EventColorChange   = "COLOR_CHANGE"
	EventWeatherUpdate = "WEATHER_UPDATE"
	EventRefresh       = "REFRESH"
	EventError         = "ERROR"
)
