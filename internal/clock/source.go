// Package clock produces TimeSample snapshots for the tick loop, either from
// the synced system clock or from a free-running counter used when no time
// sync is available.
package clock

import (
	"strings"
	"time"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
)

// Source yields one TimeSample per call. Implementations decide whether the
// sample tracks real time or a manual increment.
type Source interface {
	Sample() arcclock.TimeSample
}

// SystemSource samples the NTP-synced system clock in a fixed location.
type SystemSource struct {
	Location *time.Location
	Is24Hour bool
}

// NewSystemSource builds a SystemSource; a nil location means local time.
func NewSystemSource(loc *time.Location, is24Hour bool) *SystemSource {
	if loc == nil {
		loc = time.Local
	}
	return &SystemSource{Location: loc, Is24Hour: is24Hour}
}

func (s *SystemSource) Sample() arcclock.TimeSample {
	now := time.Now().In(s.Location)
	return fromTime(now, s.Is24Hour)
}

func fromTime(t time.Time, is24 bool) arcclock.TimeSample {
	return arcclock.TimeSample{
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Second:   t.Second(),
		Day:      t.Day(),
		Month:    int(t.Month()),
		Year:     t.Year(),
		Weekday:  strings.ToUpper(t.Weekday().String()),
		Is24Hour: is24,
	}
}

// ManualSource free-runs from a seed sample, advancing one second per call
// with cascade rollover (59->0 carries into minutes, 23->0 into hours). The
// date is held still across midnight, matching the firmware's offline
// behavior.
type ManualSource struct {
	cur arcclock.TimeSample
}

// NewManualSource seeds the counter. A dated seed without a weekday gets one
// derived from the calendar.
func NewManualSource(seed arcclock.TimeSample) *ManualSource {
	if seed.Weekday == "" && seed.Year > 0 {
		d := time.Date(seed.Year, time.Month(seed.Month), seed.Day, 0, 0, 0, 0, time.UTC)
		seed.Weekday = strings.ToUpper(d.Weekday().String())
	}
	return &ManualSource{cur: seed}
}

func (m *ManualSource) Sample() arcclock.TimeSample {
	m.cur.Second++
	if m.cur.Second >= 60 {
		m.cur.Second = 0
		m.cur.Minute++
		if m.cur.Minute >= 60 {
			m.cur.Minute = 0
			m.cur.Hour++
			if m.cur.Hour >= 24 {
				m.cur.Hour = 0
			}
		}
	}
	return m.cur
}
