package clock

import (
	"testing"
	"time"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
)

func TestSystemSource_SamplesInLocation(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	src := NewSystemSource(loc, true)

	got := src.Sample()
	want := time.Now().In(loc)
	if got.Hour != want.Hour() || got.Day != want.Day() {
		t.Fatalf("sample %02d:%02d day %d disagrees with %v", got.Hour, got.Minute, got.Day, want)
	}
	if !got.Is24Hour {
		t.Fatal("24-hour preference lost")
	}
	if got.Weekday == "" {
		t.Fatal("weekday missing")
	}
}

func TestNewSystemSource_NilLocationMeansLocal(t *testing.T) {
	t.Parallel()

	src := NewSystemSource(nil, false)
	if src.Location != time.Local {
		t.Fatal("nil location must default to local time")
	}
}

func TestManualSource_CascadeRollover(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		seed arcclock.TimeSample
		want arcclock.TimeSample
	}{
		{
			name: "plain second advance",
			seed: arcclock.TimeSample{Hour: 10, Minute: 30, Second: 15},
			want: arcclock.TimeSample{Hour: 10, Minute: 30, Second: 16},
		},
		{
			name: "seconds carry into minutes",
			seed: arcclock.TimeSample{Hour: 10, Minute: 30, Second: 59},
			want: arcclock.TimeSample{Hour: 10, Minute: 31, Second: 0},
		},
		{
			name: "minutes carry into hours",
			seed: arcclock.TimeSample{Hour: 10, Minute: 59, Second: 59},
			want: arcclock.TimeSample{Hour: 11, Minute: 0, Second: 0},
		},
		{
			name: "midnight wraps the hour",
			seed: arcclock.TimeSample{Hour: 23, Minute: 59, Second: 59},
			want: arcclock.TimeSample{Hour: 0, Minute: 0, Second: 0},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src := NewManualSource(tc.seed)
			if got := src.Sample(); got != tc.want {
				t.Fatalf("Sample() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestManualSource_DateHeldAcrossMidnight(t *testing.T) {
	t.Parallel()

	src := NewManualSource(arcclock.TimeSample{
		Hour: 23, Minute: 59, Second: 59,
		Day: 14, Month: 7, Year: 2026, Weekday: "TUESDAY",
	})
	got := src.Sample()
	if got.Hour != 0 || got.Minute != 0 || got.Second != 0 {
		t.Fatalf("midnight rollover produced %02d:%02d:%02d", got.Hour, got.Minute, got.Second)
	}
	if got.Day != 14 || got.Month != 7 || got.Year != 2026 || got.Weekday != "TUESDAY" {
		t.Fatalf("offline counter must hold the date, got %+v", got)
	}
}

func TestNewManualSource_DerivesWeekdayFromDate(t *testing.T) {
	t.Parallel()

	// 2026-07-14 is a Tuesday
	src := NewManualSource(arcclock.TimeSample{
		Hour: 10, Minute: 0, Second: 0,
		Day: 14, Month: 7, Year: 2026,
	})
	if got := src.Sample().Weekday; got != "TUESDAY" {
		t.Fatalf("derived weekday = %q, want TUESDAY", got)
	}

	// no date, no derivation
	src = NewManualSource(arcclock.TimeSample{Hour: 10})
	if got := src.Sample().Weekday; got != "" {
		t.Fatalf("undated seed derived weekday %q", got)
	}
}

func TestManualSource_FreeRunsAcrossCalls(t *testing.T) {
	t.Parallel()

	src := NewManualSource(arcclock.TimeSample{Hour: 9, Minute: 0, Second: 57})
	var last arcclock.TimeSample
	for i := 0; i < 5; i++ {
		last = src.Sample()
	}
	want := arcclock.TimeSample{Hour: 9, Minute: 1, Second: 2}
	if last != want {
		t.Fatalf("after 5 ticks got %+v, want %+v", last, want)
	}
}
