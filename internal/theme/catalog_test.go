package theme

import "testing"

func TestLookup_OutOfRangeFallsBackToBlue(t *testing.T) {
	t.Parallel()

	blue := Lookup(ColorBlue)
	for _, id := range []ColorID{-1, ColorID(catalogSize), 9999} {
		if got := Lookup(id); got != blue {
			t.Fatalf("Lookup(%d) = %q, want fallback %q", id, got.Name, blue.Name)
		}
	}
	if Lookup(ColorRed).Name != "Red" {
		t.Fatal("in-range lookup returned the wrong entry")
	}
}

func TestValidUser_ExcludesWeatherColors(t *testing.T) {
	t.Parallel()

	if !ValidUser(ColorBlue) || !ValidUser(ColorWhite) {
		t.Fatal("cyclable colors must be valid user colors")
	}
	if ValidUser(ColorStormPurple) {
		t.Fatal("weather colors are not reachable via the cycle button")
	}
	if ValidUser(-1) {
		t.Fatal("negative id reported valid")
	}
	if !Valid(ColorVeryHotRed) {
		t.Fatal("weather colors are still catalog entries")
	}
}

func TestTemperatureColor_InclusiveBands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		temp int
		want ColorID
	}{
		{temp: -10, want: ColorFreezingBlue},
		{temp: 32, want: ColorFreezingBlue},
		{temp: 33, want: ColorColdBlue},
		{temp: 50, want: ColorColdBlue},
		{temp: 51, want: ColorCoolCyan},
		{temp: 65, want: ColorCoolCyan},
		{temp: 66, want: ColorComfortGreen},
		{temp: 75, want: ColorComfortGreen},
		{temp: 76, want: ColorWarmYellow},
		{temp: 85, want: ColorWarmYellow},
		{temp: 86, want: ColorHotOrange},
		{temp: 95, want: ColorHotOrange},
		{temp: 96, want: ColorVeryHotRed},
		{temp: 120, want: ColorVeryHotRed},
	}

	for _, tc := range cases {
		if got := TemperatureColor(tc.temp); got != tc.want {
			t.Errorf("TemperatureColor(%d) = %q, want %q",
				tc.temp, Lookup(got).Name, Lookup(tc.want).Name)
		}
	}
}

func TestDisplay_MatchesPackedValue(t *testing.T) {
	t.Parallel()

	if got := Display(ColorGreen); uint16(got) != Lookup(ColorGreen).Packed {
		t.Fatalf("Display(green) = %#04x, want %#04x", uint16(got), Lookup(ColorGreen).Packed)
	}
}
