package modes

import (
	"testing"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
)

func TestPipBoy_DrawFullIsAllGreen(t *testing.T) {
	t.Parallel()

	face, rec := testFace()
	p := NewPipBoy(face, newThemes(), nil)
	p.Init()

	p.DrawFull(sample(10, 30, 45))

	texts := rec.Texts()
	for _, want := range []string{"PIP-BOY 3000", "TUE 14.07.2026", "VAULT-TEC", "10", ":30", "45"} {
		if !hasText(texts, want) {
			t.Fatalf("full paint missing %q, drew %v", want, texts)
		}
	}
	for _, op := range rec.Ops {
		if op.Op == render.OpDrawText && op.Color != render.Green {
			t.Fatalf("%q drawn in %#04x, the terminal is green only", op.Text, uint16(op.Color))
		}
	}
}

func TestPipBoy_PlaceholderFrameWithoutFigure(t *testing.T) {
	t.Parallel()

	face, rec := testFace()
	p := NewPipBoy(face, newThemes(), nil)
	p.Init()
	p.DrawFull(sample(10, 30, 45))

	// header divider plus the four sides of the figure frame
	if got := rec.Count(render.OpDrawLine); got != 5 {
		t.Fatalf("frame drew %d lines, want 5", got)
	}
}

func TestPipBoy_FigureHookReplacesPlaceholder(t *testing.T) {
	t.Parallel()

	face, rec := testFace()
	figure := func(s render.Surface) bool {
		s.FillRect(20, 85, 70, 90, render.Green)
		return true
	}
	p := NewPipBoy(face, newThemes(), figure)
	p.Init()
	p.DrawFull(sample(10, 30, 45))

	// only the header divider remains
	if got := rec.Count(render.OpDrawLine); got != 1 {
		t.Fatalf("with a figure the frame must not be drawn, got %d lines", got)
	}
}

func TestPipBoy_MissingWeekdayStillRenders(t *testing.T) {
	t.Parallel()

	face, rec := testFace()
	p := NewPipBoy(face, newThemes(), nil)
	p.Init()

	// a free-running counter seeded without a date has no weekday
	p.Update(arcclock.TimeSample{Hour: 10, Minute: 30, Second: 15, Is24Hour: true})

	texts := rec.Texts()
	if !hasText(texts, "00.00.0000") {
		t.Fatalf("date line missing, drew %v", texts)
	}
	if !hasText(texts, "10") || !hasText(texts, "15") {
		t.Fatalf("time fields missing, drew %v", texts)
	}
}

func TestPipBoy_UpdateRepaintsChangedFieldsOnly(t *testing.T) {
	t.Parallel()

	face, rec := testFace()
	p := NewPipBoy(face, newThemes(), nil)
	p.Init()
	p.Update(sample(10, 30, 45))
	rec.Reset()

	p.Update(sample(10, 30, 46))

	if rec.Count(render.OpFillRect) != 1 {
		t.Fatalf("seconds tick cleared %d boxes, want 1", rec.Count(render.OpFillRect))
	}
	if !hasText(rec.Texts(), "46") {
		t.Fatalf("seconds tick drew %v, want 46", rec.Texts())
	}
	rec.Reset()

	p.Update(sample(10, 30, 46))
	if len(rec.Ops) != 0 {
		t.Fatalf("repeated update painted %d ops", len(rec.Ops))
	}
}
