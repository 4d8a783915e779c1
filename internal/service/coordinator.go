package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/display"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/logger"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/modes"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/render"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/repository"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
)

const (
	// defaultRefreshMinutes is how often a forced full repaint runs, clearing
	// any pixel drift the incremental updates accumulate.
	defaultRefreshMinutes = 15

	// overlayDuration is how long the color-name banner stays up after a
	// color cycle before a full repaint removes it.
	overlayDuration = 2 * time.Second
)

var errInvalidClockMode = errors.New("invalid clock mode")

// Params bundles the collaborators the coordinator drives.
type Params struct {
	Face   modes.Face
	Themes *theme.Resolver
	LEDs   display.LEDRing
	Repos  *repository.Repository
	Log    *logger.Logger

	// RefreshEveryMinutes overrides the forced full-repaint cadence;
	// zero means the default, negative disables it.
	RefreshEveryMinutes int
	ZeroPolicy          modes.ZeroPolicy
	Units               string // OpenWeatherMap units, decides the F/C suffix
	VerticalOffset      int
	Background          string // current background asset, keys the color memory

	// Optional background painters for the art-backed modes.
	DigitalBackground modes.Background
	GifBackground     modes.Background
	PipBoyFigure      modes.Background
}

// Coordinator owns the display lifecycle: it fans ticks out to the active
// mode renderer, arbitrates full repaints against incremental updates, keeps
// the LED ring in sync with the resolved theme, and persists every setting
// the buttons change. All entry points serialize on one mutex; renderers
// never see concurrent calls.
type Coordinator struct {
	mu sync.Mutex

	face      modes.Face
	themes    *theme.Resolver
	leds      display.LEDRing
	renderers [arcclock.ModeCount]modes.Renderer

	settingsRepo repository.SettingsRepo
	colorMem     repository.ColorMemoryRepo
	eventRepo    repository.EventRepo
	log          *logger.Logger

	mode           arcclock.Mode
	weather        arcclock.WeatherSnapshot
	lastSample     arcclock.TimeSample
	needFull       bool
	refreshEvery   int
	background     string
	verticalOffset int

	overlayUntil time.Time
	lastLED      arcclock.ThemeColor
	ledApplied   bool
}

func NewCoordinator(p Params) *Coordinator {
	c := &Coordinator{
		face:         p.Face,
		themes:       p.Themes,
		leds:         p.LEDs,
		settingsRepo: p.Repos.SettingsRepo,
		colorMem:     p.Repos.ColorMemory,
		eventRepo:    p.Repos.EventRepo,
		log:          p.Log,
		mode:           arcclock.ModeArcDigital,
		needFull:       true,
		refreshEvery:   p.RefreshEveryMinutes,
		background:     p.Background,
		verticalOffset: p.VerticalOffset,
	}
	if c.refreshEvery == 0 {
		c.refreshEvery = defaultRefreshMinutes
	}

	c.renderers[arcclock.ModeArcDigital] = modes.NewDigital(p.Face, p.Themes, p.DigitalBackground)
	c.renderers[arcclock.ModeArcAnalog] = modes.NewAnalog(p.Face, p.Themes)
	c.renderers[arcclock.ModePipBoy] = modes.NewPipBoy(p.Face, p.Themes, p.PipBoyFigure)
	c.renderers[arcclock.ModeGifDigital] = modes.NewGifDigital(p.Face, p.Themes, p.GifBackground, p.VerticalOffset)
	c.renderers[arcclock.ModeWeather] = modes.NewWeather(p.Face, p.Themes, p.Units, c.weatherSnapshot)
	c.renderers[arcclock.ModeAppleRings] = modes.NewRings(p.Face, p.Themes, p.ZeroPolicy)

	c.themes.SetMode(c.mode)
	return c
}

// Restore loads persisted settings and applies them before the first tick.
// A missing settings row keeps factory defaults.
func (c *Coordinator) Restore(ctx context.Context) error {
	s, err := c.settingsRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if s.ID == 0 {
		c.log.Infow("no persisted settings, using defaults", "mode", c.mode.String())
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m := arcclock.Mode(s.ClockMode); m.Valid() {
		c.mode = m
	}
	c.themes.SetMode(c.mode)
	c.themes.SetManual(theme.ColorID(s.LEDColor))
	c.themes.SetAuto(s.AutoWeatherColor)

	c.verticalOffset = s.VerticalOffset
	if g, ok := c.renderers[arcclock.ModeGifDigital].(*modes.GifDigital); ok {
		g.VerticalOffset = s.VerticalOffset
	}

	// The per-background memory wins over the global LED color.
	if c.background != "" {
		if idx, ok, err := c.colorMem.Load(ctx, c.background); err == nil && ok {
			c.themes.SetManual(theme.ColorID(idx))
		}
	}

	c.log.Infow("settings restored",
		"mode", c.mode.String(),
		"color", int(c.themes.Manual()),
		"auto_weather", c.themes.Auto(),
	)
	return nil
}

// Tick advances the display by one sample. It runs the forced-refresh
// cadence, expires the color-name overlay, keeps the LED ring in sync, and
// dispatches to the active renderer. Calling it twice with the same sample
// repaints nothing time-driven the second time; only the colon blink, which
// toggles on every tick, still paints.
func (c *Coordinator) Tick(t arcclock.TimeSample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSample = t

	// While the color-name banner is up the screen is frozen; the repaint on
	// expiry removes it.
	if !c.overlayUntil.IsZero() {
		if time.Now().Before(c.overlayUntil) {
			return
		}
		c.overlayUntil = time.Time{}
		c.needFull = true
	}

	if c.refreshEvery > 0 && t.Second == 0 && t.Minute%c.refreshEvery == 0 {
		c.needFull = true
	}

	c.applyLEDs()

	r := c.renderers[c.mode]
	if c.needFull {
		r.Init()
		r.DrawFull(t)
		c.needFull = false
		c.appendEvent(arcclock.EventRefresh, "full repaint", map[string]any{"mode": c.mode.String()})
		return
	}
	r.Update(t)

	if b, ok := r.(modes.ColonBlinker); ok {
		b.BlinkColon()
	}
}

// SetMode switches the active renderer. Selecting the current mode forces a
// full repaint instead, which is what the original button does on a held
// press.
func (c *Coordinator) SetMode(ctx context.Context, m arcclock.Mode) error {
	if !m.Valid() {
		return errInvalidClockMode
	}

	c.mu.Lock()
	if m == c.mode {
		c.needFull = true
		c.mu.Unlock()
		return nil
	}

	from := c.mode
	c.renderers[from].Cleanup()
	c.mode = m
	c.themes.SetMode(m)
	c.renderers[m].Init()
	c.needFull = true
	c.mu.Unlock()

	c.log.Infow("mode changed", "from", from.String(), "to", m.String())

	if err := c.persistSettings(ctx); err != nil {
		return err
	}
	c.appendEvent(arcclock.EventModeChange, "mode changed to "+m.String(), map[string]any{
		"from": from.String(),
		"to":   m.String(),
	})
	return nil
}

// NextMode cycles to the following mode, wrapping after the last one.
func (c *Coordinator) NextMode(ctx context.Context) (arcclock.Mode, error) {
	c.mu.Lock()
	next := c.mode.Next()
	c.mu.Unlock()

	if err := c.SetMode(ctx, next); err != nil {
		return 0, err
	}
	return next, nil
}

// CycleColor advances the manual color, flashes the LED ring, shows the
// color name for a moment, and persists the choice both globally and
// against the current background.
func (c *Coordinator) CycleColor(ctx context.Context) (arcclock.ThemeColor, error) {
	c.mu.Lock()
	id := c.themes.Cycle()
	entry := theme.Lookup(id)

	c.leds.Flash()
	c.leds.SetAll(entry.R, entry.G, entry.B)
	c.lastLED = entry
	c.ledApplied = true

	c.drawColorOverlay(entry)
	c.overlayUntil = time.Now().Add(overlayDuration)
	c.mu.Unlock()

	c.log.Infow("color cycled", "color", entry.Name, "index", int(id))

	if err := c.persistSettings(ctx); err != nil {
		return entry, err
	}
	if c.background != "" {
		if err := c.colorMem.Save(ctx, c.background, int(id)); err != nil {
			c.log.Warnw("color memory save failed", "background", c.background, "error", err)
		}
	}
	c.appendEvent(arcclock.EventColorChange, "color changed to "+entry.Name, map[string]any{
		"color": entry.Name,
		"index": int(id),
	})
	return entry, nil
}

// SetAutoWeatherColor toggles weather-driven theming.
func (c *Coordinator) SetAutoWeatherColor(ctx context.Context, on bool) error {
	c.mu.Lock()
	c.themes.SetAuto(on)
	c.needFull = true
	c.mu.Unlock()

	if err := c.persistSettings(ctx); err != nil {
		return err
	}
	c.appendEvent(arcclock.EventColorChange, fmt.Sprintf("auto weather color %v", on), map[string]any{
		"auto_weather_color": on,
	})
	return nil
}

// SetRefreshEvery changes the forced full-repaint cadence in minutes.
// Non-positive values disable it.
func (c *Coordinator) SetRefreshEvery(minutes int) {
	c.mu.Lock()
	c.refreshEvery = minutes
	c.mu.Unlock()
}

// SetZeroPolicy switches how the activity rings render the value zero and
// forces a repaint so the change shows immediately.
func (c *Coordinator) SetZeroPolicy(p modes.ZeroPolicy) {
	c.mu.Lock()
	if r, ok := c.renderers[arcclock.ModeAppleRings].(*modes.Rings); ok {
		r.SetZeroPolicy(p)
	}
	c.needFull = true
	c.mu.Unlock()
}

// OnWeatherUpdated replaces the cached snapshot. The weather mode repaints
// on the next tick; other modes only repaint when auto coloring could move
// the accent.
func (c *Coordinator) OnWeatherUpdated(snap arcclock.WeatherSnapshot) {
	c.mu.Lock()
	c.weather = snap
	c.themes.SetWeather(snap)
	if c.mode == arcclock.ModeWeather || c.themes.Auto() {
		c.needFull = true
	}
	c.mu.Unlock()

	c.appendEvent(arcclock.EventWeatherUpdate, "weather snapshot updated", map[string]any{
		"condition": snap.ConditionCode,
		"temp":      snap.Temperature,
	})
}

// State returns the externally visible device snapshot.
func (c *Coordinator) State(ctx context.Context) (arcclock.ClockState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, entry := c.themes.Resolve()
	return arcclock.ClockState{
		Mode:             c.mode,
		ModeName:         c.mode.String(),
		ColorIndex:       int(id),
		Color:            entry,
		AutoWeatherColor: c.themes.Auto(),
		Weather:          c.weather,
		Time:             c.lastSample,
		UpdatedAt:        time.Now().UTC(),
	}, nil
}

// weatherSnapshot is handed to the weather renderer as its data feed.
// Callers already hold the mutex during Tick, so no locking here.
func (c *Coordinator) weatherSnapshot() arcclock.WeatherSnapshot {
	return c.weather
}

// applyLEDs pushes the resolved accent to the ring when it changed.
func (c *Coordinator) applyLEDs() {
	_, entry := c.themes.Resolve()
	if c.ledApplied && entry == c.lastLED {
		return
	}
	c.leds.SetAll(entry.R, entry.G, entry.B)
	c.lastLED = entry
	c.ledApplied = true
}

// drawColorOverlay paints the color-name banner across the screen center.
func (c *Coordinator) drawColorOverlay(entry arcclock.ThemeColor) {
	s := c.face.Surface
	cy := c.face.CenterY
	s.FillRect(0, cy-20, c.face.Width, 40, render.Black)
	x := c.face.CenterX - len(entry.Name)*7 // size-2 glyphs are 14px wide
	if x < 0 {
		x = 0
	}
	s.DrawText(x, cy-10, 2, entry.Name, render.Color(entry.Packed))
}

func (c *Coordinator) persistSettings(ctx context.Context) error {
	c.mu.Lock()
	s := arcclock.Settings{
		ID:               1,
		ClockMode:        int(c.mode),
		VerticalOffset:   c.verticalOffset,
		LEDColor:         int(c.themes.Manual()),
		AutoWeatherColor: c.themes.Auto(),
		UpdatedAt:        time.Now().UTC(),
	}
	c.mu.Unlock()

	if err := c.settingsRepo.Save(ctx, s); err != nil {
		c.log.Errorw("settings save failed", "error", err)
		return err
	}
	return nil
}

// appendEvent writes to the device log on a short deadline so a slow disk
// never stalls the render path.
func (c *Coordinator) appendEvent(typ, desc string, meta map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := c.eventRepo.Append(ctx, arcclock.DeviceEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil {
		c.log.Warnw("event append failed", "type", typ, "error", err)
	}
}
