package display

import "sync"

// LEDRing is the ambient light output. The real device drives a NeoPixel
// ring; the core only needs set-all semantics applied synchronously.
type LEDRing interface {
	SetAll(r, g, b uint8)
	SetBrightness(level uint8)
	Flash()
}

// Strip is an in-memory LEDRing used on host builds and in tests. It keeps
// the last applied color and brightness so the state endpoint can report
// them.
type Strip struct {
	mu         sync.Mutex
	count      int
	r, g, b    uint8
	brightness uint8
	flashes    int
}

// NewStrip builds a strip with the given pixel count.
func NewStrip(count int) *Strip {
	if count <= 0 {
		count = 35
	}
	return &Strip{count: count, brightness: 50}
}

func (s *Strip) SetAll(r, g, b uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r, s.g, s.b = r, g, b
}

func (s *Strip) SetBrightness(level uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brightness = level
}

// Flash mimics the firmware's white burst on mode/color changes: the color
// snaps to white and the caller is expected to re-apply the accent right
// after. The in-memory strip only counts the bursts.
func (s *Strip) Flash() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r, s.g, s.b = 250, 250, 250
	s.flashes++
}

// Color reports the last applied channels.
func (s *Strip) Color() (r, g, b uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r, s.g, s.b
}

// Flashes reports how many bursts have been requested.
func (s *Strip) Flashes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flashes
}

// Count returns the pixel count.
func (s *Strip) Count() int { return s.count }
