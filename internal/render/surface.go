package render

// Color is a packed RGB565 display color, the native format of the target
// panel. The theme catalog carries the packed value alongside the LED
// channels so both outputs stay in sync.
type Color uint16

// Common panel colors.
const (
	Black     Color = 0x0000
	White     Color = 0xFFFF
	Red       Color = 0xF800
	Green     Color = 0x07E0
	Blue      Color = 0x051F
	Cyan      Color = 0x07FF
	Yellow    Color = 0xFFE0
	Gold      Color = 0xFD20
	LightGray Color = 0xC618
	DarkNavy  Color = 0x000A
)

// RGB888 expands the packed 565 value to 8-bit channels.
func (c Color) RGB888() (r, g, b uint8) {
	r = uint8((uint16(c) >> 11) & 0x1F)
	g = uint8((uint16(c) >> 5) & 0x3F)
	b = uint8(uint16(c) & 0x1F)
	// replicate high bits into the low bits so full-scale values map to 255
	r = r<<3 | r>>2
	g = g<<2 | g>>4
	b = b<<3 | b>>2
	return r, g, b
}

// Pack565 packs 8-bit channels into an RGB565 color.
func Pack565(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// Surface is the paint target every renderer draws against. Implementations
// are synchronous; a call returns once the pixels are written. The display
// collaborator provides the real panel, tests provide a recorder.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	// FillScreen clears the whole surface to a single color.
	FillScreen(c Color)
	FillRect(x, y, w, h int, c Color)
	FillCircle(cx, cy, r int, c Color)
	DrawCircle(cx, cy, r int, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color)
	DrawLine(x0, y0, x1, y1 int, c Color)
	// DrawText draws s with its top-left corner at (x, y). size is the
	// integer glyph multiplier of the base 6x8-ish font, matching the
	// firmware's setTextSize semantics.
	DrawText(x, y, size int, s string, c Color)
}
