package core

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color for a screen cell or a drawn shape.
// The zero value means "use the terminal default".
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB returns a concrete color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Named colors used across the game theme.
var (
	ColorDefault = Color{}
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorGray    = RGB(100, 100, 100)
	ColorDarkBG  = RGB(20, 20, 20)
	ColorCyan    = RGB(100, 200, 255)
	ColorPink    = RGB(255, 100, 150)
	ColorYellow  = RGB(255, 200, 50)
)

// IsSet reports whether the color is concrete rather than the terminal default.
func (c Color) IsSet() bool {
	return c.set
}

// Hex returns the color as "#rrggbb". The default color returns "".
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to an opaque image/color value. The default color maps to black.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ParseHex parses "#rrggbb" or "#rgb" into a Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

// Blend linearly interpolates between a and b in RGB space; t is clamped to [0, 1].
func Blend(a, b Color, t float64) Color {
	t = ClampF(t, 0, 1)
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return RGB(r, g, bl)
}
