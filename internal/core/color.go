package core

import "fmt"

// Color is an RGBA colour. Terminals render it as true colour.
type Color struct {
	R, G, B, A uint8
}

// Palette used by the game screens.
var (
	ColorBlack    = Color{0, 0, 0, 255}
	ColorWhite    = Color{255, 255, 255, 255}
	ColorGray     = Color{130, 130, 130, 255}
	ColorRed      = Color{230, 41, 55, 255}
	ColorOrange   = Color{255, 161, 0, 255}
	ColorYellow   = Color{253, 249, 0, 255}
	ColorGreen    = Color{0, 228, 48, 255}
	ColorBlue     = Color{0, 121, 241, 255}
	ColorDarkBlue = Color{0, 82, 172, 255}
	ColorPurple   = Color{200, 122, 255, 255}
)

// Gray returns an opaque gray with all channels set to level.
func Gray(level uint8) Color {
	return Color{R: level, G: level, B: level, A: 255}
}

// Hex returns the colour as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
