package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI codes (terminal) or RGBA (window).
type Color uint8

// Predefined colors for bubbles, banners and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorPurple
	ColorTeal
	ColorGray
)

// BubblePalette lists the colors a freshly spawned bubble may take.
var BubblePalette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorPink,
	ColorPurple,
	ColorTeal,
}

// RGB returns the 8-bit red, green and blue components of the color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xe6, 0x39, 0x46
	case ColorGreen:
		return 0x2a, 0x9d, 0x3f
	case ColorYellow:
		return 0xf4, 0xd3, 0x5e
	case ColorBlue:
		return 0x3a, 0x86, 0xff
	case ColorMagenta:
		return 0xd6, 0x3a, 0xf9
	case ColorCyan:
		return 0x4c, 0xc9, 0xf0
	case ColorOrange:
		return 0xfb, 0x85, 0x00
	case ColorPink:
		return 0xff, 0x8f, 0xab
	case ColorPurple:
		return 0x72, 0x09, 0xb7
	case ColorTeal:
		return 0x2e, 0xc4, 0xb6
	case ColorGray:
		return 0x88, 0x88, 0x88
	default:
		return 0xff, 0xff, 0xff
	}
}
