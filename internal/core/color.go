package core

// Color represents a foreground color for a screen cell.
// Hosts map it to ANSI 256-color codes or RGB.
type Color uint8

// Palette used by the asteroids renderer.
const (
	ColorDefault      Color = iota
	ColorWhite              // Medium asteroids, secondary text
	ColorGray               // Big asteroids, HUD border
	ColorBrightWhite        // Small asteroids
	ColorBrightRed          // Starship
	ColorBrightYellow       // Bullets, banners
	ColorBrightCyan         // HUD text
)
