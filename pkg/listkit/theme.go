package listkit

import (
	"image/color"

	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// Color is an opaque RGBA color. Hosts convert it to their own type.
type Color = color.RGBA

// Theme holds the colors hosts use to paint list controls.
type Theme = internal.Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return internal.GetTheme()
}

// DefaultTheme returns the light preset.
func DefaultTheme(fontPath string) Theme {
	return internal.DefaultTheme(fontPath)
}

// HighContrastTheme returns the white-on-black preset.
func HighContrastTheme(fontPath string) Theme {
	return internal.HighContrastTheme(fontPath)
}

// HexToColor converts 0xRRGGBB to an opaque Color.
func HexToColor(hex uint32) Color {
	return internal.HexToColor(hex)
}
