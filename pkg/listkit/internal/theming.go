package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"
)

// Theme defines the colors a host uses to paint list controls.
type Theme struct {
	HighlightColor       color.RGBA // Selected item background
	AccentColor          color.RGBA // Focus rectangle, scroll thumb
	TextColor            color.RGBA // Default item text
	HighlightedTextColor color.RGBA // Text on selected items
	HintColor            color.RGBA // Status and header text
	GridColor            color.RGBA // Column separators in detail view
	AlternateRowColor    color.RGBA // Background of odd rows when alternating
	BackgroundColor      color.RGBA // Control background
	FontPath             string     // Path to the primary UI font
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme("")
)

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// DefaultTheme is dark text on a light background with a teal accent.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0x008080),
		AccentColor:          HexToColor(0x005F5F),
		TextColor:            HexToColor(0x000000),
		HighlightedTextColor: HexToColor(0xFFFFFF),
		HintColor:            HexToColor(0x606060),
		GridColor:            HexToColor(0xC0C0C0),
		AlternateRowColor:    HexToColor(0xF0F0F0),
		BackgroundColor:      HexToColor(0xFFFFFF),
		FontPath:             fontPath,
	}
}

// HighContrastTheme is white on black with inverted selection.
func HighContrastTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0xFFFF00),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0xFFFFFF),
		GridColor:            HexToColor(0xFFFFFF),
		AlternateRowColor:    HexToColor(0x202020),
		BackgroundColor:      HexToColor(0x000000),
		FontPath:             fontPath,
	}
}

// ThemeByName returns a preset by name. Unknown names give the default.
func ThemeByName(name, fontPath string) Theme {
	switch strings.ToLower(name) {
	case "high_contrast", "high-contrast":
		return HighContrastTheme(fontPath)
	default:
		return DefaultTheme(fontPath)
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// ParseHexColor accepts "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func ParseHexColor(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(raw) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}
