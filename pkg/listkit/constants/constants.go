// Package constants defines shared enums and default metrics used
// throughout the listkit controls and their hosts.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the configured log level when set.
const LogLevelEnvVar = "LISTKIT_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Key represents an abstract navigation key, mapped from the host's input events.
// Hosts translate SDL keycodes or terminal key messages into these values.
type Key int

const (
	KeyUnassigned Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace
	KeyChar // printable character, carried separately by the caller
)

func (k Key) GetName() string {
	switch k {
	case KeyUnassigned:
		return "Unassigned"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeySpace:
		return "Space"
	case KeyChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether holding the key should auto-repeat navigation.
func (k Key) IsDirectional() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyPageUp, KeyPageDown:
		return true
	}
	return false
}

// Modifier is a bitmask of keyboard modifiers held during a click or key press.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
)

// ModNone is a plain click or key press.
const ModNone Modifier = 0

// Has reports whether all bits of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default metrics, in pixels unless stated otherwise.
const (
	DefaultItemHeight      int32 = 13  // Row height of a fixed-height list
	DefaultColumnWidth     int32 = 120 // Column width of a multi-column list
	DefaultScrollBarSize   int32 = 16  // Thickness of either scrollbar
	DefaultCheckBoxSize    int32 = 13  // Check box edge length
	DefaultSmallImageSize  int32 = 16  // Small icon edge length
	DefaultLargeImageSize  int32 = 32  // Large icon edge length
	DefaultTileWidth       int32 = 168 // Tile view cell width
	DefaultTileHeight      int32 = 40  // Tile view cell height
	DefaultTileLineSpacing int32 = 2   // Vertical gap between tile text lines
	TabStopFontFactor            = 3.7 // Default tab stop is font height times this factor
)

// NoMatches is returned by lookups and hit tests that find nothing.
const NoMatches = -1

// Default key repeat timing for held navigation keys.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // Time between subsequent repeats
)
