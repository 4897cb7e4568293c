package constants

// Marker glyphs used by text hosts to draw item state.
// These render with any font that covers the Geometric Shapes block.
const (
	CheckedBox   = "☑" // Checked check box
	UncheckedBox = "☐" // Unchecked check box
	FocusMarker  = "▸" // Focused row marker
	NoMarker     = " " // Placeholder keeping columns aligned

	ScrollThumb = "█" // Scrollbar thumb cell
	ScrollTrack = "░" // Scrollbar track cell
)
