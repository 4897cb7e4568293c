package listkit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
	"github.com/BrandonKowalski/listkit/pkg/listkit/layout"
	"github.com/BurntSushi/toml"
)

// Config is the TOML-backed configuration for list controls and their host.
type Config struct {
	List  ListConfig  `toml:"list"`
	View  ViewConfig  `toml:"view"`
	Theme ThemeConfig `toml:"theme"`
	Log   LogConfig   `toml:"log"`
}

// ListConfig configures ListBox defaults.
type ListConfig struct {
	ItemHeight          int32  `toml:"item_height"`
	ColumnWidth         int32  `toml:"column_width"`
	MultiColumn         bool   `toml:"multi_column"`
	SelectionMode       string `toml:"selection_mode"` // none, one, multi_simple, multi_extended
	ScrollAlwaysVisible bool   `toml:"scroll_always_visible"`
	IntegralHeight      bool   `toml:"integral_height"`
	UseTabStops         bool   `toml:"use_tab_stops"`
	Sorted              bool   `toml:"sorted"`
	CheckBoxes          bool   `toml:"check_boxes"`
}

// ViewConfig configures ListView defaults.
type ViewConfig struct {
	Mode           string `toml:"mode"` // large_icon, details, small_icon, list, tile
	CheckBoxes     bool   `toml:"check_boxes"`
	MultiSelect    bool   `toml:"multi_select"`
	SmallImageSize int32  `toml:"small_image_size"`
	LargeImageSize int32  `toml:"large_image_size"`
	TileWidth      int32  `toml:"tile_width"`
	TileHeight     int32  `toml:"tile_height"`
}

// ThemeConfig picks a preset and optionally overrides its colors.
type ThemeConfig struct {
	Preset     string `toml:"preset"` // default, high_contrast
	FontPath   string `toml:"font_path"`
	FontSize   int    `toml:"font_size"`
	Highlight  string `toml:"highlight"` // hex colors, e.g. "#008080"
	Accent     string `toml:"accent"`
	Text       string `toml:"text"`
	Background string `toml:"background"`
}

// LogConfig configures the package logger.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		List: ListConfig{
			ItemHeight:    constants.DefaultItemHeight,
			ColumnWidth:   constants.DefaultColumnWidth,
			SelectionMode: SelectionSingle.String(),
		},
		View: ViewConfig{
			Mode:           layout.ViewLargeIcon.String(),
			SmallImageSize: constants.DefaultSmallImageSize,
			LargeImageSize: constants.DefaultLargeImageSize,
			TileWidth:      constants.DefaultTileWidth,
			TileHeight:     constants.DefaultTileHeight,
		},
		Theme: ThemeConfig{Preset: "default", FontSize: 14},
		Log:   LogConfig{Level: "warn"},
	}
}

// LoadConfig reads a TOML file. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := DecodeConfig(data)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// DecodeConfig parses TOML bytes on top of the defaults and validates the
// result.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.List.ItemHeight < 0 {
		return fmt.Errorf("list.item_height: must not be negative, got %d", c.List.ItemHeight)
	}
	if c.List.ColumnWidth < 0 {
		return fmt.Errorf("list.column_width: must not be negative, got %d", c.List.ColumnWidth)
	}
	if _, err := c.List.Mode(); err != nil {
		return err
	}
	if _, err := c.View.ViewMode(); err != nil {
		return err
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// Mode parses the configured selection mode.
func (l ListConfig) Mode() (SelectionMode, error) {
	if l.SelectionMode == "" {
		return SelectionSingle, nil
	}
	m, ok := ParseSelectionMode(strings.ToLower(strings.TrimSpace(l.SelectionMode)))
	if !ok {
		return SelectionSingle, fmt.Errorf("list.selection_mode: unknown mode %q", l.SelectionMode)
	}
	return m, nil
}

// ViewMode parses the configured view.
func (v ViewConfig) ViewMode() (layout.View, error) {
	if v.Mode == "" {
		return layout.ViewLargeIcon, nil
	}
	view, ok := layout.ParseView(strings.ToLower(strings.TrimSpace(v.Mode)))
	if !ok {
		return layout.ViewLargeIcon, fmt.Errorf("view.mode: unknown view %q", v.Mode)
	}
	return view, nil
}

// Resolve builds the theme: the preset first, then any color overrides.
func (t ThemeConfig) Resolve() (Theme, error) {
	theme := internal.ThemeByName(t.Preset, t.FontPath)
	overrides := []struct {
		key   string
		value string
		dst   *Color
	}{
		{"theme.highlight", t.Highlight, &theme.HighlightColor},
		{"theme.accent", t.Accent, &theme.AccentColor},
		{"theme.text", t.Text, &theme.TextColor},
		{"theme.background", t.Background, &theme.BackgroundColor},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		c, err := internal.ParseHexColor(o.value)
		if err != nil {
			return theme, fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = c
	}
	return theme, nil
}
