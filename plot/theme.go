package plot

import (
	"fmt"
	"strings"

	"github.com/gogpu/repdemo/canvas"
)

// Theme selects the light or dark palette. It is passed to Render
// explicitly instead of being read from the environment at draw time.
type Theme int

const (
	// ThemeLight draws on white.
	ThemeLight Theme = iota
	// ThemeDark draws on zinc-900.
	ThemeDark
)

// ParseTheme parses "light" or "dark" (case-insensitive).
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("plot: unknown theme %q (want light or dark)", s)
}

// String returns "light" or "dark".
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Palette holds the colors of one theme.
type Palette struct {
	Background canvas.RGBA
	Grid       canvas.RGBA
	Axis       canvas.RGBA
	Point      canvas.RGBA
	Label      canvas.RGBA
}

var (
	lightPalette = Palette{
		Background: canvas.Hex("#ffffff"),
		Grid:       canvas.Hex("#f4f4f5"),
		Axis:       canvas.Hex("#a1a1aa"),
		Point:      canvas.Hex("#338dff").WithAlpha(0.6),
		Label:      canvas.Hex("#a1a1aa"),
	}
	darkPalette = Palette{
		Background: canvas.Hex("#18181b"),
		Grid:       canvas.Hex("#27272a"),
		Axis:       canvas.Hex("#a1a1aa"),
		Point:      canvas.Hex("#338dff").WithAlpha(0.6),
		Label:      canvas.Hex("#a1a1aa"),
	}
)

// Palette returns the colors of t.
func (t Theme) Palette() Palette {
	if t == ThemeDark {
		return darkPalette
	}
	return lightPalette
}
