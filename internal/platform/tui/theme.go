package tui

import (
	"strings"

	"github.com/vovakirdan/sidewalk/internal/assets"
	"github.com/vovakirdan/sidewalk/internal/core"
)

// Glyphs describes how an asset looks in a character grid.
type Glyphs struct {
	// Pattern is repeated across tile layers, one rune per Period world
	// units of texture. Sprites pick Pattern[frame]. Spaces are transparent.
	Pattern []rune
	Period  float64
	Color   core.Color

	// Label is drawn centered inside sprites, Boxed ones get a border.
	Label string
	Boxed bool
}

// Theme maps assets to glyphs and HUD colors to terminal colors.
type Theme struct {
	Assets map[string]Glyphs
	Text   map[string]core.Color
}

// DefaultTheme returns the default terminal look.
func DefaultTheme() Theme {
	return Theme{
		Assets: map[string]Glyphs{
			assets.Sky:      {Pattern: []rune("  .     *      .   "), Period: 16, Color: core.ColorBrightBlue},
			assets.Palms:    {Pattern: []rune("   Y         ¥       "), Period: 20, Color: core.ColorGreen},
			assets.Sidewalk: {Pattern: []rune("▓▓▓▒"), Period: 25, Color: core.ColorGray},
			assets.Skater:   {Pattern: []rune("@&@%@&"), Color: core.ColorYellow},
			assets.Barrel:   {Pattern: []rune("O"), Color: core.ColorBrown},
			assets.GameOver: {Pattern: []rune(" "), Color: core.ColorRed, Label: "G A M E   O V E R", Boxed: true},
		},
		Text: map[string]core.Color{
			"#FF69B4": core.ColorPink,
			"#FFFFFF": core.ColorBrightWhite,
			"#FF0000": core.ColorRed,
			"#00FF00": core.ColorGreen,
			"#0000FF": core.ColorBlue,
		},
	}
}

// textColor resolves a "#RRGGBB" HUD color. Unknown colors are drawn white.
func (t Theme) textColor(hex string) core.Color {
	if c, ok := t.Text[strings.ToUpper(hex)]; ok {
		return c
	}
	return core.ColorBrightWhite
}
