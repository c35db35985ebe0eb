package tui

import (
	"math"

	"github.com/vovakirdan/sidewalk/internal/core"
)

// Rasterize draws a view into the screen, scaling world units to cells.
// Layers go first, then sprites, then text.
func Rasterize(v core.View, dst *core.Screen, theme Theme) {
	dst.Clear()
	if v.Width <= 0 || v.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	p := projection{
		sx: float64(dst.Width()) / v.Width,
		sy: float64(dst.Height()) / v.Height,
	}

	for _, l := range v.Layers {
		g, ok := theme.Assets[l.Asset]
		if !ok || len(g.Pattern) == 0 {
			continue
		}
		drawLayer(dst, p, l, g)
	}

	for _, s := range v.Sprites {
		g, ok := theme.Assets[s.Asset]
		if !ok {
			continue
		}
		drawSprite(dst, p, s, g)
	}

	for _, t := range v.Texts {
		x, y := p.cell(t.X, t.Y)
		dst.DrawText(x, y, t.Content, theme.textColor(t.Color))
	}
}

// projection maps world coordinates to cells.
type projection struct {
	sx, sy float64
}

func (p projection) cell(x, y float64) (int, int) {
	return int(math.Floor(x * p.sx)), int(math.Floor(y * p.sy))
}

// span returns the cell rectangle covered by a world rectangle. Anything
// visible covers at least one cell.
func (p projection) span(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx, cy = p.cell(x, y)
	x2, y2 := p.cell(x+w, y+h)
	return cx, cy, max(x2-cx, 1), max(y2-cy, 1)
}

func drawLayer(dst *core.Screen, p projection, l core.TileLayer, g Glyphs) {
	cx, cy, cw, ch := p.span(l.X, l.Y, l.W, l.H)
	period := g.Period
	if period <= 0 {
		period = 1
	}
	scale := l.Scale
	if scale <= 0 {
		scale = 1
	}
	n := len(g.Pattern)

	for x := max(cx, 0); x < min(cx+cw, dst.Width()); x++ {
		// Texture coordinate at the cell's center.
		u := ((float64(x)+0.5)/p.sx - l.X - l.OffsetX) / scale
		i := int(math.Floor(u / period))
		r := g.Pattern[((i%n)+n)%n]
		if r == ' ' {
			continue
		}
		for y := max(cy, 0); y < min(cy+ch, dst.Height()); y++ {
			dst.SetCell(x, y, r, g.Color)
		}
	}
}

func drawSprite(dst *core.Screen, p projection, s core.Sprite, g Glyphs) {
	cx, cy, cw, ch := p.span(s.X, s.Y, s.W, s.H)

	if n := len(g.Pattern); n > 0 {
		r := g.Pattern[((s.Frame%n)+n)%n]
		if r != ' ' {
			dst.FillRect(cx, cy, cw, ch, r, g.Color)
		}
	}

	if g.Boxed && cw >= 2 && ch >= 2 {
		dst.DrawBox(cx, cy, cw, ch, g.Color)
	}

	if g.Label != "" {
		label := []rune(g.Label)
		if len(label) > cw {
			label = label[:cw]
		}
		lx := cx + (cw-len(label))/2
		ly := cy + ch/2
		dst.DrawText(lx, ly, string(label), g.Color)
	}
}
