package core

// TileLayer is a horizontally repeating strip drawn at a fixed screen
// rectangle. OffsetX shifts the texture inside the rectangle; the texture
// is magnified by Scale.
type TileLayer struct {
	Asset   string
	X, Y    float64
	W, H    float64
	Scale   float64
	OffsetX float64
}

// Sprite is one frame of an asset drawn into the box (X, Y, W, H).
type Sprite struct {
	Asset string
	Frame int
	X, Y  float64
	W, H  float64
}

// Text is an overlay string. Color is a "#RRGGBB" hex value.
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Color   string
}

// View is the display list of one frame, drawn back to front:
// layers, then sprites, then texts.
type View struct {
	Width, Height float64
	Layers        []TileLayer
	Sprites       []Sprite
	Texts         []Text
}

// Sprite returns the first sprite using the given asset.
func (v View) Sprite(asset string) (Sprite, bool) {
	for _, s := range v.Sprites {
		if s.Asset == asset {
			return s, true
		}
	}
	return Sprite{}, false
}

// Layer returns the tile layer using the given asset.
func (v View) Layer(asset string) (TileLayer, bool) {
	for _, l := range v.Layers {
		if l.Asset == asset {
			return l, true
		}
	}
	return TileLayer{}, false
}
