// Package assets embeds the game's images and knows their dimensions.
// Gameplay only needs the manifest; front-ends that draw pixels call Load.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"sort"
)

// Asset identifiers.
const (
	Sky      = "sky"
	Palms    = "palms"
	Sidewalk = "sidewalk"
	Barrel   = "barrel"
	Skater   = "skater"
	GameOver = "gameover"
)

// Spec describes one image. Plain images have a single frame covering the
// whole image; spritesheets are a single row of equally sized frames.
type Spec struct {
	ID     string
	File   string
	FrameW int
	FrameH int
	Frames int
}

// Width returns the full image width.
func (s Spec) Width() int {
	return s.FrameW * s.Frames
}

// Height returns the full image height.
func (s Spec) Height() int {
	return s.FrameH
}

var manifest = map[string]Spec{
	Sky:      {ID: Sky, File: "images/sky.png", FrameW: 320, FrameH: 240, Frames: 1},
	Palms:    {ID: Palms, File: "images/palms.png", FrameW: 500, FrameH: 500, Frames: 1},
	Sidewalk: {ID: Sidewalk, File: "images/sidewalk.png", FrameW: 200, FrameH: 100, Frames: 1},
	Barrel:   {ID: Barrel, File: "images/barrel.png", FrameW: 44, FrameH: 52, Frames: 1},
	Skater:   {ID: Skater, File: "images/skater.png", FrameW: 53, FrameH: 52, Frames: 6},
	GameOver: {ID: GameOver, File: "images/gameover.png", FrameW: 640, FrameH: 500, Frames: 1},
}

//go:embed images/*.png
var files embed.FS

// Lookup returns the manifest entry for an asset.
func Lookup(id string) (Spec, bool) {
	s, ok := manifest[id]
	return s, ok
}

// MustLookup returns the manifest entry for an asset and panics if the ID
// is unknown. Only use it with the constants above.
func MustLookup(id string) Spec {
	s, ok := manifest[id]
	if !ok {
		panic(fmt.Sprintf("assets: unknown asset %q", id))
	}
	return s
}

// Manifest returns every asset sorted by ID.
func Manifest() []Spec {
	out := make([]Spec, 0, len(manifest))
	for _, s := range manifest {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Library holds decoded images.
type Library struct {
	images map[string]image.Image
}

// Load decodes every embedded image and checks it against the manifest.
// Any failure means the game cannot run.
func Load() (*Library, error) {
	lib := &Library{images: make(map[string]image.Image, len(manifest))}

	for _, spec := range Manifest() {
		data, err := files.ReadFile(spec.File)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read %s: %w", spec.File, err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("assets: cannot decode %s: %w", spec.File, err)
		}

		b := img.Bounds()
		if b.Dx() != spec.Width() || b.Dy() != spec.Height() {
			return nil, fmt.Errorf("assets: %s is %dx%d, expected %dx%d",
				spec.File, b.Dx(), b.Dy(), spec.Width(), spec.Height())
		}

		lib.images[spec.ID] = img
	}

	return lib, nil
}

// Image returns the decoded image for an asset, or nil if it is unknown.
func (l *Library) Image(id string) image.Image {
	return l.images[id]
}

// Frame returns the source rectangle of frame i. Out-of-range frames wrap.
func (l *Library) Frame(id string, i int) image.Rectangle {
	return FrameRect(MustLookup(id), i)
}

// FrameRect returns the source rectangle of frame i of the given asset.
func FrameRect(s Spec, i int) image.Rectangle {
	if s.Frames <= 0 {
		return image.Rectangle{}
	}
	i %= s.Frames
	if i < 0 {
		i += s.Frames
	}
	x := i * s.FrameW
	return image.Rect(x, 0, x+s.FrameW, s.FrameH)
}
