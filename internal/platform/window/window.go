// Package window runs the game in a desktop window or browser tab with
// Ebitengine. It draws the real images, the HUD text and plays a sound on
// every hit.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sidewalk/internal/assets"
	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
)

const sampleRate = 48000

// audioContext is shared; Ebitengine allows one per process.
var audioContext *audio.Context

// keys maps actions to the physical keys that hold them.
var keys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionQuit:  {ebiten.KeyEscape, ebiten.KeyQ},
}

// Window implements ebiten.Game on top of a core.Game.
type Window struct {
	game   core.Game
	width  int
	height int
	images map[string]*ebiten.Image
	font   *text.GoTextFaceSource
	hit    *audio.Player
	log    *log.Logger
	debug  bool
	state  core.GameState
}

// New prepares images, font and sound for a started game.
func New(game core.Game, cfg config.Config, logger *log.Logger) (*Window, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	lib, err := assets.Load()
	if err != nil {
		return nil, err
	}
	images := make(map[string]*ebiten.Image, len(assets.Manifest()))
	for _, spec := range assets.Manifest() {
		images[spec.ID] = ebiten.NewImageFromImage(lib.Image(spec.ID))
	}

	font, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	jab, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		return nil, fmt.Errorf("window: decode hit sound: %w", err)
	}
	hit, err := audioContext.NewPlayer(jab)
	if err != nil {
		return nil, fmt.Errorf("window: hit sound player: %w", err)
	}

	return &Window{
		game:   game,
		width:  int(cfg.World.Width),
		height: int(cfg.World.Height),
		images: images,
		font:   font,
		hit:    hit,
		log:    logger,
	}, nil
}

// Update polls the keyboard and advances the game by one tick.
func (w *Window) Update() error {
	in := pollInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		w.debug = !w.debug
	}

	res, err := w.game.Step(in)
	if err != nil {
		return err
	}
	w.state = res.State

	if res.Has(core.EventHit) && !w.hit.IsPlaying() {
		if err := w.hit.Rewind(); err != nil {
			return err
		}
		w.hit.Play()
	}
	for _, ev := range res.Events {
		if ev.Kind == core.EventSceneChanged {
			w.log.Info("scene changed", "scene", ev.Scene, "tick", res.State.Tick)
		}
	}
	return nil
}

func pollInput() core.InputFrame {
	var in core.InputFrame
	for action, ks := range keys {
		for _, k := range ks {
			if ebiten.IsKeyPressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

// Draw renders the current view: layers, sprites, then text.
func (w *Window) Draw(screen *ebiten.Image) {
	v := w.game.View()

	for _, l := range v.Layers {
		if img, ok := w.images[l.Asset]; ok {
			drawLayer(screen, img, l)
		}
	}

	for _, s := range v.Sprites {
		img, ok := w.images[s.Asset]
		spec, known := assets.Lookup(s.Asset)
		if !ok || !known {
			continue
		}
		frame := img.SubImage(assets.FrameRect(spec, s.Frame)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.W/float64(spec.FrameW), s.H/float64(spec.FrameH))
		op.GeoM.Translate(s.X, s.Y)
		screen.DrawImage(frame, op)
	}

	for _, t := range v.Texts {
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleWithColor(parseHex(t.Color))
		op.LineSpacing = t.Size
		text.Draw(screen, t.Content, &text.GoTextFace{
			Source: w.font,
			Size:   t.Size,
		}, op)
	}

	if w.debug {
		w.drawDebug(screen, v)
	}
}

// drawDebug outlines every sprite box and prints timing, toggled with F3.
func (w *Window) drawDebug(screen *ebiten.Image, v core.View) {
	outline := color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	for _, s := range v.Sprites {
		vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), 1, outline, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.1f  tick %d  scene %s  health %d",
		ebiten.ActualTPS(), w.state.Tick, w.state.Scene, w.state.Health), 4, w.height-16)
}

// drawLayer tiles img across the layer's rectangle, shifted by its offset.
func drawLayer(screen, img *ebiten.Image, l core.TileLayer) {
	scale := l.Scale
	if scale <= 0 {
		scale = 1
	}
	tw := float64(img.Bounds().Dx()) * scale
	th := float64(img.Bounds().Dy()) * scale
	if tw <= 0 || th <= 0 {
		return
	}

	clip := image.Rect(int(l.X), int(l.Y), int(math.Ceil(l.X+l.W)), int(math.Ceil(l.Y+l.H)))
	dst, ok := screen.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	start := l.X + math.Mod(l.OffsetX, tw)
	if start > l.X {
		start -= tw
	}
	for y := l.Y; y < l.Y+l.H; y += th {
		for x := start; x < l.X+l.W; x += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, y)
			dst.DrawImage(img, op)
		}
	}
}

// parseHex reads "#RRGGBB". Anything else is white.
func parseHex(s string) color.Color {
	if len(s) != 7 || s[0] != '#' {
		return color.White
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.White
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Layout returns the fixed world size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run starts the game and opens a window. It blocks until the window is
// closed or the player quits.
func Run(game core.Game, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if err := game.Start(rt); err != nil {
		return err
	}

	w, err := New(game, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(rt.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
