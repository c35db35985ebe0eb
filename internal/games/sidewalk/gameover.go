package sidewalk

import (
	"github.com/vovakirdan/sidewalk/internal/assets"
	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/scene"
)

// gameOverScene shows a single full-screen image and ignores input.
type gameOverScene struct {
	w, h float64
}

func newGameOverScene() *gameOverScene {
	return &gameOverScene{}
}

func (s *gameOverScene) ID() scene.ID {
	return GameOverID
}

func (s *gameOverScene) Enter(env *scene.Env) error {
	s.w = env.Config.World.Width
	s.h = env.Config.World.Height
	return nil
}

func (s *gameOverScene) Frame(core.InputFrame) scene.ID {
	return ""
}

func (s *gameOverScene) View() core.View {
	return core.View{
		Width:   s.w,
		Height:  s.h,
		Sprites: []core.Sprite{{Asset: assets.GameOver, W: s.w, H: s.h}},
	}
}

func (s *gameOverScene) Report(st *core.GameState) {
	st.GameOver = true
}
