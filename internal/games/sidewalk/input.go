package sidewalk

import (
	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
	"github.com/vovakirdan/sidewalk/internal/physics"
)

// applyInput turns held actions into player acceleration for the next
// physics step. Acceleration never carries over between frames. Left wins
// over right, and a jump needs ground contact resolved this frame.
func applyInput(p *physics.Body, in core.InputFrame, cfg config.Player) {
	p.SetAcceleration(0, 0)

	if in.Has(core.ActionLeft) {
		p.Acceleration[physics.X] = -cfg.RunAccel
	} else if in.Has(core.ActionRight) {
		p.Acceleration[physics.X] = cfg.RunAccel
	}

	if in.Has(core.ActionUp) && p.Grounded() {
		p.Acceleration[physics.Y] = cfg.JumpAccel
	}
}
