package sidewalk

import "time"

// animation loops through a frame list at a fixed rate of simulated time.
type animation struct {
	frames  []int
	fps     float64
	elapsed time.Duration
}

func (a *animation) Advance(dt time.Duration) {
	a.elapsed += dt
}

// Frame returns the spritesheet frame to show.
func (a *animation) Frame() int {
	if len(a.frames) == 0 {
		return 0
	}
	i := int(a.elapsed.Seconds() * a.fps)
	return a.frames[i%len(a.frames)]
}
