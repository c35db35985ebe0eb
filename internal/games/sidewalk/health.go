package sidewalk

import "fmt"

const healthFormat = "h e a l t h   %d"

// health only goes down, one point per hit, and stops at zero.
type health struct {
	value int
}

func newHealth(start int) health {
	return health{value: max(start, 0)}
}

// Hit removes one point and returns what is left.
func (h *health) Hit() int {
	if h.value > 0 {
		h.value--
	}
	return h.value
}

func (h health) Value() int {
	return h.value
}

// Depleted reports whether the run is over.
func (h health) Depleted() bool {
	return h.value < 1
}

// Readout is the HUD text.
func (h health) Readout() string {
	return fmt.Sprintf(healthFormat, h.value)
}
