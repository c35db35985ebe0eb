package physics

import "math"

// OverlapBias is added to the frame movement when deciding whether an
// overlap is shallow enough to resolve.
const OverlapBias = 4

// ContactFunc is called when two bodies touch.
type ContactFunc func(a, b *Body)

// Collide separates two overlapping bodies and reports whether they were in
// contact. Vertical separation runs first because gravity is vertical; the
// horizontal pass only runs if they still overlap. Overlaps too deep to have
// happened during this step are not contacts. onContact, if not nil, runs
// once per call in which the bodies touched.
func Collide(a, b *Body, onContact ContactFunc) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if !a.Enabled || !b.Enabled || a.world == nil || a.world != b.world {
		return false
	}
	if !a.Rect().Intersects(b.Rect()) {
		return false
	}

	touched := separate(a, b, Y)
	if a.Rect().Intersects(b.Rect()) {
		touched = separate(a, b, X) || touched
	}
	if !touched {
		return false
	}

	if onContact != nil {
		onContact(a, b)
	}
	return true
}

// separate resolves the overlap along one axis. The body that moved further
// toward the other is treated as the one that entered.
func separate(a, b *Body, axis int) bool {
	overlap := overlapAlong(a, b, axis)
	if overlap == 0 || (a.Immovable && b.Immovable) {
		return overlap != 0 || (a.Embedded && b.Embedded)
	}

	va, vb := a.Velocity[axis], b.Velocity[axis]

	switch {
	case !a.Immovable && !b.Immovable:
		half := overlap / 2
		a.Position[axis] -= half
		b.Position[axis] += half
		avg := (va + vb) / 2
		a.Velocity[axis] = avg
		b.Velocity[axis] = avg
	case !a.Immovable:
		a.Position[axis] -= overlap
		a.Velocity[axis] = vb
	default:
		b.Position[axis] += overlap
		b.Velocity[axis] = va
	}
	return true
}

// overlapAlong measures the penetration of a into b along an axis and sets
// the touching flags. Positive means a must move toward negative
// coordinates. Overlaps deeper than the combined movement plus the bias are
// ignored: the bodies did not meet during this step.
func overlapAlong(a, b *Body, axis int) float64 {
	da, db := a.Delta(axis), b.Delta(axis)
	limit := math.Abs(da) + math.Abs(db) + OverlapBias

	var overlap float64
	switch {
	case da == 0 && db == 0:
		a.Embedded = true
		b.Embedded = true
	case da > db:
		overlap = a.Position[axis] + a.size(axis) - b.Position[axis]
		if overlap > limit {
			return 0
		}
		if axis == Y {
			a.Touching.Down, b.Touching.Up = true, true
		} else {
			a.Touching.Right, b.Touching.Left = true, true
		}
	case da < db:
		overlap = a.Position[axis] - (b.Position[axis] + b.size(axis))
		if -overlap > limit {
			return 0
		}
		if axis == Y {
			a.Touching.Up, b.Touching.Down = true, true
		} else {
			a.Touching.Left, b.Touching.Right = true, true
		}
	}
	return overlap
}
