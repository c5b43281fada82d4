package monsters

import "github.com/vovakirdan/snake-monsters/internal/core"

// CollisionDetector tests pairs of positions against a fixed contact radius.
// Body contact and head capture are deliberately separate tests: a touch on
// the body only counts, a capture of the head ends the game.
type CollisionDetector struct {
	Radius float64
}

// NewCollisionDetector creates a detector with the given contact radius.
func NewCollisionDetector(radius int) CollisionDetector {
	return CollisionDetector{Radius: float64(radius)}
}

// Touching reports whether a and b are within the contact radius (inclusive).
// Used for monster-to-body contacts.
func (c CollisionDetector) Touching(a, b core.Position) bool {
	return core.Distance(a, b) <= c.Radius
}

// Caught reports whether a is strictly closer than the contact radius to b.
// Used for monster-to-head captures.
func (c CollisionDetector) Caught(a, b core.Position) bool {
	return core.Distance(a, b) < c.Radius
}

// FirstTouching returns the index of the first position in ps touching p,
// or -1.
func (c CollisionDetector) FirstTouching(p core.Position, ps []core.Position) int {
	for i, q := range ps {
		if c.Touching(p, q) {
			return i
		}
	}
	return -1
}
