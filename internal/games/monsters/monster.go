package monsters

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-monsters/internal/core"
)

// MonsterOutcome reports what one monster step did.
type MonsterOutcome struct {
	Moved      bool
	Contact    bool
	Reschedule bool
	Delay      time.Duration
}

// PlaceMonsters creates Monsters.Count monsters on free grid cells at least
// MinStartDistance from the snake's start. Each monster gets at most
// Food.PlacementAttempts samples.
func PlaceMonsters(w *World) error {
	bounds := w.Bounds()
	attempts := w.Config.Food.PlacementAttempts
	minDist := float64(w.Config.Monsters.MinStartDistance)

	w.Monsters = w.Monsters[:0]
	for id := 1; id <= w.Config.Monsters.Count; id++ {
		placed := false
		for iter := 0; iter < attempts; iter++ {
			p := bounds.RandomCell(w.rng, w.Cell())
			if core.Distance(p, w.Snake.Head) < minDist || w.Occupied(p) {
				continue
			}
			w.Monsters = append(w.Monsters, &Monster{ID: id, Pos: p, Heading: core.HeadingEast})
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: monster %d after %d attempts", ErrPlacementExhausted, id, attempts)
		}
	}
	return nil
}

// MonsterController chases the snake's head with one monster. Each monster
// has its own controller and its own schedule.
type MonsterController struct {
	Monster  *Monster
	Collide  CollisionDetector
	States   StateMachine
	Renderer Renderer
}

// Step moves the monster one cell towards the snake's head along a
// quantized heading, then counts at most one contact with the body.
// Captures of the head are checked both before and after the move.
// Monsters keep moving while the game is paused.
func (c MonsterController) Step(w *World) MonsterOutcome {
	if w.Over() || c.States.CheckLose(w) {
		return MonsterOutcome{}
	}

	m := c.Monster
	var out MonsterOutcome
	if m.Pos != w.Snake.Head {
		m.Heading = core.QuantizeBearing(core.Bearing(m.Pos, w.Snake.Head))
	}
	candidate := core.Forward(m.Pos, m.Heading, w.Cell())
	if w.Bounds().Contains(candidate) {
		m.Pos = candidate
		out.Moved = true
		if c.Renderer != nil {
			c.Renderer.DrawEntity(monsterEntityID(m.ID), KindMonster, m.Pos, "")
		}
	}

	// At most one contact per step, however many cells are in reach. The
	// head counts; a strict capture is CheckLose's business.
	if c.Collide.FirstTouching(m.Pos, w.Snake.Cells()) >= 0 {
		w.State.Contacts++
		out.Contact = true
	}

	c.States.CheckLose(w)
	if w.Over() {
		return out
	}
	out.Reschedule = true
	out.Delay = c.NextDelay(w)
	return out
}

// NextDelay is the snake's current period plus a signed random jitter.
func (c MonsterController) NextDelay(w *World) time.Duration {
	ms := w.jitter(w.Config.Monsters.JitterMinMs, w.Config.Monsters.JitterMaxMs)
	return w.SnakePeriod + time.Duration(ms)*time.Millisecond
}
