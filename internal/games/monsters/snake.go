package monsters

import (
	"time"

	"github.com/vovakirdan/snake-monsters/internal/core"
)

// SnakeOutcome reports what one snake step did.
type SnakeOutcome struct {
	Moved      bool
	Blocked    bool
	Ate        *FoodItem
	Reschedule bool
	Delay      time.Duration
}

// SnakeController moves the snake one cell per step along the last steered
// direction.
type SnakeController struct {
	Food     FoodManager
	States   StateMachine
	Renderer Renderer
}

// Step advances the snake once. It is a no-op unless the game is running and
// a direction has been chosen. A move that would leave the arena is blocked.
// The body never exceeds the target length; the step period lengthens while
// the snake is still growing into it.
func (c SnakeController) Step(w *World) SnakeOutcome {
	if w.Over() {
		return SnakeOutcome{}
	}
	out := SnakeOutcome{Reschedule: true, Delay: w.SnakePeriod}
	if w.State.Phase != PhaseRunning || w.State.LastDirection == DirNone {
		return out
	}

	s := &w.Snake
	heading := w.State.LastDirection.Heading()
	candidate := core.Forward(s.Head, heading, w.Cell())
	if !w.Bounds().Contains(candidate) {
		out.Blocked = true
		return out
	}

	s.nextSegmentID++
	seg := Segment{ID: s.nextSegmentID, Pos: s.Head}
	s.Body = append(s.Body, seg)
	s.Head = candidate
	s.Heading = heading
	c.draw(bodyEntityID(seg.ID), KindBody, seg.Pos)
	c.draw(headEntityID, KindHead, s.Head)
	out.Moved = true

	if len(s.Body) > s.TargetLength {
		tail := s.Body[0]
		s.Body = s.Body[1:]
		if c.Renderer != nil {
			c.Renderer.ClearEntity(bodyEntityID(tail.ID))
		}
	}

	if item, ok := c.Food.ConsumeIfAdjacent(w, s.Head); ok {
		out.Ate = &item
	}

	if len(s.Body) >= s.TargetLength {
		w.SnakePeriod = w.Config.Snake.StepPeriod()
	} else {
		w.SnakePeriod = w.Config.Snake.DigestPeriod()
	}
	out.Delay = w.SnakePeriod

	c.States.CheckWin(w)
	out.Reschedule = !w.Over()
	return out
}

func (c SnakeController) draw(id string, kind EntityKind, p core.Position) {
	if c.Renderer != nil {
		c.Renderer.DrawEntity(id, kind, p, "")
	}
}
