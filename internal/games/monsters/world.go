// Package monsters implements Snake & Monsters: the player steers a snake
// around a bounded arena eating numbered food while four monsters pursue it.
//
// All game state lives in a World. Controllers (snake, monsters, food, state
// machine) receive the World explicitly and mutate it in discrete steps that
// a cooperative scheduler runs one at a time, so no locking is needed.
package monsters

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-monsters/internal/config"
	"github.com/vovakirdan/snake-monsters/internal/core"
)

// ErrPlacementExhausted is returned when no free cell could be found for an
// entity within the configured attempt budget. It indicates an arena too
// small for the requested number of entities.
var ErrPlacementExhausted = errors.New("monsters: no free cell within placement budget")

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhaseRunning
	PhasePaused
	PhaseWon
	PhaseLost
)

// Terminal reports whether the phase is Won or Lost.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting_start"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Direction is a steering key. DirNone means no key has been pressed yet.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Heading returns the compass heading the key steers towards.
// Panics for DirNone.
func (d Direction) Heading() core.Heading {
	switch d {
	case DirUp:
		return core.HeadingNorth
	case DirDown:
		return core.HeadingSouth
	case DirLeft:
		return core.HeadingWest
	case DirRight:
		return core.HeadingEast
	}
	panic(fmt.Sprintf("monsters: direction %d has no heading", d))
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Segment is one body cell of the snake.
type Segment struct {
	ID  int
	Pos core.Position
}

// Snake is the player's snake. Body is ordered oldest first and never grows
// past TargetLength.
type Snake struct {
	Head         core.Position
	Heading      core.Heading
	Body         []Segment
	TargetLength int

	nextSegmentID int
}

// BodyPositions returns the positions of the body segments, oldest first.
func (s *Snake) BodyPositions() []core.Position {
	out := make([]core.Position, len(s.Body))
	for i, seg := range s.Body {
		out[i] = seg.Pos
	}
	return out
}

// Cells returns every cell the snake covers: the body, oldest first, then
// the head.
func (s *Snake) Cells() []core.Position {
	return append(s.BodyPositions(), s.Head)
}

// Monster is one pursuer.
type Monster struct {
	ID      int
	Pos     core.Position
	Heading core.Heading
}

// FoodItem is a numbered food cell. Eating it grows the snake by Value.
type FoodItem struct {
	ID    int
	Pos   core.Position
	Value int
}

// GameState is the mutable status shared by every controller.
type GameState struct {
	Phase          Phase
	LastDirection  Direction
	Contacts       int // Non-fatal monster touches on the body
	ElapsedSeconds int
}

// World aggregates everything a running game mutates.
type World struct {
	Config   config.MonstersConfig
	Snake    Snake
	Monsters []*Monster
	Food     []FoodItem
	State    GameState

	// SnakePeriod is the snake's current step period. Monsters use it as the
	// base of their own randomized period.
	SnakePeriod time.Duration

	// Eaten is the total value of food consumed so far.
	Eaten int

	foodAt map[core.Position]bool
	rng    *rand.Rand
}

// NewWorld creates a world with the snake at the arena centre and no
// monsters or food yet.
func NewWorld(cfg config.MonstersConfig, rng *rand.Rand) *World {
	return &World{
		Config: cfg,
		Snake: Snake{
			Head:         core.Pos(0, 0),
			Heading:      core.HeadingEast,
			TargetLength: cfg.Snake.InitialLength,
		},
		SnakePeriod: cfg.Snake.StepPeriod(),
		foodAt:      make(map[core.Position]bool),
		rng:         rng,
	}
}

// Bounds returns the play area.
func (w *World) Bounds() core.Bounds {
	return core.Bounds{
		HalfWidth:  w.Config.Arena.HalfWidth,
		HalfHeight: w.Config.Arena.HalfHeight,
	}
}

// Cell returns the grid step.
func (w *World) Cell() int {
	return w.Config.Arena.CellSize
}

// WinLength is the body length at which the game is won: the initial length
// plus the value of every food item in the batch.
func (w *World) WinLength() int {
	return w.Config.Snake.InitialLength + w.Config.Food.TotalFoodValue()
}

// Over reports whether the game has reached a terminal phase.
func (w *World) Over() bool {
	return w.State.Phase.Terminal()
}

// HasFoodAt reports whether a food item sits at p.
func (w *World) HasFoodAt(p core.Position) bool {
	return w.foodAt[p]
}

// Occupied reports whether p is taken by the snake, a monster or food.
func (w *World) Occupied(p core.Position) bool {
	if w.Snake.Head == p || w.HasFoodAt(p) {
		return true
	}
	for _, seg := range w.Snake.Body {
		if seg.Pos == p {
			return true
		}
	}
	for _, m := range w.Monsters {
		if m.Pos == p {
			return true
		}
	}
	return false
}

func (w *World) addFood(item FoodItem) {
	w.Food = append(w.Food, item)
	w.foodAt[item.Pos] = true
}

func (w *World) removeFood(idx int) FoodItem {
	item := w.Food[idx]
	w.Food = append(w.Food[:idx], w.Food[idx+1:]...)
	delete(w.foodAt, item.Pos)
	return item
}

func (w *World) moveFood(idx int, to core.Position) {
	delete(w.foodAt, w.Food[idx].Pos)
	w.Food[idx].Pos = to
	w.foodAt[to] = true
}

// jitter returns a uniform random integer in [lo, hi].
func (w *World) jitter(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}
