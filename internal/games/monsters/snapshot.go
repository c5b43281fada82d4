package monsters

import "github.com/vovakirdan/snake-monsters/internal/registry"

// PointView is a position on the wire.
type PointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MonsterView is one monster on the wire.
type MonsterView struct {
	ID      int       `json:"id"`
	Pos     PointView `json:"pos"`
	Heading int       `json:"heading"`
}

// FoodView is one food item on the wire.
type FoodView struct {
	ID    int       `json:"id"`
	Pos   PointView `json:"pos"`
	Value int       `json:"value"`
}

// Snapshot captures the complete game state for determinism testing and the
// spectate feed.
type Snapshot struct {
	ClockMs        int64         `json:"clock_ms"`
	Phase          string        `json:"phase"`
	Motion         string        `json:"motion"`
	Contacts       int           `json:"contacts"`
	ElapsedSeconds int           `json:"elapsed_seconds"`
	Score          int           `json:"score"`
	Head           PointView     `json:"head"`
	Heading        int           `json:"heading"`
	Body           []PointView   `json:"body"`
	TargetLength   int           `json:"target_length"`
	Monsters       []MonsterView `json:"monsters"`
	Food           []FoodView    `json:"food"`
	Message        string        `json:"message,omitempty"`
	PendingTasks   int           `json:"pending_tasks"`
	TasksRun       uint64        `json:"tasks_run"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		ClockMs:        g.clock.Now().Milliseconds(),
		Phase:          w.State.Phase.String(),
		Motion:         g.states.Motion(w),
		Contacts:       w.State.Contacts,
		ElapsedSeconds: w.State.ElapsedSeconds,
		Score:          w.Eaten,
		Head:           PointView{X: w.Snake.Head.X, Y: w.Snake.Head.Y},
		Heading:        int(w.Snake.Heading),
		Body:           make([]PointView, 0, len(w.Snake.Body)),
		TargetLength:   w.Snake.TargetLength,
		Monsters:       make([]MonsterView, 0, len(w.Monsters)),
		Food:           make([]FoodView, 0, len(w.Food)),
		Message:        g.scene.EndMessage(),
		PendingTasks:   g.clock.Pending(),
		TasksRun:       g.clock.Ran(),
	}
	for _, seg := range w.Snake.Body {
		snap.Body = append(snap.Body, PointView{X: seg.Pos.X, Y: seg.Pos.Y})
	}
	for _, m := range w.Monsters {
		snap.Monsters = append(snap.Monsters, MonsterView{
			ID:      m.ID,
			Pos:     PointView{X: m.Pos.X, Y: m.Pos.Y},
			Heading: int(m.Heading),
		})
	}
	for _, f := range w.Food {
		snap.Food = append(snap.Food, FoodView{
			ID:    f.ID,
			Pos:   PointView{X: f.Pos.X, Y: f.Pos.Y},
			Value: f.Value,
		})
	}
	return snap
}

// Observation returns the snapshot as a value for the spectate feed.
func (g *Game) Observation() any {
	return g.Snapshot()
}

// Outcome summarizes the current run.
func (g *Game) Outcome() registry.RunResult {
	w := g.world
	return registry.RunResult{
		Outcome:        w.State.Phase.String(),
		Score:          w.Eaten,
		Contacts:       w.State.Contacts,
		ElapsedSeconds: w.State.ElapsedSeconds,
		Length:         len(w.Snake.Body),
		Seed:           g.runtime.Seed,
	}
}
