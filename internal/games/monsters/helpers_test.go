package monsters

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/snake-monsters/internal/config"
	"github.com/vovakirdan/snake-monsters/internal/core"
)

// recordingRenderer counts the calls it receives.
type recordingRenderer struct {
	draws   map[string]core.Position
	clears  []string
	endMsgs []string
	refresh int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{draws: make(map[string]core.Position)}
}

func (r *recordingRenderer) DrawEntity(id string, _ EntityKind, pos core.Position, _ string) {
	r.draws[id] = pos
}
func (r *recordingRenderer) ClearEntity(id string)      { r.clears = append(r.clears, id) }
func (r *recordingRenderer) ShowEndMessage(text string) { r.endMsgs = append(r.endMsgs, text) }
func (r *recordingRenderer) Refresh()                   { r.refresh++ }

// fixture is a running world with no monsters or food and controllers wired
// to a recording renderer.
type fixture struct {
	w       *World
	r       *recordingRenderer
	collide CollisionDetector
	states  StateMachine
	food    FoodManager
	snake   SnakeController
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithConfig(t, config.DefaultMonstersConfig())
}

func newFixtureWithConfig(t *testing.T, cfg config.MonstersConfig) *fixture {
	t.Helper()
	r := newRecordingRenderer()
	w := NewWorld(cfg, rand.New(rand.NewSource(1)))
	w.State.Phase = PhaseRunning
	collide := NewCollisionDetector(cfg.Collision.ContactRadius)
	states := StateMachine{Renderer: r, Collide: collide}
	food := FoodManager{Renderer: r}
	return &fixture{
		w:       w,
		r:       r,
		collide: collide,
		states:  states,
		food:    food,
		snake:   SnakeController{Food: food, States: states, Renderer: r},
	}
}

func (f *fixture) addMonster(x, y int) MonsterController {
	m := &Monster{ID: len(f.w.Monsters) + 1, Pos: core.Pos(x, y), Heading: core.HeadingEast}
	f.w.Monsters = append(f.w.Monsters, m)
	return MonsterController{Monster: m, Collide: f.collide, States: f.states, Renderer: f.r}
}

func (f *fixture) setBody(ps ...core.Position) {
	f.w.Snake.Body = f.w.Snake.Body[:0]
	for _, p := range ps {
		f.w.Snake.nextSegmentID++
		f.w.Snake.Body = append(f.w.Snake.Body, Segment{ID: f.w.Snake.nextSegmentID, Pos: p})
	}
}

// noMonstersConfig keeps long-running game tests free of captures.
func noMonstersConfig() config.MonstersConfig {
	cfg := config.DefaultMonstersConfig()
	cfg.Monsters.Count = 0
	return cfg
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepN(g *Game, n int, in core.InputFrame) {
	for iter := 0; iter < n; iter++ {
		g.Step(in)
	}
}
