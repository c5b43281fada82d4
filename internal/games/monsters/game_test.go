package monsters

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/snake-monsters/internal/config"
	"github.com/vovakirdan/snake-monsters/internal/core"
	"github.com/vovakirdan/snake-monsters/internal/registry"
)

func newTestGame(cfg config.MonstersConfig, seed int64) *Game {
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("monsters") {
		t.Fatal("monsters is not registered")
	}
	g, err := registry.Create("monsters")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Snake & Monsters" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Snake & Monsters")
	}
	if _, ok := g.(registry.Observable); !ok {
		t.Error("game does not implement registry.Observable")
	}
	if _, ok := g.(registry.RunReporter); !ok {
		t.Error("game does not implement registry.RunReporter")
	}
}

func TestGameWaitsForStart(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 1)

	stepN(g, 120, input(core.ActionRight))

	snap := g.Snapshot()
	if snap.Phase != "awaiting_start" {
		t.Errorf("Phase = %q, expected awaiting_start", snap.Phase)
	}
	if snap.ClockMs != 0 || len(snap.Food) != 0 {
		t.Errorf("clock = %d, food = %d, expected nothing to run before start", snap.ClockMs, len(snap.Food))
	}
	if len(snap.Monsters) != 4 {
		t.Errorf("len(Monsters) = %d, expected 4", len(snap.Monsters))
	}
	if g.clock.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", g.clock.Pending())
	}
}

func TestGameStartSchedulesActors(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 1)

	g.Step(input(core.ActionStart))

	if g.world.State.Phase != PhaseRunning {
		t.Fatalf("Phase = %v, expected running", g.world.State.Phase)
	}
	if len(g.world.Food) != 5 {
		t.Errorf("len(Food) = %d, expected 5", len(g.world.Food))
	}
	for name, want := range map[string]int{taskSnake: 1, taskMonster: 4, taskFood: 1, taskClock: 1} {
		if got := g.clock.PendingNamed(name); got != want {
			t.Errorf("PendingNamed(%q) = %d, expected %d", name, got, want)
		}
	}
}

func TestGameStartMovesMonstersOnce(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 3)
	before := make([]core.Position, len(g.world.Monsters))
	for i, m := range g.world.Monsters {
		before[i] = m.Pos
	}

	g.Step(input(core.ActionStart))

	for i, m := range g.world.Monsters {
		if d := core.Distance(before[i], m.Pos); d != 20 {
			t.Errorf("monster %d moved %v -> %v, expected one cell", m.ID, before[i], m.Pos)
		}
	}
	for _, f := range g.world.Food {
		for _, m := range g.world.Monsters {
			if f.Pos == m.Pos {
				t.Errorf("food %d spawned on monster %d at %v", f.ID, m.ID, f.Pos)
			}
		}
	}
}

func TestGameFoodTaskStopsWhenFoodIsGone(t *testing.T) {
	g := newTestGame(noMonstersConfig(), 1)
	g.Step(input(core.ActionStart))
	for len(g.world.Food) > 0 {
		g.world.removeFood(0)
	}

	// Past the first relocation at 5s.
	stepN(g, 320, core.NewInputFrame())

	if g.world.State.Phase != PhaseRunning {
		t.Fatalf("Phase = %v, expected running", g.world.State.Phase)
	}
	if got := g.clock.PendingNamed(taskFood); got != 0 {
		t.Errorf("PendingNamed(%q) = %d, expected the task to stop", taskFood, got)
	}
	if got := g.clock.PendingNamed(taskClock); got != 1 {
		t.Errorf("PendingNamed(%q) = %d, expected the clock to keep running", taskClock, got)
	}
}

func TestGameSnakeMovesWithFrames(t *testing.T) {
	g := newTestGame(noMonstersConfig(), 1)
	g.Step(input(core.ActionStart))
	g.Step(input(core.ActionUp))

	// First snake task fires at 250ms.
	stepN(g, 16, core.NewInputFrame())

	if g.world.Snake.Head != core.Pos(0, 20) {
		t.Errorf("Head = %v, expected (0,20)", g.world.Snake.Head)
	}
	if g.states.Motion(g.world) != "Up" {
		t.Errorf("Motion() = %q, expected Up", g.states.Motion(g.world))
	}
}

func TestGameElapsedSeconds(t *testing.T) {
	g := newTestGame(noMonstersConfig(), 1)
	g.Step(input(core.ActionStart))

	stepN(g, 185, core.NewInputFrame())

	if got := g.world.State.ElapsedSeconds; got != 3 {
		t.Errorf("ElapsedSeconds = %d, expected 3", got)
	}
}

func TestGamePauseFreezesSnakeOnly(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 3)
	g.Step(input(core.ActionStart))
	g.Step(input(core.ActionRight))
	stepN(g, 20, core.NewInputFrame())
	g.Step(input(core.ActionPause))

	head := g.world.Snake.Head
	before := make([]core.Position, len(g.world.Monsters))
	for i, m := range g.world.Monsters {
		before[i] = m.Pos
	}

	stepN(g, 120, core.NewInputFrame())

	if g.world.Snake.Head != head {
		t.Errorf("Head moved from %v to %v while paused", head, g.world.Snake.Head)
	}
	moved := 0
	for i, m := range g.world.Monsters {
		if m.Pos != before[i] {
			moved++
		}
	}
	if moved == 0 {
		t.Error("no monster moved while the snake was paused")
	}
}

func TestGameRestartAfterEnd(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 1)
	g.Step(input(core.ActionStart))
	g.world.Monsters[0].Pos = g.world.Snake.Head
	g.states.CheckLose(g.world)

	if !g.State().GameOver {
		t.Fatal("State().GameOver = false after a capture")
	}
	if out := g.Outcome(); out.Outcome != "lost" {
		t.Errorf("Outcome().Outcome = %q, expected lost", out.Outcome)
	}

	g.Step(input(core.ActionRestart))

	if g.world.State.Phase != PhaseAwaitingStart {
		t.Errorf("Phase = %v after restart, expected awaiting_start", g.world.State.Phase)
	}
	if g.State().GameOver || g.scene.EndMessage() != "" {
		t.Error("restart did not clear the end state")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(config.DefaultMonstersConfig(), 42)
		script := map[int]core.Action{
			0:   core.ActionStart,
			1:   core.ActionUp,
			40:  core.ActionRight,
			90:  core.ActionDown,
			150: core.ActionPause,
			200: core.ActionLeft,
			260: core.ActionUp,
		}
		for frame := 0; frame < 600; frame++ {
			in := core.NewInputFrame()
			if a, ok := script[frame]; ok {
				in.Set(a)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestGameSetupErrorOnTinyArena(t *testing.T) {
	cfg := config.DefaultMonstersConfig()
	cfg.Arena.HalfWidth = 40
	cfg.Arena.HalfHeight = 40
	cfg.Food.PlacementAttempts = 20
	g := newTestGame(cfg, 1)

	if !errors.Is(g.setupErr, ErrPlacementExhausted) {
		t.Fatalf("setupErr = %v, expected ErrPlacementExhausted", g.setupErr)
	}
	g.Step(input(core.ActionStart))
	if g.world.State.Phase != PhaseAwaitingStart {
		t.Errorf("Phase = %v, a broken setup must not start", g.world.State.Phase)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot set up the arena") {
		t.Error("setup error not rendered")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if got := screen.Row(0); !strings.HasPrefix(got, " Contacts-0    Time-0    Motion-Paused") {
		t.Errorf("status line = %q", got)
	}
	if !strings.Contains(screen.String(), "Press Enter or click to start") {
		t.Error("intro banner missing")
	}
}

func TestGameRenderEntities(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 1)
	g.Step(input(core.ActionStart))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Arena is 52x23 below the status line, centred horizontally.
	at := func(p core.Position) rune {
		x := (80-52)/2 + 1 + (p.X+250)/20*2
		y := 1 + 1 + (210-p.Y)/20
		return screen.Get(x, y)
	}
	if r := at(g.world.Snake.Head); r != '@' {
		t.Errorf("head cell = %q, expected '@'", r)
	}
	for _, m := range g.world.Monsters {
		if r := at(m.Pos); r != 'M' {
			t.Errorf("monster %d cell = %q, expected 'M'", m.ID, r)
		}
	}
	for _, f := range g.world.Food {
		if r := at(f.Pos); r != rune('0'+f.Value) {
			t.Errorf("food %d cell = %q, expected %q", f.ID, r, rune('0'+f.Value))
		}
	}
}

func TestGameRenderEndMessage(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 1)
	g.Step(input(core.ActionStart))
	g.world.Monsters[0].Pos = g.world.Snake.Head
	g.states.CheckLose(g.world)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), LoseMessage) {
		t.Errorf("end message %q not rendered", LoseMessage)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(config.DefaultMonstersConfig(), 1)
	screen := core.NewScreen(30, 10)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small notice missing")
	}
}
