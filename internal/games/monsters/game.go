package monsters

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-monsters/internal/config"
	"github.com/vovakirdan/snake-monsters/internal/core"
	"github.com/vovakirdan/snake-monsters/internal/registry"
	"github.com/vovakirdan/snake-monsters/internal/sched"
)

// Task names used with the scheduler.
const (
	taskSnake   = "snake"
	taskMonster = "monster"
	taskFood    = "food"
	taskClock   = "clock"
)

const hudHeight = 1

// configPath is the optional custom config file, set from the CLI.
var configPath string

// SetConfigPath sets the config file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("monsters", func() registry.Game {
		return New()
	})
}

// Game adapts the scheduler-driven world to the arcade frame loop. Every
// Step advances the virtual clock by one frame and runs whatever tasks
// became due.
type Game struct {
	cfg      config.MonstersConfig
	fixedCfg bool
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	clock    *sched.Scheduler
	frame    time.Duration

	world    *World
	scene    *SceneRenderer
	snake    SnakeController
	monsters []MonsterController
	food     FoodManager
	states   StateMachine

	startedAt time.Duration
	setupErr  error

	screenW int
	screenH int
}

// New creates a Snake & Monsters game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.MonstersConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func (g *Game) ID() string {
	return "monsters"
}

func (g *Game) Title() string {
	return "Snake & Monsters"
}

// Reset builds a fresh world: snake at the centre, monsters placed, food not
// yet spawned. The game waits for the start gesture.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadMonsters(configPath)
		if err != nil {
			cfg = config.DefaultMonstersConfig()
		}
		g.cfg = cfg
	}

	g.runtime = rc
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.frame = rc.FrameDuration()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.clock = sched.New()
	g.startedAt = 0
	g.setupErr = nil

	g.scene = NewSceneRenderer()
	g.world = NewWorld(g.cfg, g.rng)
	collide := NewCollisionDetector(g.cfg.Collision.ContactRadius)
	g.states = StateMachine{Renderer: g.scene, Collide: collide}
	g.food = FoodManager{Renderer: g.scene}
	g.snake = SnakeController{Food: g.food, States: g.states, Renderer: g.scene}

	g.scene.DrawEntity(headEntityID, KindHead, g.world.Snake.Head, "")
	if err := PlaceMonsters(g.world); err != nil {
		g.setupErr = err
	}
	g.monsters = g.monsters[:0]
	for _, m := range g.world.Monsters {
		g.monsters = append(g.monsters, MonsterController{
			Monster:  m,
			Collide:  collide,
			States:   g.states,
			Renderer: g.scene,
		})
		g.scene.DrawEntity(monsterEntityID(m.ID), KindMonster, m.Pos, "")
	}
	g.scene.Refresh()
}

// start moves every monster once, spawns the food and schedules every
// actor. Food is spawned after the first monster move so it never lands on
// a monster.
func (g *Game) start() {
	g.states.Start(g.world)
	g.startedAt = g.clock.Now()

	var pending []MonsterOutcome
	for _, mc := range g.monsters {
		pending = append(pending, mc.Step(g.world))
	}
	if err := g.food.SpawnInitialBatch(g.world); err != nil {
		g.setupErr = err
		return
	}

	g.clock.After(g.world.SnakePeriod, taskSnake, g.snakeTask)
	for i, mc := range g.monsters {
		if pending[i].Reschedule {
			g.clock.After(pending[i].Delay, taskMonster, g.monsterTask(mc))
		}
	}
	first := time.Duration(g.cfg.Food.FirstRelocateMs) * time.Millisecond
	g.clock.After(first, taskFood, g.foodTask)
	g.clock.After(time.Second, taskClock, g.clockTask)
	g.scene.Refresh()
}

func (g *Game) snakeTask() {
	out := g.snake.Step(g.world)
	if out.Reschedule {
		g.clock.After(out.Delay, taskSnake, g.snakeTask)
	}
}

func (g *Game) monsterTask(mc MonsterController) sched.Task {
	var task sched.Task
	task = func() {
		out := mc.Step(g.world)
		if out.Reschedule {
			g.clock.After(out.Delay, taskMonster, task)
		}
	}
	return task
}

// foodTask relocates food until the game ends or the last item is eaten.
func (g *Game) foodTask() {
	if g.world.Over() || len(g.world.Food) == 0 {
		return
	}
	g.food.RelocateRandomSubset(g.world)
	g.clock.After(g.food.NextRelocateDelay(g.world), taskFood, g.foodTask)
}

func (g *Game) clockTask() {
	if g.world.Over() {
		return
	}
	g.world.State.ElapsedSeconds = int((g.clock.Now() - g.startedAt) / time.Second)
	g.clock.After(time.Second, taskClock, g.clockTask)
}

// Step applies input and advances the clock by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.world.Over() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}
	if g.setupErr != nil {
		return core.StepResult{State: g.State()}
	}

	w := g.world
	if in.Has(core.ActionStart) && w.State.Phase == PhaseAwaitingStart {
		g.start()
	}
	if in.Has(core.ActionPause) {
		g.states.TogglePause(w)
	}
	if d := lastDirection(in); d != DirNone {
		g.states.SetDirection(w, d)
	}

	if w.State.Phase != PhaseAwaitingStart && g.setupErr == nil {
		g.clock.Advance(g.frame)
		g.scene.Refresh()
	}
	return core.StepResult{State: g.State()}
}

// lastDirection returns the most recent steering action in the frame.
func lastDirection(in core.InputFrame) Direction {
	for i := len(in.Order) - 1; i >= 0; i-- {
		switch in.Order[i] {
		case core.ActionUp:
			return DirUp
		case core.ActionDown:
			return DirDown
		case core.ActionLeft:
			return DirLeft
		case core.ActionRight:
			return DirRight
		}
	}
	return DirNone
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// State returns the platform-facing state. The score is the total value of
// food eaten.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Eaten,
		GameOver: g.world.Over(),
		Paused:   g.world.State.Phase == PhasePaused,
	}
}

// arenaSize returns the screen footprint of the arena including its border.
func (g *Game) arenaSize() (int, int) {
	b := g.world.Bounds()
	cols := b.GridCols(g.cfg.Arena.CellSize)
	rows := b.GridRows(g.cfg.Arena.CellSize)
	return cols*2 + 2, rows + 2
}

// Render draws the status line, the arena and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world

	status := fmt.Sprintf(" Contacts-%d    Time-%d    Motion-%s",
		w.State.Contacts, w.State.ElapsedSeconds, g.states.Motion(w))
	dst.DrawTextColored(0, 0, status, core.ColorCyan)

	boxW, boxH := g.arenaSize()
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", boxW, boxH+hudHeight), core.ColorGray)
		return
	}

	boxX := (dst.Width() - boxW) / 2
	dst.DrawBox(core.NewRect(boxX, hudHeight, boxW, boxH), core.ColorBlue)
	g.scene.Paint(dst, core.Pos(boxX+1, hudHeight+1), w.Bounds(), g.cfg.Arena.CellSize)

	mid := hudHeight + boxH/2
	switch {
	case g.setupErr != nil:
		dst.DrawTextCentered(mid-1, "Cannot set up the arena", core.ColorBrightRed)
		dst.DrawTextCentered(mid, "Check the monsters config", core.ColorGray)
	case w.State.Phase == PhaseAwaitingStart:
		dst.DrawTextCentered(mid-3, "SNAKE & MONSTERS", core.ColorBrightWhite)
		dst.DrawTextCentered(mid+2, "Press Enter or click to start", core.ColorDefault)
		dst.DrawTextCentered(mid+3, "Arrows steer, Space pauses", core.ColorGray)
	case w.Over():
		color := core.ColorBrightRed
		if w.State.Phase == PhaseWon {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(mid-2, g.scene.EndMessage(), color)
		dst.DrawTextCentered(mid+2, "R restart    Q quit", core.ColorGray)
	}
}
