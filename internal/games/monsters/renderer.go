package monsters

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/snake-monsters/internal/core"
)

// EntityKind identifies what an entity is for drawing purposes.
type EntityKind int

const (
	KindFood EntityKind = iota
	KindBody
	KindMonster
	KindHead
)

func (k EntityKind) String() string {
	switch k {
	case KindFood:
		return "food"
	case KindBody:
		return "body"
	case KindMonster:
		return "monster"
	case KindHead:
		return "head"
	default:
		return "unknown"
	}
}

// Renderer receives entity updates from the controllers. The game never
// reads anything back from it.
type Renderer interface {
	DrawEntity(id string, kind EntityKind, pos core.Position, label string)
	ClearEntity(id string)
	ShowEndMessage(text string)
	Refresh()
}

const headEntityID = "head"

func bodyEntityID(id int) string    { return fmt.Sprintf("body-%d", id) }
func monsterEntityID(id int) string { return fmt.Sprintf("monster-%d", id) }
func foodEntityID(id int) string    { return fmt.Sprintf("food-%d", id) }

type sprite struct {
	id    string
	kind  EntityKind
	pos   core.Position
	label string
}

// SceneRenderer is a retained-mode Renderer. Updates are staged and become
// visible on Refresh, then Paint projects the visible scene onto a screen
// buffer, two columns per grid cell.
type SceneRenderer struct {
	staged  map[string]sprite
	visible []sprite
	endMsg  string
}

// NewSceneRenderer creates an empty scene.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{staged: make(map[string]sprite)}
}

func (r *SceneRenderer) DrawEntity(id string, kind EntityKind, pos core.Position, label string) {
	r.staged[id] = sprite{id: id, kind: kind, pos: pos, label: label}
}

func (r *SceneRenderer) ClearEntity(id string) {
	delete(r.staged, id)
}

// ShowEndMessage records the end-of-game banner. Only the first message
// sticks.
func (r *SceneRenderer) ShowEndMessage(text string) {
	if r.endMsg == "" {
		r.endMsg = text
	}
}

// Refresh publishes staged updates, painted food first and head last.
func (r *SceneRenderer) Refresh() {
	r.visible = r.visible[:0]
	for _, s := range r.staged {
		r.visible = append(r.visible, s)
	}
	sort.Slice(r.visible, func(i, j int) bool {
		a, b := r.visible[i], r.visible[j]
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.id < b.id
	})
}

// EndMessage returns the banner set by ShowEndMessage, if any.
func (r *SceneRenderer) EndMessage() string {
	return r.endMsg
}

// Paint draws the visible scene into dst. origin is the screen cell of the
// arena's top-left grid cell; north is up.
func (r *SceneRenderer) Paint(dst *core.Screen, origin core.Position, bounds core.Bounds, cell int) {
	for _, s := range r.visible {
		col := (s.pos.X + bounds.HalfWidth) / cell
		row := (bounds.HalfHeight - s.pos.Y) / cell
		x := origin.X + col*2
		y := origin.Y + row

		switch s.kind {
		case KindHead:
			dst.SetColored(x, y, '@', core.ColorBrightYellow)
			dst.SetColored(x+1, y, '@', core.ColorBrightYellow)
		case KindBody:
			dst.SetColored(x, y, '(', core.ColorGreen)
			dst.SetColored(x+1, y, ')', core.ColorGreen)
		case KindMonster:
			dst.SetColored(x, y, 'M', core.ColorMagenta)
			dst.SetColored(x+1, y, 'M', core.ColorMagenta)
		case KindFood:
			label := []rune(s.label + " ")
			dst.SetColored(x, y, label[0], core.ColorYellow)
			dst.SetColored(x+1, y, label[1], core.ColorYellow)
		}
	}
}
