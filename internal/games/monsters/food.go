package monsters

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-monsters/internal/core"
)

// FoodManager spawns, relocates and consumes food.
type FoodManager struct {
	Renderer Renderer
}

// SpawnInitialBatch places food items valued 1..Count on free grid cells.
// Each item gets at most Food.PlacementAttempts samples; if none is free the
// batch is abandoned with ErrPlacementExhausted, since the arena cannot hold
// the configured entities.
func (f FoodManager) SpawnInitialBatch(w *World) error {
	bounds := w.Bounds()
	attempts := w.Config.Food.PlacementAttempts

	for value := 1; value <= w.Config.Food.Count; value++ {
		placed := false
		for iter := 0; iter < attempts; iter++ {
			p := bounds.RandomCell(w.rng, w.Cell())
			if w.Occupied(p) {
				continue
			}
			item := FoodItem{ID: value, Pos: p, Value: value}
			w.addFood(item)
			f.draw(item)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: food %d after %d attempts", ErrPlacementExhausted, value, attempts)
		}
	}
	return nil
}

// ConsumeIfAdjacent eats the first food item within tolerance of head.
// The snake's target length grows by the item's value. At most one item is
// eaten per call.
func (f FoodManager) ConsumeIfAdjacent(w *World, head core.Position) (FoodItem, bool) {
	if w.Over() {
		return FoodItem{}, false
	}
	tol := w.Config.Collision.FoodTolerance
	for i, item := range w.Food {
		if core.Abs(item.Pos.X-head.X) > tol || core.Abs(item.Pos.Y-head.Y) > tol {
			continue
		}
		eaten := w.removeFood(i)
		w.Snake.TargetLength += eaten.Value
		w.Eaten += eaten.Value
		if f.Renderer != nil {
			f.Renderer.ClearEntity(foodEntityID(eaten.ID))
		}
		return eaten, true
	}
	return FoodItem{}, false
}

// RelocateRandomSubset shifts a random non-empty subset of the food.
// Each selected item gets one try: a shift of ShiftCells cells along one
// axis. If the destination is out of bounds or occupied the item stays.
// Returns how many items moved.
func (f FoodManager) RelocateRandomSubset(w *World) int {
	if w.Over() || len(w.Food) == 0 {
		return 0
	}

	bounds := w.Bounds()
	shift := w.Config.Food.ShiftCells * w.Cell()
	k := 1 + w.rng.Intn(len(w.Food))
	picked := w.rng.Perm(len(w.Food))[:k]

	moved := 0
	for _, idx := range picked {
		offset := shift
		if w.rng.Intn(2) == 0 {
			offset = -shift
		}
		target := w.Food[idx].Pos
		if w.rng.Intn(2) == 0 {
			target = target.Add(offset, 0)
		} else {
			target = target.Add(0, offset)
		}
		if !bounds.Contains(target) || w.Occupied(target) {
			continue
		}
		w.moveFood(idx, target)
		f.draw(w.Food[idx])
		moved++
	}
	return moved
}

// NextRelocateDelay draws the delay until the next relocation round.
func (f FoodManager) NextRelocateDelay(w *World) time.Duration {
	ms := w.jitter(w.Config.Food.RelocateMinMs, w.Config.Food.RelocateMaxMs)
	return time.Duration(ms) * time.Millisecond
}

func (f FoodManager) draw(item FoodItem) {
	if f.Renderer == nil {
		return
	}
	f.Renderer.DrawEntity(foodEntityID(item.ID), KindFood, item.Pos, fmt.Sprint(item.Value))
}
