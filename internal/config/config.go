// Package config provides YAML-based configuration loading for the
// Snake & Monsters game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// MonstersConfig contains all configuration for the Snake & Monsters game.
type MonstersConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Snake     SnakeConfig     `yaml:"snake"`
	Monsters  MonsterConfig   `yaml:"monsters"`
	Food      FoodConfig      `yaml:"food"`
	Collision CollisionConfig `yaml:"collision"`
}

// ArenaConfig defines the play area. Positions are multiples of CellSize
// inside [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type ArenaConfig struct {
	CellSize   int `yaml:"cell_size"`
	HalfWidth  int `yaml:"half_width"`
	HalfHeight int `yaml:"half_height"`
}

// SnakeConfig defines the player's snake.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"` // Starting target length
	StepMs        int `yaml:"step_ms"`        // Period while fully grown
	DigestStepMs  int `yaml:"digest_step_ms"` // Period while still growing
}

// MonsterConfig defines the pursuing monsters.
type MonsterConfig struct {
	Count            int `yaml:"count"`
	MinStartDistance int `yaml:"min_start_distance"`
	JitterMinMs      int `yaml:"jitter_min_ms"` // Added to the snake's period, may be negative
	JitterMaxMs      int `yaml:"jitter_max_ms"`
}

// FoodConfig defines food spawning and relocation.
type FoodConfig struct {
	Count             int `yaml:"count"`
	FirstRelocateMs   int `yaml:"first_relocate_ms"`
	RelocateMinMs     int `yaml:"relocate_min_ms"`
	RelocateMaxMs     int `yaml:"relocate_max_ms"`
	ShiftCells        int `yaml:"shift_cells"`
	PlacementAttempts int `yaml:"placement_attempts"`
}

// CollisionConfig defines contact thresholds.
type CollisionConfig struct {
	ContactRadius int `yaml:"contact_radius"`
	FoodTolerance int `yaml:"food_tolerance"`
}

// StepPeriod returns the snake period when fully grown.
func (c SnakeConfig) StepPeriod() time.Duration {
	return time.Duration(c.StepMs) * time.Millisecond
}

// DigestPeriod returns the snake period while it is still growing.
func (c SnakeConfig) DigestPeriod() time.Duration {
	return time.Duration(c.DigestStepMs) * time.Millisecond
}

// TotalFoodValue returns the growth available from one batch of food.
// Food values are the ordinals 1..Count.
func (c FoodConfig) TotalFoodValue() int {
	return c.Count * (c.Count + 1) / 2
}

// Validate checks the configuration for values the game cannot run with.
func (c MonstersConfig) Validate() error {
	switch {
	case c.Arena.CellSize <= 0:
		return fmt.Errorf("%w: arena.cell_size must be positive", ErrInvalid)
	case c.Arena.HalfWidth < c.Arena.CellSize || c.Arena.HalfHeight < c.Arena.CellSize:
		return fmt.Errorf("%w: arena must be at least one cell in each direction", ErrInvalid)
	case c.Snake.InitialLength < 0:
		return fmt.Errorf("%w: snake.initial_length must not be negative", ErrInvalid)
	case c.Snake.StepMs <= 0 || c.Snake.DigestStepMs <= 0:
		return fmt.Errorf("%w: snake step periods must be positive", ErrInvalid)
	case c.Monsters.Count < 0:
		return fmt.Errorf("%w: monsters.count must not be negative", ErrInvalid)
	case c.Monsters.JitterMinMs > c.Monsters.JitterMaxMs:
		return fmt.Errorf("%w: monsters.jitter_min_ms exceeds jitter_max_ms", ErrInvalid)
	case c.Food.Count < 0:
		return fmt.Errorf("%w: food.count must not be negative", ErrInvalid)
	case c.Food.RelocateMinMs <= 0 || c.Food.RelocateMinMs > c.Food.RelocateMaxMs:
		return fmt.Errorf("%w: food relocate range is invalid", ErrInvalid)
	case c.Food.FirstRelocateMs <= 0:
		return fmt.Errorf("%w: food.first_relocate_ms must be positive", ErrInvalid)
	case c.Food.ShiftCells <= 0:
		return fmt.Errorf("%w: food.shift_cells must be positive", ErrInvalid)
	case c.Food.PlacementAttempts <= 0:
		return fmt.Errorf("%w: food.placement_attempts must be positive", ErrInvalid)
	case c.Collision.ContactRadius <= 0:
		return fmt.Errorf("%w: collision.contact_radius must be positive", ErrInvalid)
	case c.Collision.FoodTolerance < 0:
		return fmt.Errorf("%w: collision.food_tolerance must not be negative", ErrInvalid)
	}
	return nil
}
