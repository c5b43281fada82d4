package config

import (
	_ "embed"
)

//go:embed defaults/monsters.yaml
var defaultMonstersYAML []byte

// DefaultMonstersConfig returns the built-in Snake & Monsters configuration.
func DefaultMonstersConfig() MonstersConfig {
	return MonstersConfig{
		Arena: ArenaConfig{
			CellSize:   20,
			HalfWidth:  250,
			HalfHeight: 210,
		},
		Snake: SnakeConfig{
			InitialLength: 5,
			StepMs:        250,
			DigestStepMs:  450,
		},
		Monsters: MonsterConfig{
			Count:            4,
			MinStartDistance: 150,
			JitterMinMs:      -50,
			JitterMaxMs:      1200,
		},
		Food: FoodConfig{
			Count:             5,
			FirstRelocateMs:   5000,
			RelocateMinMs:     5000,
			RelocateMaxMs:     8000,
			ShiftCells:        2,
			PlacementAttempts: 1000,
		},
		Collision: CollisionConfig{
			ContactRadius: 20,
			FoodTolerance: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "monsters":
		return defaultMonstersYAML
	default:
		return nil
	}
}
