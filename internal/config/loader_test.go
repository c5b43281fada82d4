package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := MonstersConfig{}
	if err := yaml.Unmarshal(GetDefaultYAML("monsters"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMonstersConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultMonstersConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultMonstersConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monsters.yaml")
	data := []byte("monsters:\n  count: 2\nfood:\n  count: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadMonsters(path)
	if err != nil {
		t.Fatalf("LoadMonsters() failed: %v", err)
	}

	if cfg.Monsters.Count != 2 {
		t.Errorf("Monsters.Count = %d, expected 2", cfg.Monsters.Count)
	}
	if cfg.Food.Count != 3 {
		t.Errorf("Food.Count = %d, expected 3", cfg.Food.Count)
	}
	// Untouched keys keep their defaults
	if cfg.Arena.CellSize != 20 {
		t.Errorf("Arena.CellSize = %d, expected default 20", cfg.Arena.CellSize)
	}
	if cfg.Snake.DigestStepMs != 450 {
		t.Errorf("Snake.DigestStepMs = %d, expected default 450", cfg.Snake.DigestStepMs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadMonsters(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadMonsters() with missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadMonsters(bad); err == nil {
		t.Error("LoadMonsters() with malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("arena:\n  cell_size: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, err := LoadMonsters(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadMonsters() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MonstersConfig)
	}{
		{"zero cell", func(c *MonstersConfig) { c.Arena.CellSize = 0 }},
		{"arena smaller than a cell", func(c *MonstersConfig) { c.Arena.HalfWidth = 10 }},
		{"zero step", func(c *MonstersConfig) { c.Snake.StepMs = 0 }},
		{"inverted jitter", func(c *MonstersConfig) { c.Monsters.JitterMinMs = 2000 }},
		{"inverted relocate", func(c *MonstersConfig) { c.Food.RelocateMinMs = 9000 }},
		{"no attempts", func(c *MonstersConfig) { c.Food.PlacementAttempts = 0 }},
		{"zero radius", func(c *MonstersConfig) { c.Collision.ContactRadius = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMonstersConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultMonstersConfig()
	if got := cfg.Food.TotalFoodValue(); got != 15 {
		t.Errorf("TotalFoodValue() = %d, expected 15", got)
	}
	if got := cfg.Snake.StepPeriod().Milliseconds(); got != 250 {
		t.Errorf("StepPeriod() = %dms, expected 250", got)
	}
	if got := cfg.Snake.DigestPeriod().Milliseconds(); got != 450 {
		t.Errorf("DigestPeriod() = %dms, expected 450", got)
	}
}
