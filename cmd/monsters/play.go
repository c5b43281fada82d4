package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-monsters/internal/config"
	"github.com/vovakirdan/snake-monsters/internal/core"
	"github.com/vovakirdan/snake-monsters/internal/games/monsters"
	"github.com/vovakirdan/snake-monsters/internal/platform/tui"
	"github.com/vovakirdan/snake-monsters/internal/registry"
	"github.com/vovakirdan/snake-monsters/internal/storage"
)

var (
	flagConfig   string
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake & Monsters.

Controls:
  Enter/Click  - Start
  Arrows/WASD  - Steer (also resumes a paused game)
  Space/P      - Pause
  R            - Restart (after the game ended)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Examples:
  monsters play
  monsters play --seed 42
  monsters play --config ./my-monsters.yaml
  monsters play --spectate :8081`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a read-only websocket feed on this address (e.g. :8081)")
}

// terminalConfig builds the runtime config from the global flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A failure only disables saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// applyConfigFlag makes the game read --config, failing early when the file
// cannot be used.
func applyConfigFlag() error {
	if flagConfig == "" {
		return nil
	}
	if _, err := config.LoadMonsters(flagConfig); err != nil {
		return err
	}
	monsters.SetConfigPath(flagConfig)
	return nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if err := applyConfigFlag(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Store: store}
	if flagSpectate != "" {
		feed, err := startSpectate(context.Background(), flagSpectate)
		if err != nil {
			return fmt.Errorf("spectate: %w", err)
		}
		defer feed.Close()
		opts.Publisher = feed.hub
	}

	return playOnce(terminalConfig(), opts)
}

// playOnce runs a single game session until the player quits.
func playOnce(cfg core.RuntimeConfig, opts tui.Options) error {
	game, err := registry.Create(defaultGameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
