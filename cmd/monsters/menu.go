package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-monsters/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher menu",
	Long: `Start in interactive menu mode.

Pick Play to start a game or Results to browse recorded runs. After a
game or the results board closes, you return to the menu.

Controls:
  Up/Down/W/S  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  monsters menu
  monsters menu --fps 30
  monsters menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyConfigFlag(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		choice, updated, err := tui.RunMenu(store, defaultGameID, "Snake & Monsters", cfg)
		if err != nil {
			return err
		}
		cfg = updated

		switch choice {
		case tui.ChoicePlay:
			if err := playOnce(cfg, tui.Options{Store: store}); err != nil {
				logger.Error("game ended with an error", "err", err)
			}
		case tui.ChoiceResults:
			if store == nil {
				logger.Warn("no scores database, results unavailable")
				continue
			}
			if err := tui.RunScoreboard(store, defaultGameID, "Snake & Monsters", cfg.ScreenW, cfg.ScreenH); err != nil {
				logger.Error("results board", "err", err)
			}
		default:
			return nil
		}
	}
}
