// monsters is a terminal Snake & Monsters game: steer a growing snake, eat
// the numbered food and stay clear of the monsters hunting its head.
//
// Usage:
//
//	monsters play            - Play a game
//	monsters menu            - Launcher with play and results entries
//	monsters serve           - Start SSH server for remote play
//	monsters scores          - Show recorded runs and high scores
//	monsters list            - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/snake-monsters/internal/games/monsters"
)

const defaultGameID = "monsters"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "monsters",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "monsters",
	Short: "Snake & Monsters - a snake game with hunters",
	Long: `Snake & Monsters is a terminal game. Steer the snake with the arrow
keys, eat the numbered food to grow, and keep the monsters away from
the head. Touching the body counts a contact; a monster reaching the
head ends the game.

Available commands:
  play     - Play a game
  menu     - Launcher with play and results entries
  serve    - Start SSH server for remote play
  scores   - Show recorded runs and high scores
  list     - Show registered games

Examples:
  monsters play
  monsters play --seed 42 --spectate :8081
  monsters serve --ssh :2222
  monsters scores --board`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
