// wordsnake is a terminal snake game where collected letters spell words.
//
// Usage:
//
//	wordsnake list               - List game variants
//	wordsnake play [variant]     - Play classic or missions
//	wordsnake menu               - Pick a variant interactively
//	wordsnake scores [variant]   - Show recorded runs
//	wordsnake missions           - Show the mission ladder
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.wordsnake/scores.db)
//	--words <dir>      - Directory with word lists overriding the built-in ones
//	--config <path>    - Custom game config YAML
//	--log-file <path>  - Log destination (default: ~/.wordsnake/wordsnake.log)
//	--log-level <lvl>  - debug, info, warn or error
//	--mute             - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/wordsnake/internal/games/wordsnake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagWords    string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsnake",
	Short: "Word Snake - spell words with a snake in your terminal",
	Long: `Word Snake steers a snake over a field of letter tiles. Letters you
eat join a buffer; when the buffer contains a dictionary word the word is
scored and the snake shrinks.

Available commands:
  list      - Show the game variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  scores    - View recorded runs
  missions  - Show the mission objectives

Examples:
  wordsnake play
  wordsnake play missions --seed 42
  wordsnake play classic --words ./lists
  wordsnake scores missions`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Directory with word lists (words.txt, 1.txt..18.txt, missions.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.wordsnake/wordsnake.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(missionsCmd)
}
