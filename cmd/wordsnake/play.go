package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/games/wordsnake"
	"github.com/vovakirdan/wordsnake/internal/platform/tui"
	"github.com/vovakirdan/wordsnake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [classic|missions]",
	Short: "Play word snake",
	Long: `Start playing the given variant (classic when omitted).

Controls:
  Arrows/WASD  - Turn
  Space/P      - Pause (missions only)
  R            - Restart (after game over)
  Esc          - Leave
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Examples:
  wordsnake play
  wordsnake play missions
  wordsnake play missions --seed 7 --mute
  wordsnake play classic --config ./my-wordsnake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := "classic"
	if len(args) > 0 {
		variant = args[0]
	}
	gameID, err := resolveVariant(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'wordsnake list' to see available variants.")
		os.Exit(1)
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	game, err := registry.Create(gameID, s.env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	s.logger.Info("starting", "game", gameID, "seed", flagSeed)
	if _, err := tui.Run(game, s.store, s.logger, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
	}
}

// resolveVariant maps a variant name or a registered game ID to a game ID.
func resolveVariant(name string) (string, error) {
	switch name {
	case "classic":
		return wordsnake.IDClassic, nil
	case "missions":
		return wordsnake.IDMissions, nil
	}
	if registry.Exists(name) {
		return name, nil
	}
	return "", fmt.Errorf("unknown variant %q", name)
}
