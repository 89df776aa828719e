package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/dictionary"
	"github.com/vovakirdan/wordsnake/internal/mission"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Show the mission objectives",
	Long: `List every mission level with its objective and the size of its
word list. Lists and texts from --words override the built-in ones.

Examples:
  wordsnake missions
  wordsnake missions --words ./lists`,
	Args: cobra.NoArgs,
	Run:  runMissions,
}

func runMissions(cmd *cobra.Command, _ []string) {
	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.LoadWordSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fsys := wordsFS(flagWords)
	texts, err := mission.LoadTexts(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	loader := dictionary.NewLoader(fsys, logger)

	fmt.Printf("  %-5s  %-6s  %s\n", "Level", "Words", "Objective")
	fmt.Printf("  %-5s  %-6s  %s\n", "-----", "-----", "---------")

	for level := 1; level <= mission.LastLevel; level++ {
		count := "-"
		if d, err := loader.Load(ctx, dictionary.MissionList(level), cfg.Words.MinLenMissions); err == nil {
			count = fmt.Sprint(d.Len())
		}
		fmt.Printf("  %-5d  %-6s  %s\n", level, count, texts.Describe(level))
	}
}
