package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|missions]",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs for a variant (classic when omitted).

Examples:
  wordsnake scores
  wordsnake scores missions
  wordsnake scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
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

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordsnake play %s' to set the first high score!\n", variant)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-5s  %s\n", "Rank", "Score", "Words", "Streak", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-5s  %s\n", "----", "-----", "-----", "------", "-----", "----")

	for i, e := range scores {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-5d  %s\n", i+1, e.Score, e.Words, e.BestStreak, e.Level, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Words: %d  Best streak: %d  Max level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalWords, stats.BestStreak, stats.MaxLevel)
	}
}
