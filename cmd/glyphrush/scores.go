package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-rush/internal/games/glyphrush"
	"github.com/vovakirdan/glyph-rush/internal/registry"
	"github.com/vovakirdan/glyph-rush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs of a game",
	Long: `Display the best runs for a game (default glyphrush).

Examples:
  glyphrush scores
  glyphrush scores linear-b --limit 20
  glyphrush scores --stats
  glyphrush scores glyphrush --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate statistics for every game")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := glyphrush.GameID
	if len(args) == 1 {
		gameID = resolveGame(args[0])
	}
	if !flagScoresStats && !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'glyphrush list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresStats:
		return printStats(store)
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'glyphrush play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %6s  %8s  %6s  %-3s  %s\n", "Rank", "Player", "Score", "Unlocked", "Rounds", "Won", "Date")
	fmt.Printf("  %-4s  %-12s  %6s  %8s  %6s  %-3s  %s\n", "----", "------", "-----", "--------", "------", "---", "----")
	for i, e := range scores {
		won := ""
		if e.Victory {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-12s  %6d  %7.1f%%  %6d  %-3s  %s\n",
			i+1, e.Player, e.Score, e.UnlockedPct, e.Rounds, won, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		s := all[id]
		fmt.Printf("%s\n", registry.Title(id))
		fmt.Printf("  Runs:          %d (%d won)\n", s.GamesCount, s.Victories)
		fmt.Printf("  Best score:    %d\n", s.HighScore)
		fmt.Printf("  Average score: %.1f\n", s.AvgScore)
		fmt.Printf("  Best unlocked: %.1f%%\n", s.BestUnlocked)
		fmt.Printf("  Rounds played: %d\n", s.TotalRounds)
		if !s.LastPlayed.IsZero() {
			fmt.Printf("  Last played:   %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
	return nil
}
