package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonhop/internal/games/moonhop"
	"github.com/vovakirdan/moonhop/internal/registry"
	"github.com/vovakirdan/moonhop/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent int
	flagScoresAll    bool
	flagScoresReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and stage records",
	Long: `Display the top scores of a mode (campaign by default) followed by the
best clear of every stage.

Examples:
  moonhop scores
  moonhop scores moonhop_endless --limit 20
  moonhop scores --recent 5
  moonhop scores --all
  moonhop scores moonhop_practice --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Also show this many most recent runs")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every mode instead")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all runs of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := moonhop.ModeCampaign.ID()
	if len(args) == 1 {
		mode = args[0]
	}
	info, ok := registry.Lookup(mode)
	if !ok {
		return fmt.Errorf("unknown mode %q (run 'moonhop modes' to see available modes)", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresReset:
		if err := store.ClearScores(info.ID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs of %s.\n", info.Title)
		return nil
	case flagScoresAll:
		return printAllModes(out, store)
	}

	if err := printScores(out, store, info); err != nil {
		return err
	}
	if flagScoresRecent > 0 {
		fmt.Fprintln(out)
		if err := printRecent(out, store, info, flagScoresRecent); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)
	return printStageRecords(out, store)
}

func printAllModes(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllModesStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "All Modes")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-20s  %-5s  %-10s  %-6s  %-5s  %s\n", "Mode", "Runs", "Best", "Stage", "Wins", "Last played")
	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok {
			fmt.Fprintf(out, "  %-20s  %-5d  %-10s  %-6s  %-5s  %s\n", info.Title, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-20s  %-5d  %-10d  %-6d  %-5d  %s\n",
			info.Title, s.RunsCount, s.HighScore, s.BestStage, s.Wins, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRecent(out io.Writer, store *storage.Store, info registry.GameInfo, limit int) error {
	runs, err := store.RecentRuns(info.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Recent Runs")
	fmt.Fprintln(out)
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Fprintf(out, "  %s  score %-8d  stage %-3d  %6.1fs  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Stage, r.Duration, result)
	}
	return nil
}

func printScores(out io.Writer, store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", info.Title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintf(out, "Play 'moonhop play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Stage", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %s\n", i+1, e.Score, e.Stage, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetModeStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRuns: %d  Best: %d  Average: %.0f  Furthest stage: %d  Wins: %d\n",
		stats.RunsCount, stats.HighScore, stats.AvgScore, stats.BestStage, stats.Wins)
	return nil
}

func printStageRecords(out io.Writer, store *storage.Store) error {
	recs, err := store.StageRecords()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Stage Records")
	fmt.Fprintln(out)
	if len(recs) == 0 {
		fmt.Fprintln(out, "No stage cleared yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-5s  %-10s  %-8s  %s\n", "Stage", "Best", "Time", "Clears")
	fmt.Fprintf(out, "  %-5s  %-10s  %-8s  %s\n", "-----", "----", "----", "------")
	for _, r := range recs {
		fmt.Fprintf(out, "  %-5d  %-10d  %-8s  %d\n", r.Stage, r.BestScore, fmt.Sprintf("%.2fs", r.BestTime), r.Clears)
	}

	unlocked, err := store.UnlockedStage()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nUnlocked start stage: %d\n", unlocked)
	return nil
}
