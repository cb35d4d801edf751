package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonhop/internal/games/moonhop"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Load a replay written by 'moonhop play --record' and re-simulate it
headlessly with the config it was recorded with. The final score must match
the recorded one; a mismatch is reported as an error.

Examples:
  moonhop replay run.mhr`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger("moonhop")
	if err != nil {
		return err
	}

	rec, err := moonhop.LoadReplay(args[0])
	if err != nil {
		return err
	}
	logger.Debug("replay loaded", "mode", rec.Mode, "ticks", rec.Ticks(), "fps", rec.TickRate)

	snap, err := rec.Play()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode:     %s\n", rec.Mode.Title())
	fmt.Fprintf(out, "Duration: %.1fs (%d ticks at %d fps)\n", rec.Duration(), rec.Ticks(), rec.TickRate)
	fmt.Fprintf(out, "Stage:    %d -> %d\n", rec.StartStage, snap.Stage)
	fmt.Fprintf(out, "Status:   %s\n", snap.Status)
	fmt.Fprintf(out, "Score:    %d\n", snap.Score)

	if snap.Score != rec.FinalScore || snap.Stage != rec.FinalStage {
		return fmt.Errorf("replay diverged: recorded score %d at stage %d, replayed %d at stage %d",
			rec.FinalScore, rec.FinalStage, snap.Score, snap.Stage)
	}
	return nil
}
