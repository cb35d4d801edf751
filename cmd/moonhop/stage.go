package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/moonhop/internal/config"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/stage"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
	"github.com/vovakirdan/moonhop/internal/storage"
)

var flagStageFormat string

var stageCmd = &cobra.Command{
	Use:   "stage <n>",
	Short: "Dump a generated stage",
	Long: `Generate stage n with the active config and print it. Stage generation
is deterministic: the same stage number and config always give the same
stage. Stages past the config table are scaled by the difficulty settings.

Formats:
  text  - Summary table of platforms, eels and the moon
  yaml  - Full stage as YAML
  json  - Full stage as JSON

Examples:
  moonhop stage 1
  moonhop stage 12 --format json --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runStage,
}

func init() {
	stageCmd.Flags().StringVar(&flagStageFormat, "format", "text", "Output format: text, yaml, json")
}

func runStage(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("stage number must be a positive integer, got %q", args[0])
	}

	logger, err := newLogger("moonhop")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	dm := config.NewDifficultyManager(cfg.Difficulty)
	stageCfg := dm.StageConfig(cfg.Stages, n)
	s := stage.NewGenerator(cfg.Scoring).Generate(stageCfg, n)
	logger.Debug("stage generated", "stage", n, "seed", stage.StageSeed(n), "platforms", len(s.Platforms))

	out := cmd.OutOrStdout()
	switch flagStageFormat {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "text":
		printStage(out, s)
		printBest(out, logger, n)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", flagStageFormat)
	}
}

func printStage(out io.Writer, s world.Stage) {
	fmt.Fprintf(out, "Stage %d  (seed %d)\n\n", s.Number, stage.StageSeed(s.Number))

	fmt.Fprintf(out, "  %-3s  %-11s  %8s  %8s  %6s  %s\n", "#", "Type", "X", "Y", "Blocks", "Motion")
	for i, p := range s.Platforms {
		motion := ""
		switch p.Type {
		case world.PlatformCaterpillar:
			motion = fmt.Sprintf("belt %+d", p.CaterpillarDirection)
		case world.PlatformMoving:
			motion = fmt.Sprintf("%.0f..%.0f", p.MinX, p.MaxX)
		}
		kind := p.Type.String()
		if i == 0 {
			kind = "ground"
		}
		fmt.Fprintf(out, "  %-3d  %-11s  %8.1f  %8.1f  %6d  %s\n", i, kind, p.X, p.Y, p.Blocks, motion)
	}

	fmt.Fprintf(out, "\nMoon:  x=%.1f y=%.1f size=%.0f\n", s.Moon.X, s.Moon.Y, s.Moon.Size)
	fmt.Fprintf(out, "Water: y=%.1f speed=%.1f\n", s.Water.Y, s.Water.Speed)
	fmt.Fprintf(out, "Eels:  %d\n", len(s.Eels))
	for _, e := range s.Eels {
		fmt.Fprintf(out, "  x=%.1f y=%.1f\n", e.X, e.Y)
	}
	fmt.Fprintf(out, "Stars: %d\n", len(s.Stars))
	fmt.Fprintf(out, "\nClear score: %d at 0s, %d at %.0fs\n",
		s.Score.Score(0), s.Score.Score(s.Score.BaseTime), s.Score.BaseTime)
}

// printBest appends the stored best clear of stage n, if any.
func printBest(out io.Writer, logger *log.Logger, n int) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("no scores database", "error", err)
		return
	}
	defer store.Close()

	rec, ok, err := store.StageRecord(n)
	if err != nil {
		logger.Warn("could not read stage record", "error", err)
		return
	}
	if !ok {
		fmt.Fprintln(out, "Best clear:  none yet")
		return
	}
	fmt.Fprintf(out, "Best clear:  %d points in %.2fs (%d clears)\n", rec.BestScore, rec.BestTime, rec.Clears)
}
