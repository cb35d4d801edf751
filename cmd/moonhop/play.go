package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/moonhop/internal/core"
	"github.com/vovakirdan/moonhop/internal/games/moonhop"
	"github.com/vovakirdan/moonhop/internal/platform/tui"
	"github.com/vovakirdan/moonhop/internal/registry"
	"github.com/vovakirdan/moonhop/internal/storage"
)

var (
	flagStage   int
	flagRecord  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without a mode, an interactive menu lets
you pick a mode and a start stage; after a run you return to the menu.

Controls:
  Left/Right, A/D  - Walk, steer a jump
  Space            - Start charging; press again to jump
  Up/W             - Aim the jump upward
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back to menu (paused or game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower water
  normal - Every stage is scaled to 30% difficulty, rising past the table
  hard   - Fewer lives, every stage scaled to 70%, rising past the table
  fixed  - Stages play exactly as the table defines them

Examples:
  moonhop play
  moonhop play moonhop --stage 3
  moonhop play moonhop_endless --difficulty hard
  moonhop play moonhop --record run.mhr
  moonhop play moonhop_practice --config ./my-stages.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStage, "stage", 1, "Start stage")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the last run to this file")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, err := newLogger("moonhop")
	if err != nil {
		return err
	}
	if _, err := loadConfig(logger); err != nil {
		return err
	}

	// The terminal belongs to the game while it runs: session logs go to
	// --log-file or nowhere.
	sessionLogger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		sessionLogger = log.NewWithOptions(f, log.Options{
			Level:           logger.GetLevel(),
			ReportTimestamp: true,
		})
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		StartStage: flagStage,
	}
	opts := tui.Options{Store: store, Logger: sessionLogger}

	if len(args) == 1 {
		return playMode(args[0], cfg, opts, logger)
	}
	return playMenu(cfg, opts, logger)
}

// playMode runs one mode until the user quits.
func playMode(id string, cfg core.RuntimeConfig, opts tui.Options, logger *log.Logger) error {
	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("%w (run 'moonhop modes' to see available modes)", err)
	}

	mh, recording := game.(*moonhop.Game)
	recording = recording && flagRecord != ""
	if recording {
		mh.StartRecording()
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}

	if recording {
		rec := mh.Recording()
		if err := moonhop.SaveReplay(flagRecord, rec); err != nil {
			return err
		}
		logger.Info("replay saved", "path", flagRecord, "ticks", rec.Ticks(), "score", rec.FinalScore)
	}
	return nil
}

// playMenu loops menu, scoreboard and runs until the user quits.
func playMenu(cfg core.RuntimeConfig, opts tui.Options, logger *log.Logger) error {
	for {
		result, err := tui.RunMenu(opts.Store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(opts.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			if err := playMode(result.GameID, cfg, opts, logger); err != nil {
				return err
			}
		}
	}
}
