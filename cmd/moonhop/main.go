// moonhop is a moon-climbing platform-jump arcade game for the terminal.
//
// Usage:
//
//	moonhop modes              - List game modes
//	moonhop play [mode]        - Play a mode, or pick one from the menu
//	moonhop serve              - Start SSH server for remote play
//	moonhop scores [mode]      - Show high scores and stage records
//	moonhop stage <n>          - Dump a generated stage
//	moonhop replay <file>      - Re-simulate a recorded run
//	moonhop schema             - Print the config file JSON schema
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.moonhop/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonhop/internal/config"
	"github.com/vovakirdan/moonhop/internal/games/moonhop"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moonhop",
	Short: "MoonHop - climb to the moon before the water catches you",
	Long: `MoonHop is a terminal platform-jump game. Charge a jump, leap from
platform to platform, and reach the moon at the top of each stage before
the rising water swallows you.

Available commands:
  modes    - Show all game modes
  play     - Play a mode directly, or pick one from the menu
  serve    - Start SSH server for remote play
  scores   - View high scores and stage records
  stage    - Dump a generated stage as text, YAML or JSON
  replay   - Re-simulate a recorded run
  schema   - Print the JSON schema of the config file

Examples:
  moonhop play
  moonhop play moonhop_endless --difficulty hard
  moonhop serve --ssh :2222
  moonhop stage 3 --format yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.moonhop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(schemaCmd)
}

// newLogger builds the CLI logger from --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// loadConfig resolves the game config from --config and --difficulty and
// installs it for registry-created games.
func loadConfig(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	logger.Debug("config loaded", "source", source, "stages", len(cfg.Stages), "difficulty", preset)
	moonhop.SetConfig(cfg)
	return cfg, nil
}
