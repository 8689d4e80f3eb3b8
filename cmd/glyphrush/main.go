// glyphrush is a reflex glyph-matching game for the terminal.
//
// Usage:
//
//	glyphrush list              - List games and glyph sets
//	glyphrush play [game]       - Play a game (default: glyphrush)
//	glyphrush menu              - Pick a game interactively
//	glyphrush serve             - Start the SSH server for remote play
//	glyphrush scores [game]     - Show the best runs of a game
//	glyphrush config            - Print the default configuration
//
// Global flags default to GLYPHRUSH_* environment variables:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible play
//	--db <path>           - Runs database (default: ~/.glyphrush/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--timescale <value>   - Starting timescale override
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-rush/internal/config"
	"github.com/vovakirdan/glyph-rush/internal/games/glyphrush"
)

const defaultDBPath = "~/.glyphrush/scores.db"

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTimescale  float64
	flagLogFile    string
	flagLogLevel   string
)

// Environment defaults are read before any init so every command's flags
// can use them.
var envSettings, envErr = config.LoadEnv()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphrush",
	Short: "Glyph Rush - find the target glyphs before the timer runs out",
	Long: `Glyph Rush is a reflex matching game. Each round shows a few target
glyphs above a grid; pick every cell that matches before time runs out.
Scoring unlocks more of the glyph set, which grows the grid and shortens
the rounds. Unlock every glyph to win.

Examples:
  glyphrush play
  glyphrush play linear-b --difficulty easy
  glyphrush menu
  glyphrush serve --ssh :2222
  glyphrush scores --stats`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applySettings,
}

func init() {
	dbPath := envSettings.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", dbPath, "Path to runs database")
	pf.StringVar(&flagConfig, "config", envSettings.ConfigPath, "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", envSettings.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	pf.Float64Var(&flagTimescale, "timescale", envSettings.Timescale, "Starting timescale (0 = from config)")
	pf.StringVar(&flagLogFile, "log-file", envSettings.LogFile, "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", envSettings.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applySettings validates the global flags and hands them to the game
// package before any game is created.
func applySettings(_ *cobra.Command, _ []string) error {
	if envErr != nil {
		return envErr
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagTimescale < 0 {
		return fmt.Errorf("--timescale must not be negative, got %v", flagTimescale)
	}
	if flagDifficulty != "" {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
	}

	glyphrush.SetConfigPath(flagConfig)
	glyphrush.SetDifficultyPreset(flagDifficulty)
	glyphrush.SetTimescale(flagTimescale)
	return nil
}
