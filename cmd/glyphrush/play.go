package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glyph-rush/internal/core"
	"github.com/vovakirdan/glyph-rush/internal/games/glyphrush"
	"github.com/vovakirdan/glyph-rush/internal/glyph"
	"github.com/vovakirdan/glyph-rush/internal/platform/tui"
	"github.com/vovakirdan/glyph-rush/internal/registry"
	"github.com/vovakirdan/glyph-rush/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing Glyph Rush. The game may be given by game ID or by
glyph set ID (linear-a, linear-b). The default is glyphrush.

Controls:
  Arrows/WASD     - Move the cursor
  Space/Enter     - Pick the cell under the cursor
  Mouse click     - Pick a cell
  ]               - Slower (longer rounds)
  [               - Faster (shorter rounds)
  R               - New run after victory
  Esc/B           - Back
  Q/Ctrl+C        - Quit

Difficulty options:
  easy    - Start at timescale 1.5
  normal  - Start at timescale 1.0
  hard    - Start at timescale 0.75
  fixed   - Keep the configured timescale and disable [ and ]

Examples:
  glyphrush play
  glyphrush play linear-b
  glyphrush play --difficulty hard
  glyphrush play --config ./my-glyphrush.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := glyphrush.GameID
	if len(args) == 1 {
		gameID = resolveGame(args[0])
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'glyphrush list' to see available games", gameID)
	}
	if err := glyphrush.Preflight(setForGame(gameID)); err != nil {
		return fmt.Errorf("cannot start %s: %w", gameID, err)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "game", gameID, "seed", flagSeed)
	if _, err := tui.Run(game, store, logger, runtimeConfig(), playerName()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveGame maps a glyph set ID to the game that plays it.
func resolveGame(arg string) string {
	switch arg {
	case glyph.LinearAID:
		return glyphrush.GameID
	case glyph.LinearBID:
		return glyphrush.GameIDLinearB
	}
	return arg
}

// setForGame returns the glyph set a game ID is pinned to, or "" to use the
// configured one.
func setForGame(gameID string) string {
	if gameID == glyphrush.GameIDLinearB {
		return glyph.LinearBID
	}
	return ""
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}
