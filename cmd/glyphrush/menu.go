package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyph-rush/internal/games/glyphrush"
	"github.com/vovakirdan/glyph-rush/internal/platform/tui"
	"github.com/vovakirdan/glyph-rush/internal/registry"
	"github.com/vovakirdan/glyph-rush/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game interactively",
	Long: `Start in menu mode. Pick a glyph set with the arrow keys and Enter,
press Tab for the scoreboard. Leaving a game with Esc returns here.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := playerName()

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if err := glyphrush.Preflight(setForGame(res.GameID)); err != nil {
			logger.Error("preflight failed", "game", res.GameID, "err", err)
			return fmt.Errorf("cannot start %s: %w", res.GameID, err)
		}
		game, err := registry.Create(res.GameID)
		if err != nil {
			return err
		}

		// Each game from the menu gets a fresh seed unless one was pinned
		run := cfg
		if flagSeed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, store, logger, run, player)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
