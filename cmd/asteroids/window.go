package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/desktop"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagScale  float64
	flagPlayer string
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play a mode in a desktop window",
	Long: `Open a desktop window and play the specified mode (default: asteroids).

The window draws the playfield at its logical resolution and scales it
to the window size. Runs are saved to the same database as terminal play.

Controls:
  A/D, Left/Right  - Rotate
  W/Up             - Thrust
  Space            - Fire
  P                - Pause
  R                - Restart (after game over)
  Q/Esc            - Quit

Examples:
  asteroids window
  asteroids window asteroids_classic --scale 0.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
	windowCmd.Flags().StringVar(&flagPlayer, "player", "local", "Player name recorded with saved runs")
}

func runWindow(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	return desktop.Run(game, cfg, desktop.Options{
		Store:  store,
		Logger: logger,
		Player: flagPlayer,
		Scale:  flagScale,
	})
}
