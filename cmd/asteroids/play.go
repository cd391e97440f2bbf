package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode in the terminal",
	Long: `Start playing the specified mode (default: asteroids).

Modes:
  asteroids          - Endless waves, each bigger than the last
  asteroids_classic  - Clear the starting field to win

Controls:
  A/D, Left/Right  - Rotate
  W/Up             - Thrust
  Space/F          - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer rocks, no wave growth
  normal - Config defaults
  hard   - More rocks, faster ship
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play asteroids_classic
  asteroids play --difficulty hard
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
