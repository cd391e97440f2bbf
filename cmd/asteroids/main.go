// asteroids plays the Asteroids simulation in the terminal, in a desktop
// window, or over SSH.
//
// Usage:
//
//	asteroids list              - List available modes
//	asteroids play [mode]       - Play a mode in the terminal
//	asteroids window [mode]     - Play a mode in a desktop window
//	asteroids menu              - Start menu to pick modes interactively
//	asteroids serve             - Start SSH server for remote play
//	asteroids scores [mode]     - Show high scores for a mode
//	asteroids bench             - Run scripted headless games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.asteroids/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

const defaultMode = "asteroids"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - fly, shoot and split rocks in your terminal",
	Long: `Asteroids is a wrap-around space shooter that runs in a terminal,
in a desktop window, or as an SSH service.

Available commands:
  list     - Show all available modes
  play     - Play a mode in the terminal
  window   - Play a mode in a desktop window
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  bench    - Run scripted headless games

Examples:
  asteroids play
  asteroids play asteroids_classic --difficulty hard
  asteroids window --scale 0.75
  asteroids serve --ssh :2222
  asteroids bench --runs 20 --profile cpu`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.NominalTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(benchCmd)
}

// applyGameFlags hands the config flags to the game package before any
// game is created and fails on a config file that does not load.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)
	_, err := asteroids.LoadConfig()
	return err
}

// modeArg returns the mode named in args, or the default mode.
func modeArg(args []string) (string, error) {
	mode := defaultMode
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q, run 'asteroids list' to see available modes", mode)
	}
	return mode, nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
