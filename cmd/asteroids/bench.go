package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagProfile  string
	flagSave     bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [mode]",
	Short: "Run scripted headless games",
	Long: `Play a number of games with a scripted pilot and no display, then
report scores and simulation throughput.

Run i uses seed --seed+i, so a fixed --seed gives repeatable results.

Examples:
  asteroids bench
  asteroids bench asteroids_classic --runs 50 --seed 1
  asteroids bench --profile cpu
  asteroids bench --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of games to play")
	benchCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 36000, "Tick limit per game")
	benchCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu or mem")
	benchCmd.Flags().BoolVar(&flagSave, "save", false, "Save runs to the scores database as player \"bench\"")
}

// benchResult summarizes one scripted game.
type benchResult struct {
	Seed    int64
	Score   int
	Wave    int
	Won     bool
	Ticks   int
	Elapsed time.Duration
}

func runBench(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	if flagRuns <= 0 || flagMaxTicks <= 0 {
		return fmt.Errorf("--runs and --max-ticks must be positive")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bench",
	})

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q (want cpu or mem)", flagProfile)
	}

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var (
		totalTicks   int
		totalElapsed time.Duration
		best         benchResult
	)
	for i := range flagRuns {
		game, err := registry.Create(mode)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		cfg := core.DefaultConfig()
		cfg.TickRate = flagFPS
		cfg.Seed = seed + int64(i)
		res := playScripted(game, cfg, flagMaxTicks)

		logger.Info("run finished",
			"run", i+1,
			"seed", res.Seed,
			"score", res.Score,
			"wave", res.Wave,
			"won", res.Won,
			"ticks", res.Ticks,
			"elapsed", res.Elapsed,
		)

		if store != nil && res.Score > 0 {
			if _, err := store.SaveRun(storage.Run{
				Mode:   mode,
				Player: "bench",
				Score:  res.Score,
				Wave:   res.Wave,
				Won:    res.Won,
				Ticks:  res.Ticks,
			}); err != nil {
				logger.Warn("could not save run", "run", i+1, "error", err)
			}
		}

		totalTicks += res.Ticks
		totalElapsed += res.Elapsed
		if res.Score > best.Score {
			best = res
		}
	}

	rate := 0.0
	if totalElapsed > 0 {
		rate = float64(totalTicks) / totalElapsed.Seconds()
	}
	logger.Info("bench complete",
		"mode", mode,
		"runs", flagRuns,
		"ticks", totalTicks,
		"ticks_per_sec", fmt.Sprintf("%.0f", rate),
		"best_score", best.Score,
		"best_seed", best.Seed,
	)
	return nil
}

// playScripted plays one game with the scripted pilot until it ends or
// maxTicks have been stepped.
func playScripted(game registry.Game, cfg core.RuntimeConfig, maxTicks int) benchResult {
	start := time.Now()
	game.Reset(cfg)

	frame := core.NewInputFrame()
	var state core.GameState
	ticks := 0
	for ticks < maxTicks && !state.GameOver {
		frame.Clear()
		pilotFrame(ticks, &frame)
		state = game.Step(frame).State
		ticks++
	}

	return benchResult{
		Seed:    cfg.Seed,
		Score:   state.Score,
		Wave:    state.Wave,
		Won:     state.Won,
		Ticks:   ticks,
		Elapsed: time.Since(start),
	}
}

// Pilot timing, in ticks.
const (
	pilotFirePeriod   = 12
	pilotFireHold     = 4
	pilotTurnPeriod   = 90
	pilotThrustPeriod = 240
	pilotThrustBurst  = 20
)

// pilotFrame writes the scripted input for tick into frame: a slow sweep
// that reverses direction, steady fire and short thrust bursts.
func pilotFrame(tick int, frame *core.InputFrame) {
	if (tick/pilotTurnPeriod)%2 == 0 {
		frame.Set(core.ActionRotateLeft)
	} else {
		frame.Set(core.ActionRotateRight)
	}

	if tick%pilotThrustPeriod < pilotThrustBurst {
		frame.Set(core.ActionThrust)
	}

	switch tick % pilotFirePeriod {
	case 0:
		frame.Press(core.ActionFire)
	case pilotFireHold:
		frame.Release(core.ActionFire)
	}
}
