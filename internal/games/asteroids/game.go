// Package asteroids implements the asteroids game modes on top of the
// simulation core: scoring, waves, pause and game over, plus a character
// rendering of the playfield.
package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// Mode selects what happens when the asteroid field is cleared.
type Mode string

const (
	ModeWaves   Mode = "waves"   // A larger field spawns; play continues until the ship is hit
	ModeClassic Mode = "classic" // Clearing the field wins the run
)

// Game implements registry.Game for one asteroids mode.
type Game struct {
	mode       Mode
	world      *sim.World
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	override   *config.AsteroidsConfig // Used instead of the loader when set
	difficulty *config.DifficultyManager
	dt         float64 // Nominal ticks per host tick

	score     int
	wave      int
	tickCount int
	gameOver  bool
	won       bool
	paused    bool

	events []sim.Event // Events of the last step
	views  []sim.EntityView
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the configured difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// LoadConfig loads the configuration selected with SetConfigPath and applies
// the difficulty preset. Reset falls back to defaults when it fails, so hosts
// call this first to report a bad config file.
func LoadConfig() (config.AsteroidsConfig, error) {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// WithConfig makes the game use cfg instead of loading configuration on Reset.
func (g *Game) WithConfig(cfg config.AsteroidsConfig) *Game {
	g.override = &cfg
	return g
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "asteroids_classic"
	}
	return "asteroids"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Asteroids (Classic)"
	}
	return "Asteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.TickScale()

	var cfg config.AsteroidsConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := LoadConfig()
		if err != nil {
			loaded = config.DefaultAsteroidsConfig()
		}
		cfg = loaded
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = sim.NewWorld(cfg.Params(), g.rng)
	g.world.Populate()

	g.score = 0
	g.wave = 1
	g.tickCount = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.events = g.events[:0]
}

// Step advances the game by one host tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if !g.paused {
			g.world.ResetControls()
		}
	}

	if g.paused {
		g.events = g.events[:0]
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.events = append(g.events[:0], g.world.Step(sim.InputFromFrame(in), g.dt)...)

	for _, ev := range g.events {
		switch ev.Kind {
		case sim.EventAsteroidDestroyed:
			g.score += g.cfg.Scoring.Points(ev.Size)
		case sim.EventStarshipDestroyed:
			g.gameOver = true
		}
	}

	if !g.gameOver && g.world.Count(sim.KindAsteroid) == 0 {
		g.fieldCleared()
	}

	return core.StepResult{State: g.State()}
}

// fieldCleared ends a classic run or spawns the next wave.
func (g *Game) fieldCleared() {
	if g.mode == ModeClassic {
		g.won = true
		g.gameOver = true
		return
	}
	g.wave++
	g.world.SpawnField(g.waveSize(), g.waveSpeed())
}

// waveSize returns the number of Big asteroids in the current wave.
func (g *Game) waveSize() int {
	base := g.cfg.Asteroid.Initial + (g.wave-1)*g.cfg.Waves.Increment
	return g.difficulty.WaveSize(base, g.cfg.Waves.Max, g.score, g.tickCount)
}

// waveSpeed returns the speed of freshly spawned Big asteroids.
func (g *Game) waveSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Asteroid.Velocity, g.score, g.tickCount)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     g.wave,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Events returns the simulation events of the last step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Entities appends the render feed of the world to dst.
func (g *Game) Entities(dst []sim.EntityView) []sim.EntityView {
	if g.world == nil {
		return dst
	}
	return g.world.Snapshot(dst)
}

// Viewport returns the logical playfield bounds.
func (g *Game) Viewport() sim.Bounds {
	return g.cfg.Params().Bounds()
}

// World exposes the underlying simulation, mainly for tests and tools.
func (g *Game) World() *sim.World {
	return g.world
}

// Register both modes with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New(ModeWaves)
	})
	registry.Register("asteroids_classic", func() registry.Game {
		return New(ModeClassic)
	})
}
