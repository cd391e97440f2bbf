package config

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Starship: StarshipConfig{
			Scale:         50,
			RotationSpeed: 5,
			Acceleration:  0.2,
			Deceleration:  0.01,
			MaxVelocity:   10,
		},
		Bullet: BulletConfig{
			Scale:    5,
			Velocity: 6,
			Distance: 720 * 0.8,
		},
		Asteroid: AsteroidConfig{
			Velocity:    2,
			BigScale:    100,
			MediumScale: 65,
			SmallScale:  30,
			Initial:     6,
			SafeRadius:  150,
		},
		Waves: WavesConfig{
			Increment: 1,
			Max:       12,
		},
		Scoring: ScoringConfig{
			Big:    20,
			Medium: 50,
			Small:  100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				WaveBonus:       2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids", "asteroids_classic":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}

// Params converts the configuration into simulation tuning.
func (c AsteroidsConfig) Params() sim.Params {
	return sim.Params{
		ViewportW:        c.Viewport.Width,
		ViewportH:        c.Viewport.Height,
		AsteroidVelocity: c.Asteroid.Velocity,
		BulletVelocity:   c.Bullet.Velocity,
		BulletDistance:   c.Bullet.Distance,
		RotationSpeed:    c.Starship.RotationSpeed * math.Pi / 180,
		Acceleration:     c.Starship.Acceleration,
		Deceleration:     c.Starship.Deceleration,
		MaxVelocity:      c.Starship.MaxVelocity,
		StarshipScale:    c.Starship.Scale,
		BulletScale:      c.Bullet.Scale,
		AsteroidScales:   [3]float64{c.Asteroid.BigScale, c.Asteroid.MediumScale, c.Asteroid.SmallScale},
		InitialAsteroids: c.Asteroid.Initial,
		SafeRadius:       c.Asteroid.SafeRadius,
	}
}

// Points returns the score for destroying an asteroid of the given size.
func (c ScoringConfig) Points(size sim.Size) int {
	switch size {
	case sim.SizeBig:
		return c.Big
	case sim.SizeMedium:
		return c.Medium
	case sim.SizeSmall:
		return c.Small
	default:
		return 0
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c AsteroidsConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Waves.Increment < 0 || c.Waves.Max < 0 {
		return fmt.Errorf("config: waves increment and max must not be negative")
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}
