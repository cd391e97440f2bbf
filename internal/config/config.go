// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

// AsteroidsConfig contains all configuration for the asteroids game.
type AsteroidsConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Starship   StarshipConfig   `yaml:"starship"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Waves      WavesConfig      `yaml:"waves"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines the logical playfield, centered on the origin.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StarshipConfig defines starship handling. Per-tick values assume 60 ticks per second.
type StarshipConfig struct {
	Scale         float64 `yaml:"scale"`
	RotationSpeed float64 `yaml:"rotation_speed"` // Degrees per tick
	Acceleration  float64 `yaml:"acceleration"`
	Deceleration  float64 `yaml:"deceleration"` // Fraction of velocity lost per tick without thrust
	MaxVelocity   float64 `yaml:"max_velocity"`
}

// BulletConfig defines bullet parameters.
type BulletConfig struct {
	Scale    float64 `yaml:"scale"`
	Velocity float64 `yaml:"velocity"`
	Distance float64 `yaml:"distance"` // Maximum distance from the spawn point before the bullet expires
}

// AsteroidConfig defines asteroid parameters.
type AsteroidConfig struct {
	Velocity    float64 `yaml:"velocity"`
	BigScale    float64 `yaml:"big_scale"`
	MediumScale float64 `yaml:"medium_scale"`
	SmallScale  float64 `yaml:"small_scale"`
	Initial     int     `yaml:"initial"`
	SafeRadius  float64 `yaml:"safe_radius"` // Minimum spawn distance from the starship
}

// WavesConfig defines how new fields are spawned once the previous one is cleared.
type WavesConfig struct {
	Increment int `yaml:"increment"` // Extra Big asteroids per wave
	Max       int `yaml:"max"`       // Cap on Big asteroids in one wave
}

// ScoringConfig defines points per destroyed asteroid.
type ScoringConfig struct {
	Big    int `yaml:"big"`
	Medium int `yaml:"medium"`
	Small  int `yaml:"small"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to asteroid speed at max difficulty
	WaveBonus       int     `yaml:"wave_bonus"`       // Extra Big asteroids per wave at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
