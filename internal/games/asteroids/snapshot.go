package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/sim"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      int
	Mode      Mode
	Score     int
	Wave      int
	Starships int
	Asteroids int
	Bullets   int
	State     GameStateType
	Entities  []sim.EntityView
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tickCount,
		Mode:  g.mode,
		Score: g.score,
		Wave:  g.wave,
		State: state,
	}
	if g.world != nil {
		snap.Starships = g.world.Count(sim.KindStarship)
		snap.Asteroids = g.world.Count(sim.KindAsteroid)
		snap.Bullets = g.world.Count(sim.KindBullet)
		snap.Entities = g.world.Snapshot(nil)
	}
	return snap
}
