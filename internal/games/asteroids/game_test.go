package asteroids

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func newTestGame(mode Mode) *Game {
	g := New(mode).WithConfig(config.DefaultAsteroidsConfig())
	g.Reset(testRuntime())
	return g
}

// clearField despawns every asteroid and bullet, keeping the ship.
func clearField(g *Game) {
	es := g.world.Entities()
	for _, v := range g.world.Snapshot(nil) {
		if v.Kind != sim.KindStarship {
			es.Despawn(v.Handle)
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"asteroids", "asteroids_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestResetPopulates(t *testing.T) {
	g := newTestGame(ModeWaves)
	snap := g.Snapshot()

	if snap.Starships != 1 {
		t.Errorf("starships = %d, want 1", snap.Starships)
	}
	if snap.Asteroids != 6 {
		t.Errorf("asteroids = %d, want 6", snap.Asteroids)
	}
	if snap.Wave != 1 || snap.Score != 0 || snap.State != StatePlaying {
		t.Errorf("unexpected initial snapshot: %+v", snap)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(ModeWaves)
	g2 := newTestGame(ModeWaves)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i%40 < 15 {
			input.Set(core.ActionThrust)
		}
		if i%25 < 5 {
			input.Set(core.ActionRotateLeft)
		}
		switch i % 12 {
		case 0:
			input.Press(core.ActionFire)
		case 1:
			input.Release(core.ActionFire)
		}

		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || len(s1.Entities) != len(s2.Entities) {
		t.Fatalf("snapshots differ: %+v vs %+v", s1, s2)
	}
	for i := range s1.Entities {
		if s1.Entities[i] != s2.Entities[i] {
			t.Fatalf("entity %d differs: %+v vs %+v", i, s1.Entities[i], s2.Entities[i])
		}
	}
}

func TestScoringBySize(t *testing.T) {
	tests := []struct {
		size sim.Size
		want int
	}{
		{sim.SizeBig, 20},
		{sim.SizeMedium, 50},
		{sim.SizeSmall, 100},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			g := newTestGame(ModeWaves)
			clearField(g)
			es := g.world.Entities()
			es.SpawnAsteroid(core.V(300, 200), core.Vec2{}, tt.size)
			es.SpawnBullet(core.V(300, 200), core.Vec2{})

			g.Step(core.NewInputFrame())
			if g.score != tt.want {
				t.Errorf("score = %d, want %d", g.score, tt.want)
			}
		})
	}
}

func TestStarshipDestroyedEndsGame(t *testing.T) {
	g := newTestGame(ModeWaves)
	clearField(g)
	g.world.Entities().SpawnAsteroid(core.Vec2{}, core.Vec2{}, sim.SizeBig)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("expected loss, got %+v", res.State)
	}

	// Further steps do nothing
	tick := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != tick {
		t.Error("game advanced after game over")
	}
}

func TestClassicWinsWhenCleared(t *testing.T) {
	g := newTestGame(ModeClassic)
	clearField(g)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("expected win, got %+v", res.State)
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("state = %s, want win", g.Snapshot().State)
	}
}

func TestWavesSpawnNextField(t *testing.T) {
	g := newTestGame(ModeWaves)
	clearField(g)

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver {
		t.Fatal("waves mode should not end when the field is cleared")
	}
	if res.State.Wave != 2 {
		t.Errorf("wave = %d, want 2", res.State.Wave)
	}
	// initial 6 + increment 1
	if n := g.world.Count(sim.KindAsteroid); n != 7 {
		t.Errorf("asteroids = %d, want 7", n)
	}
}

func TestWaveSizeCapped(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Difficulty.Enabled = false
	g := New(ModeWaves).WithConfig(cfg)
	g.Reset(testRuntime())

	g.wave = 50
	if n := g.waveSize(); n != cfg.Waves.Max {
		t.Errorf("waveSize = %d, want cap %d", n, cfg.Waves.Max)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(ModeWaves)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.world.Tick()
	g.Step(core.NewInputFrame())
	if g.world.Tick() != before {
		t.Error("world advanced while paused")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestFireSpawnsBullet(t *testing.T) {
	g := newTestGame(ModeWaves)

	in := core.NewInputFrame()
	in.Press(core.ActionFire)
	g.Step(in)

	var fired int
	for _, ev := range g.Events() {
		if ev.Kind == sim.EventBulletFired {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(ModeWaves)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	// Ship at the origin faces up and sits in the middle of the playfield.
	x, y := newViewport(g.Viewport(), screen).cell(core.Vec2{})
	if c := screen.GetCell(x, y); c.Rune != '↑' || c.Color != core.ColorBrightRed {
		t.Errorf("ship cell = %q/%d, want ↑ in bright red", c.Rune, c.Color)
	}

	var rocks int
	for _, line := range strings.Split(screen.String(), "\n")[1:] {
		rocks += strings.Count(line, string(BigChar))
	}
	if rocks == 0 {
		t.Error("expected asteroid outlines on screen")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(ModeWaves)
	g.gameOver = true
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("expected game over message")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		theta float64
		want  rune
	}{
		{0, '↑'},
		{1.5708, '←'},
		{-1.5708, '→'},
		{3.1416, '↓'},
		{0.7854, '↖'},
		{-0.7854, '↗'},
		{6.2832, '↑'},
	}
	for _, tt := range tests {
		if got := ShipGlyph(tt.theta); got != tt.want {
			t.Errorf("ShipGlyph(%v) = %q, want %q", tt.theta, got, tt.want)
		}
	}
}

func TestLoadConfigReportsBadFile(t *testing.T) {
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	dir := t.TempDir()
	SetConfigPath(filepath.Join(dir, "missing.yaml"))
	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() with a missing file: expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("bullet:\n  velocity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(bad)
	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() with an invalid file: expected error")
	}

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("asteroid:\n  initial: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(good)
	SetDifficultyPreset("hard")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Asteroid.Initial != 6 {
		t.Errorf("initial asteroids = %d, want 4 from file + 2 for hard", cfg.Asteroid.Initial)
	}
}
