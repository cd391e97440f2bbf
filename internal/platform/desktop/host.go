// Package desktop provides the Ebiten window host for the asteroids game.
// It draws from the entity feed instead of the character screen.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	background  = color.RGBA{R: 8, G: 8, B: 16, A: 255}
	shipColor   = color.RGBA{R: 240, G: 80, B: 80, A: 255}
	bulletColor = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	rockColors  = map[sim.Size]color.RGBA{
		sim.SizeBig:    {R: 150, G: 150, B: 150, A: 255},
		sim.SizeMedium: {R: 200, G: 200, B: 200, A: 255},
		sim.SizeSmall:  {R: 245, G: 245, B: 245, A: 255},
	}
)

// Options configures the window host.
type Options struct {
	Store  *storage.Store // Optional; runs are saved when set
	Logger *log.Logger    // Optional
	Player string
	Scale  float64 // Window size relative to the logical playfield
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game       registry.Game
	cfg        core.RuntimeConfig
	opts       Options
	keys       *controls
	frame      core.InputFrame
	state      core.GameState
	proj       projection
	views      []sim.EntityView
	ticks      int
	scoreSaved bool
}

// NewHost creates a window host and resets the game.
func NewHost(game registry.Game, cfg core.RuntimeConfig, opts Options) *Host {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.NominalTickRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	game.Reset(cfg)
	b := game.Viewport()
	return &Host{
		game:  game,
		cfg:   cfg,
		opts:  opts,
		keys:  newControls(),
		frame: core.NewInputFrame(),
		state: game.State(),
		proj:  newProjection(b, int(b.MaxX-b.MinX), int(b.MaxY-b.MinY)),
	}
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return h.step(ebiten.IsKeyPressed)
}

// step runs one tick with the given key state.
func (h *Host) step(down func(ebiten.Key) bool) error {
	h.frame.Clear()
	h.keys.fill(&h.frame, down)

	if h.frame.Has(core.ActionRestart) && h.state.GameOver {
		h.cfg.Seed = time.Now().UnixNano()
		h.game.Reset(h.cfg)
		h.state = h.game.State()
		h.ticks = 0
		h.scoreSaved = false
		return nil
	}

	h.state = h.game.Step(h.frame).State
	if !h.state.GameOver && !h.state.Paused {
		h.ticks++
	}

	if h.state.GameOver && !h.scoreSaved {
		h.scoreSaved = true
		if err := h.saveRun(); err != nil && h.opts.Logger != nil {
			h.opts.Logger.Warn("Could not save run", "mode", h.game.ID(), "error", err)
		}
	}
	return nil
}

func (h *Host) saveRun() error {
	if h.opts.Store == nil || h.state.Score == 0 {
		return nil
	}
	_, err := h.opts.Store.SaveRun(storage.Run{
		Mode:   h.game.ID(),
		Player: h.opts.Player,
		Score:  h.state.Score,
		Wave:   h.state.Wave,
		Won:    h.state.Won,
		Ticks:  h.ticks,
	})
	return err
}

// Draw renders the entity feed and the HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	h.views = h.game.Entities(h.views[:0])
	for _, v := range h.views {
		switch v.Kind {
		case sim.KindAsteroid:
			x, y := h.proj.point(v.Position)
			vector.StrokeCircle(screen, x, y, h.proj.length(v.Scale/2), 2, rockColors[v.Size], true)
		case sim.KindBullet:
			x, y := h.proj.point(v.Position)
			vector.DrawFilledCircle(screen, x, y, max(h.proj.length(v.Scale/2), 1.5), bulletColor, true)
		case sim.KindStarship:
			pts := hull(v)
			for i := range pts {
				x0, y0 := h.proj.point(pts[i])
				x1, y1 := h.proj.point(pts[(i+1)%len(pts)])
				vector.StrokeLine(screen, x0, y0, x1, y1, 2, shipColor, true)
			}
		}
	}

	ebitenutil.DebugPrint(screen, h.hud())
}

func (h *Host) hud() string {
	line := fmt.Sprintf("%s  score %d  wave %d", h.game.Title(), h.state.Score, h.state.Wave)
	switch {
	case h.state.GameOver && h.state.Won:
		line += "\nFIELD CLEARED  R restart  Esc quit"
	case h.state.GameOver:
		line += "\nGAME OVER  R restart  Esc quit"
	case h.state.Paused:
		line += "\nPAUSED  P resume"
	}
	return line
}

// Layout keeps the logical playfield resolution regardless of window size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(h.proj.w), int(h.proj.h)
}

// Run opens a window and plays game until the window closes or the player
// quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	h := NewHost(game, cfg, opts)

	ebiten.SetWindowSize(int(h.proj.w*h.opts.Scale), int(h.proj.h*h.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.cfg.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
