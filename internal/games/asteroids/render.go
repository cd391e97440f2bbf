package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

// Visual characters for rendering
const (
	BulletChar    = '•'
	BigChar       = '#'
	MediumChar    = '%'
	SmallChar     = '*'
	BorderChar    = '─'
	hudRows       = 1
	outlineStride = 6.0 // Logical units between outline samples
)

// shipGlyphs are indexed by heading octant, counter-clockwise from up.
var shipGlyphs = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// viewport maps logical coordinates onto screen cells. Logical y grows
// upward; screen rows grow downward and start below the HUD.
type viewport struct {
	b    sim.Bounds
	w, h int // Playfield size in cells
}

func newViewport(b sim.Bounds, dst *core.Screen) viewport {
	return viewport{b: b, w: dst.Width(), h: dst.Height() - hudRows}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	x := (p.X - v.b.MinX) / (v.b.MaxX - v.b.MinX) * float64(v.w)
	y := (v.b.MaxY - p.Y) / (v.b.MaxY - v.b.MinY) * float64(v.h)
	return int(math.Floor(x)), hudRows + int(math.Floor(y))
}

func (v viewport) set(dst *core.Screen, p core.Vec2, r rune, c core.Color) {
	x, y := v.cell(p)
	if x < 0 || x >= v.w || y < hudRows || y >= hudRows+v.h {
		return
	}
	dst.SetCell(x, y, r, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || dst.Height() <= hudRows {
		return
	}

	vp := newViewport(g.Viewport(), dst)
	g.views = g.world.Snapshot(g.views[:0])

	// Asteroids first so ships and bullets stay visible on top
	for _, e := range g.views {
		if e.Kind == sim.KindAsteroid {
			drawAsteroid(dst, vp, e)
		}
	}
	for _, e := range g.views {
		switch e.Kind {
		case sim.KindBullet:
			vp.set(dst, e.Position, BulletChar, core.ColorBrightYellow)
		case sim.KindStarship:
			vp.set(dst, e.Position, ShipGlyph(e.Rotation), core.ColorBrightRed)
		}
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		title := "GAME OVER"
		if g.won {
			title = "FIELD CLEARED"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawAsteroid plots the asteroid outline circle.
func drawAsteroid(dst *core.Screen, vp viewport, e sim.EntityView) {
	glyph, color := asteroidStyle(e.Size)
	r := e.Scale / 2
	steps := max(8, int(2*math.Pi*r/outlineStride))
	for i := range steps {
		p := e.Position.Add(core.FromAngle(2 * math.Pi * float64(i) / float64(steps)).Scale(r))
		vp.set(dst, p, glyph, color)
	}
}

func asteroidStyle(s sim.Size) (rune, core.Color) {
	switch s {
	case sim.SizeBig:
		return BigChar, core.ColorGray
	case sim.SizeMedium:
		return MediumChar, core.ColorWhite
	default:
		return SmallChar, core.ColorBrightWhite
	}
}

// ShipGlyph returns the arrow closest to the heading of a ship at rotation theta.
func ShipGlyph(theta float64) rune {
	octant := int(math.Round(theta/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Wave: %d  Rocks: %d ", g.score, g.wave, g.world.Count(sim.KindAsteroid))
	for x := range dst.Width() {
		dst.SetCell(x, 0, BorderChar, core.ColorGray)
	}
	dst.DrawTextColor(2, 0, hud, core.ColorBrightCyan)
}

// drawCenteredMessage draws a two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, " "+title+" ", core.ColorBrightYellow)
	dst.DrawTextCentered(mid+1, " "+subtitle+" ", core.ColorWhite)
}
