package main

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

func TestPilotFrame(t *testing.T) {
	presses, releases := 0, 0
	for tick := range 120 {
		frame := core.NewInputFrame()
		pilotFrame(tick, &frame)

		if frame.Has(core.ActionRotateLeft) == frame.Has(core.ActionRotateRight) {
			t.Fatalf("tick %d: exactly one rotation expected", tick)
		}
		for _, ev := range frame.Events {
			if ev.Pressed {
				presses++
			} else {
				releases++
			}
		}
	}
	if presses != 10 || releases != 10 {
		t.Errorf("presses=%d releases=%d, want 10 each", presses, releases)
	}

	frame := core.NewInputFrame()
	pilotFrame(pilotTurnPeriod, &frame)
	if !frame.Has(core.ActionRotateRight) {
		t.Error("pilot should reverse after one turn period")
	}
}

func TestPlayScriptedDeterministic(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42

	a := playScripted(asteroids.New(asteroids.ModeWaves), cfg, 600)
	b := playScripted(asteroids.New(asteroids.ModeWaves), cfg, 600)

	if a.Score != b.Score || a.Ticks != b.Ticks || a.Wave != b.Wave {
		t.Errorf("same seed gave different runs: %+v vs %+v", a, b)
	}
	if a.Ticks == 0 || a.Ticks > 600 {
		t.Errorf("ticks = %d, want 1..600", a.Ticks)
	}
}
