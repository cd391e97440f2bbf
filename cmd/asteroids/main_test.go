package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

func TestApplyGameFlagsRejectsBadConfig(t *testing.T) {
	t.Cleanup(func() {
		flagFPS, flagConfig, flagDifficulty = 60, "", ""
		asteroids.SetConfigPath("")
		asteroids.SetDifficultyPreset("")
	})
	flagFPS = 60

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if err := applyGameFlags(nil, nil); err == nil {
		t.Error("missing config file: expected error")
	}

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(broken, []byte("viewport: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = broken
	if err := applyGameFlags(nil, nil); err == nil {
		t.Error("unparsable config file: expected error")
	}

	flagConfig = ""
	flagDifficulty = "impossible"
	if err := applyGameFlags(nil, nil); err == nil {
		t.Error("unknown difficulty: expected error")
	}

	flagDifficulty = "easy"
	if err := applyGameFlags(nil, nil); err != nil {
		t.Errorf("defaults with easy preset: %v", err)
	}
}
