package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "coin")
	s.SetColored(5, 0, 'o', core.ColorGold)
	s.DrawTextColored(0, 1, "rush", core.ColorSky)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rows = %d, want 2", len(lines))
	}
	for _, want := range []string{"coin", "o", "rush"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSky; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRenderProfiles(t *testing.T) {
	cfg := config.DefaultCoinRushConfig()
	rows := ProfileRows(cfg)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][0] != "EASY" || rows[2][0] != "HARD" {
		t.Errorf("row order = %s..%s", rows[0][0], rows[2][0])
	}
	if rows[1][4] != "4-7s" {
		t.Errorf("NORMAL item spawn = %q, want 4-7s", rows[1][4])
	}

	out := RenderProfiles(cfg)
	for _, want := range []string{"EASY", "NORMAL", "HARD", "every 800 points", "max 30"} {
		if !strings.Contains(out, want) {
			t.Errorf("profiles output missing %q", want)
		}
	}
}
