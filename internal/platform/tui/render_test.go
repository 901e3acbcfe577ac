package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-dodger/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(2, 0, "LIVES: 3", core.ColorWhite)
	s.SetCell(5, 2, '*', core.ColorYellow)

	out := RenderScreen(s)

	if !strings.Contains(out, "LIVES: 3") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 3 rows, got %d newlines", n)
	}
}
