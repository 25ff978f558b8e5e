package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.DrawTextColor(4, 0, "ef", core.ColorGreen)
	s.DrawTextColor(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "abcd") {
		t.Errorf("same-colored cells should share a run: %q", lines[0])
	}
	if !strings.Contains(lines[0], "ef") {
		t.Errorf("line 0 missing text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 missing text: %q", lines[1])
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen of empty screen = %q, want empty", out)
	}
}
