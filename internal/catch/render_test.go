package catch

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func TestRendererLayout(t *testing.T) {
	s := NewState(DefaultConfig())
	s.AddEntity(Entity{ID: 1, X: 100, Y: 100, Radius: 12})

	// 50 columns map 10 units each; 20 play rows map 20 units each.
	dst := core.NewScreen(50, 21)
	NewRenderer().Draw(s.Snapshot(), dst)

	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", dst.Row(0))
	}
	if !strings.HasSuffix(strings.TrimRight(dst.Row(0), " "), "Lives: 3") {
		t.Errorf("HUD missing lives on the right: %q", dst.Row(0))
	}

	if dst.Get(10, 6) != BallChar {
		t.Errorf("ball should be at (10, 6), row 6 = %q", dst.Row(6))
	}

	paddleRow := 1 + 358/20
	for x := 20; x < 30; x++ {
		if dst.Get(x, paddleRow) != PaddleChar {
			t.Fatalf("paddle missing at (%d, %d), row = %q", x, paddleRow, dst.Row(paddleRow))
		}
	}
	if dst.Get(19, paddleRow) == PaddleChar || dst.Get(30, paddleRow) == PaddleChar {
		t.Errorf("paddle too wide, row = %q", dst.Row(paddleRow))
	}

	if dst.Get(0, 20) != FloorChar {
		t.Errorf("floor missing, row = %q", dst.Row(20))
	}
}

func TestRendererSkipsBallsAboveField(t *testing.T) {
	s := NewState(DefaultConfig())
	s.AddEntity(Entity{ID: 1, X: 250, Y: -12, Radius: 12})

	dst := core.NewScreen(50, 21)
	NewRenderer().Draw(s.Snapshot(), dst)

	if strings.ContainsRune(dst.String(), BallChar) {
		t.Error("a ball above the field should not be drawn over the HUD")
	}
}

func TestRendererSpriteIdentity(t *testing.T) {
	r := NewRenderer()
	dst := core.NewScreen(50, 21)

	snap := Snapshot{
		Width: 500, Height: 400, FloorY: 358, Lives: 3,
		Paddle:   NewPaddle(DefaultConfig()),
		Entities: []Entity{{ID: 1, X: 100, Y: 50, Radius: 12}, {ID: 2, X: 300, Y: 60, Radius: 12}},
	}
	r.Draw(snap, dst)

	c2, ok := r.ColorOf(2)
	if !ok {
		t.Fatal("ball 2 should have a sprite")
	}
	if r.Tracked() != 2 {
		t.Errorf("Tracked() = %d, expected 2", r.Tracked())
	}

	// Ball 1 is gone, ball 3 is new; ball 2 must keep its color.
	snap.Entities = []Entity{{ID: 2, X: 300, Y: 80, Radius: 12}, {ID: 3, X: 200, Y: 0, Radius: 12}}
	r.Draw(snap, dst)

	if got, _ := r.ColorOf(2); got != c2 {
		t.Errorf("ball 2 color changed from %v to %v", c2, got)
	}
	if _, ok := r.ColorOf(1); ok {
		t.Error("sprite for a removed ball should be pruned")
	}
	c3, ok := r.ColorOf(3)
	if !ok || c3 == c2 {
		t.Errorf("ball 3 should get its own color, got %v", c3)
	}
	if r.Tracked() != 2 {
		t.Errorf("Tracked() = %d, expected 2", r.Tracked())
	}
	if cell := dst.GetCell(30, 1+80/20); cell.Rune != BallChar || cell.Color != c2 {
		t.Errorf("ball 2 drawn as %+v", cell)
	}
}

func TestRendererOverlays(t *testing.T) {
	r := NewRenderer()
	dst := core.NewScreen(60, 20)

	snap := NewState(DefaultConfig()).Snapshot()
	snap.Paused = true
	r.Draw(snap, dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	snap.Paused = false
	snap.Phase = PhaseGameOver
	snap.Score = 17
	r.Draw(snap, dst)
	out := dst.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 17") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("previous frame should be cleared")
	}
}

func TestRendererTinyScreen(t *testing.T) {
	snap := NewState(DefaultConfig()).Snapshot()
	// Must not panic.
	NewRenderer().Draw(snap, core.NewScreen(1, 1))
	NewRenderer().Draw(snap, core.NewScreen(0, 0))
}
