package catch

import (
	"fmt"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '█'
	FloorChar  = '─'
)

// hudRows is the number of rows reserved above the play area.
const hudRows = 1

// sprite is the drawable handle for one ball.
type sprite struct {
	glyph rune
	color core.Color
}

// Renderer draws snapshots onto a screen buffer. It scales the world onto
// whatever grid it is given and remembers a sprite per ball, so a ball keeps its
// color for its whole life. Renderer never touches game state.
type Renderer struct {
	sprites map[EntityID]sprite
	issued  int
}

// NewRenderer creates a renderer with an empty sprite arena.
func NewRenderer() *Renderer {
	return &Renderer{sprites: make(map[EntityID]sprite)}
}

// Draw renders snap into dst, replacing its previous contents.
func (r *Renderer) Draw(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	r.sync(snap.Entities)

	w := dst.Width()
	rows := dst.Height() - hudRows
	if w <= 0 || rows <= 0 {
		return
	}

	col := func(x float64) int { return core.Scale(x, snap.Width, w) }
	row := func(y float64) int { return hudRows + core.Scale(y, snap.Height, rows) }

	// Floor
	dst.DrawHLine(0, dst.Height()-1, w, FloorChar, core.ColorGray)

	// Paddle
	left := col(snap.Paddle.Left())
	right := max(col(snap.Paddle.Right()), left+1)
	dst.DrawHLine(left, row(snap.FloorY), right-left, PaddleChar, core.ColorWhite)

	// Balls
	for _, e := range snap.Entities {
		y := row(e.Y)
		if y < hudRows {
			continue // Still above the field
		}
		sp := r.sprites[e.ID]
		dst.SetColor(col(e.X), y, sp.glyph, sp.color)
	}

	r.drawHUD(snap, dst)

	switch {
	case snap.Phase == PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to play again", snap.Score)
		r.drawCenteredBox(dst, "GAME OVER", subtitle)
	case snap.Paused:
		r.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// sync adds sprites for new balls and prunes those no longer live.
func (r *Renderer) sync(entities []Entity) {
	live := make(map[EntityID]struct{}, len(entities))
	for _, e := range entities {
		live[e.ID] = struct{}{}
		if _, ok := r.sprites[e.ID]; !ok {
			r.sprites[e.ID] = sprite{
				glyph: BallChar,
				color: core.BallPalette[r.issued%len(core.BallPalette)],
			}
			r.issued++
		}
	}
	for id := range r.sprites {
		if _, ok := live[id]; !ok {
			delete(r.sprites, id)
		}
	}
}

// drawHUD draws score and lives on the top row.
func (r *Renderer) drawHUD(snap Snapshot, dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	color := core.ColorGreen
	if snap.Lives <= 1 {
		color = core.ColorRed
	}
	dst.DrawTextColor(dst.Width()-len(lives)-1, 0, lives, color)
}

// drawCenteredBox draws a centered message box.
func (r *Renderer) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGray)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Tracked returns the number of balls with a live sprite.
func (r *Renderer) Tracked() int {
	return len(r.sprites)
}

// ColorOf returns the color assigned to a live ball.
func (r *Renderer) ColorOf(id EntityID) (core.Color, bool) {
	sp, ok := r.sprites[id]
	return sp.color, ok
}
