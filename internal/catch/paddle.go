package catch

import "github.com/vovakirdan/tui-catch/internal/core"

// Paddle is the player's horizontal bar. Only CenterX changes during play.
type Paddle struct {
	CenterX      float64
	Width        float64
	Height       float64
	BottomOffset float64
}

// NewPaddle returns a paddle centered in the play area.
func NewPaddle(cfg Config) Paddle {
	return Paddle{
		CenterX:      cfg.Width / 2,
		Width:        cfg.PaddleWidth,
		Height:       cfg.PaddleHeight,
		BottomOffset: cfg.BottomOffset,
	}
}

// Left returns the x-coordinate of the left edge.
func (p Paddle) Left() float64 {
	return p.CenterX - p.Width/2
}

// Right returns the x-coordinate of the right edge.
func (p Paddle) Right() float64 {
	return p.CenterX + p.Width/2
}

// Span returns the closed horizontal extent used for catching.
func (p Paddle) Span() core.Span {
	return core.Span{Min: p.Left(), Max: p.Right()}
}

// Top returns the y-coordinate of the top edge for a play area of the given height.
func (p Paddle) Top(playHeight float64) float64 {
	return playHeight - p.BottomOffset - p.Height
}

// Advance moves the paddle by speed in the intent's direction and pulls it back
// inside [0, playWidth] by the smallest correction needed.
func (p Paddle) Advance(intent core.Intent, speed, playWidth float64) Paddle {
	half := p.Width / 2
	p.CenterX = core.Clamp(p.CenterX+intent.Dir()*speed, half, playWidth-half)
	return p
}
