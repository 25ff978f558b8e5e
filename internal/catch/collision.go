package catch

// Outcome is the per-tick classification of a ball.
type Outcome int

const (
	Falling Outcome = iota // Still in play
	Caught                 // Landed on the paddle
	Missed                 // Left the bottom of the play area
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Caught:
		return "caught"
	case Missed:
		return "missed"
	default:
		return "falling"
	}
}

// Classify decides what happens to e this tick.
//
// A ball is caught when its bottom edge has reached floorY and its center lies
// within the paddle span (edges included). Only the center is tested, not the
// full circle. A ball that passes the paddle row outside the span keeps falling
// and is missed once its top edge is below playHeight. The catch test runs first,
// so a ball on the paddle row inside the span is never missed.
func Classify(e Entity, p Paddle, floorY, playHeight float64) Outcome {
	if e.Bottom() >= floorY && p.Span().Contains(e.X) {
		return Caught
	}
	if e.Top() > playHeight {
		return Missed
	}
	return Falling
}
