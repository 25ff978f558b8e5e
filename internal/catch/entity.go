package catch

// EntityID identifies a falling ball for its whole life.
// IDs increase monotonically per Spawner and are never reused.
type EntityID uint64

// Entity is a falling ball. Y grows downward; (X, Y) is the center.
type Entity struct {
	ID     EntityID
	X, Y   float64
	Radius float64
}

// Top returns the y-coordinate of the ball's upper edge.
func (e Entity) Top() float64 {
	return e.Y - e.Radius
}

// Bottom returns the y-coordinate of the ball's leading edge.
func (e Entity) Bottom() float64 {
	return e.Y + e.Radius
}
