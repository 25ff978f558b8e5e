package loop

import "github.com/vovakirdan/tui-catch/internal/core"

// Message is anything the driver can be asked to process.
type Message interface {
	message()
}

// TickMsg advances the game by one tick and draws a frame.
type TickMsg struct{}

func (TickMsg) message() {}

// SpawnMsg lets one spawn interval elapse. Gen identifies the timer that sent it.
type SpawnMsg struct {
	Gen uint64
}

func (SpawnMsg) message() {}

// PressMsg reports a direction key going down (or repeating).
type PressMsg struct {
	Dir core.Intent
}

func (PressMsg) message() {}

// ReleaseMsg reports a direction key going up.
type ReleaseMsg struct {
	Dir core.Intent
}

func (ReleaseMsg) message() {}

// StopMsg clears any held direction.
type StopMsg struct{}

func (StopMsg) message() {}

// RestartMsg asks for a new game. It is ignored unless the game is over.
type RestartMsg struct{}

func (RestartMsg) message() {}

// PauseMsg toggles pause. It is ignored once the game is over.
type PauseMsg struct{}

func (PauseMsg) message() {}

// redrawMsg draws the current state without changing it.
type redrawMsg struct{}

func (redrawMsg) message() {}
