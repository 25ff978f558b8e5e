package core

// Intent is the persistent horizontal movement request for the paddle.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Dir returns -1, 0 or +1 for Left, None and Right.
func (i Intent) Dir() float64 {
	switch i {
	case IntentLeft:
		return -1
	case IntentRight:
		return 1
	default:
		return 0
	}
}

// Action represents a semantic command, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left, A, H - move paddle left
	ActionRight             // Right, D, L - move paddle right
	ActionStop              // Down, S, Space - stop the paddle
	ActionPause             // P, Escape - pause/unpause
	ActionRestart           // R - restart after game over
	ActionScreenshot        // Ctrl+S - dump the screen to a file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Controller turns directional press/release events into a single intent.
//
// A press makes that direction active, overriding the other one. Releasing the
// active direction falls back to the other direction if it is still held,
// otherwise to IntentNone. Releasing a direction that is not active leaves the
// intent unchanged.
type Controller struct {
	leftHeld  bool
	rightHeld bool
	intent    Intent
}

// NewController creates a controller with nothing held.
func NewController() *Controller {
	return &Controller{}
}

// Press records a key press for the given direction.
func (c *Controller) Press(dir Intent) {
	switch dir {
	case IntentLeft:
		c.leftHeld = true
	case IntentRight:
		c.rightHeld = true
	default:
		return
	}
	c.intent = dir
}

// Release records a key release for the given direction.
func (c *Controller) Release(dir Intent) {
	switch dir {
	case IntentLeft:
		c.leftHeld = false
		if c.intent == IntentLeft {
			c.intent = IntentNone
			if c.rightHeld {
				c.intent = IntentRight
			}
		}
	case IntentRight:
		c.rightHeld = false
		if c.intent == IntentRight {
			c.intent = IntentNone
			if c.leftHeld {
				c.intent = IntentLeft
			}
		}
	}
}

// Reset releases both directions at once.
func (c *Controller) Reset() {
	*c = Controller{}
}

// CurrentIntent returns the movement intent derived from the latest events.
func (c *Controller) CurrentIntent() Intent {
	return c.intent
}
