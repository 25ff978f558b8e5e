package core

import "testing"

func TestControllerLastPressWins(t *testing.T) {
	c := NewController()

	if c.CurrentIntent() != IntentNone {
		t.Fatalf("new controller intent = %v, expected None", c.CurrentIntent())
	}

	c.Press(IntentLeft)
	if c.CurrentIntent() != IntentLeft {
		t.Errorf("after Left press intent = %v", c.CurrentIntent())
	}

	c.Press(IntentRight)
	if c.CurrentIntent() != IntentRight {
		t.Errorf("Right press should override Left, got %v", c.CurrentIntent())
	}
}

func TestControllerRelease(t *testing.T) {
	tests := []struct {
		name   string
		events func(c *Controller)
		want   Intent
	}{
		{
			name: "release only key",
			events: func(c *Controller) {
				c.Press(IntentLeft)
				c.Release(IntentLeft)
			},
			want: IntentNone,
		},
		{
			name: "release active falls back to held",
			events: func(c *Controller) {
				c.Press(IntentLeft)
				c.Press(IntentRight)
				c.Release(IntentRight)
			},
			want: IntentLeft,
		},
		{
			name: "release inactive keeps active",
			events: func(c *Controller) {
				c.Press(IntentLeft)
				c.Press(IntentRight)
				c.Release(IntentLeft)
			},
			want: IntentRight,
		},
		{
			name: "release both",
			events: func(c *Controller) {
				c.Press(IntentLeft)
				c.Press(IntentRight)
				c.Release(IntentLeft)
				c.Release(IntentRight)
			},
			want: IntentNone,
		},
		{
			name: "release without press",
			events: func(c *Controller) {
				c.Release(IntentRight)
			},
			want: IntentNone,
		},
		{
			name: "press none is ignored",
			events: func(c *Controller) {
				c.Press(IntentRight)
				c.Press(IntentNone)
			},
			want: IntentRight,
		},
		{
			name: "reset",
			events: func(c *Controller) {
				c.Press(IntentLeft)
				c.Press(IntentRight)
				c.Reset()
			},
			want: IntentNone,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController()
			tc.events(c)
			if got := c.CurrentIntent(); got != tc.want {
				t.Errorf("CurrentIntent() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestIntentDir(t *testing.T) {
	if IntentLeft.Dir() != -1 || IntentRight.Dir() != 1 || IntentNone.Dir() != 0 {
		t.Error("Dir() should map Left/None/Right to -1/0/+1")
	}
}
