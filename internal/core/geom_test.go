package core

import "testing"

func TestSpanContainsIsClosed(t *testing.T) {
	s := Span{Min: 200, Max: 300}

	tests := []struct {
		x        float64
		expected bool
	}{
		{199.999, false},
		{200, true},
		{250, true},
		{300, true},
		{300.001, false},
	}

	for _, tc := range tests {
		if got := s.Contains(tc.x); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := Clamp(-5.5, 0.0, 10.0); got != 0 {
		t.Errorf("Clamp(-5.5, 0, 10) = %v, expected 0", got)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		v, ext float64
		cells  int
		want   int
	}{
		{"origin", 0, 500, 80, 0},
		{"middle", 250, 500, 80, 40},
		{"just below edge", 499.9, 500, 80, 79},
		{"at edge", 500, 500, 80, 80},
		{"negative floors", -1, 500, 80, -1},
		{"empty grid", 100, 500, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Scale(tc.v, tc.ext, tc.cells); got != tc.want {
				t.Errorf("Scale(%v, %v, %d) = %d, expected %d", tc.v, tc.ext, tc.cells, got, tc.want)
			}
		})
	}
}
