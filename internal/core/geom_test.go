package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p, d     Point
		expected Point
	}{
		{"right", Point{5, 25}, Point{1, 0}, Point{6, 25}},
		{"left", Point{5, 25}, Point{-1, 0}, Point{4, 25}},
		{"down", Point{5, 25}, Point{0, 1}, Point{5, 26}},
		{"up", Point{5, 25}, Point{0, -1}, Point{5, 24}},
		{"zero", Point{3, 3}, Point{}, Point{3, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.d); got != tc.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tc.p, tc.d, got, tc.expected)
			}
		})
	}
}

func TestActionIsMovement(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionPlay, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		if got := tc.action.IsMovement(); got != tc.expected {
			t.Errorf("%v.IsMovement() = %v, expected %v", tc.action, got, tc.expected)
		}
	}
}
