package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 12, 5)

	if r.Right() != 15 || r.Bottom() != 9 {
		t.Errorf("edges = (%d, %d), expected (15, 9)", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{"inside", 50, 6, 94, 50},
		{"below", -3, 6, 94, 6},
		{"above", 120, 6, 94, 94},
		{"on lower edge", 6, 6, 94, 6},
		{"on upper edge", 94, 6, 94, 94},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestBoundsContainsInclusive(t *testing.T) {
	b := Bounds{Left: 10, Right: 20, Top: 100, Bottom: 150}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 120, true},
		{"left edge", 10, 120, true},
		{"right edge", 20, 120, true},
		{"top edge", 15, 100, true},
		{"bottom edge", 15, 150, true},
		{"left of zone", 9.99, 120, false},
		{"right of zone", 20.01, 120, false},
		{"above zone", 15, 99.5, false},
		{"below zone", 15, 150.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if b.Width() != 10 || b.Height() != 50 {
		t.Errorf("Width/Height = %v/%v, expected 10/50", b.Width(), b.Height())
	}
}
