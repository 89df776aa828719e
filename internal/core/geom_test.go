package core

import "testing"

func TestFieldContains(t *testing.T) {
	f := Field{Cell: 30, Size: 600}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"last cell", Point{570, 570}, true},
		{"right edge (exclusive)", Point{600, 300}, false},
		{"bottom edge (exclusive)", Point{300, 600}, false},
		{"negative x", Point{-30, 0}, false},
		{"negative y", Point{0, -30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestFieldWrap(t *testing.T) {
	f := Field{Cell: 30, Size: 600}

	tests := []struct {
		name     string
		in, want Point
	}{
		{"off right edge", Point{600, 90}, Point{0, 90}},
		{"off left edge", Point{-30, 90}, Point{570, 90}},
		{"off top edge", Point{90, -30}, Point{90, 570}},
		{"off bottom edge", Point{90, 600}, Point{90, 0}},
		{"inside untouched", Point{120, 150}, Point{120, 150}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Wrap(tc.in); got != tc.want {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFieldCols(t *testing.T) {
	if c := (Field{Cell: 30, Size: 600}).Cols(); c != 20 {
		t.Errorf("Cols() = %d, expected 20", c)
	}
	if c := (Field{}).Cols(); c != 0 {
		t.Errorf("zero field Cols() = %d, expected 0", c)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 300, Y: 300}.Add(Vec{X: 30})
	if p != (Point{X: 330, Y: 300}) {
		t.Errorf("Add = %v, expected (330,300)", p)
	}
	if !(Vec{}).IsZero() {
		t.Error("zero Vec should report IsZero")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
