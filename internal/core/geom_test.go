package core

import "testing"

func TestCellAdd(t *testing.T) {
	origin := Cell{Row: 5, Col: 5}

	tests := []struct {
		heading  Heading
		expected Cell
	}{
		{HeadingUp, Cell{Row: 4, Col: 5}},
		{HeadingDown, Cell{Row: 6, Col: 5}},
		{HeadingLeft, Cell{Row: 5, Col: 4}},
		{HeadingRight, Cell{Row: 5, Col: 6}},
	}

	for _, tc := range tests {
		t.Run(tc.heading.String(), func(t *testing.T) {
			result := origin.Add(tc.heading)
			if result != tc.expected {
				t.Errorf("Add(%v) = %v, expected %v", tc.heading, result, tc.expected)
			}
		})
	}
}

func TestHeadingReverse(t *testing.T) {
	for _, h := range Headings {
		r := h.Reverse()
		if r == h {
			t.Errorf("Reverse(%v) returned itself", h)
		}
		if r.Reverse() != h {
			t.Errorf("Reverse(Reverse(%v)) = %v", h, r.Reverse())
		}
		// Stepping forward then back must return to the start
		c := Cell{Row: 3, Col: 3}
		if c.Add(h).Add(r) != c {
			t.Errorf("step %v then %v did not return to %v", h, r, c)
		}
	}
}

func TestHeadingAxis(t *testing.T) {
	tests := []struct {
		heading  Heading
		vertical bool
	}{
		{HeadingUp, true},
		{HeadingDown, true},
		{HeadingLeft, false},
		{HeadingRight, false},
	}

	for _, tc := range tests {
		if tc.heading.Vertical() != tc.vertical {
			t.Errorf("%v.Vertical() = %v, expected %v", tc.heading, tc.heading.Vertical(), tc.vertical)
		}
		if tc.heading.Horizontal() == tc.vertical {
			t.Errorf("%v.Horizontal() = %v, expected %v", tc.heading, tc.heading.Horizontal(), !tc.vertical)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
