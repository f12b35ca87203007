package universe

import "testing"

func TestIsHit(t *testing.T) {
	tests := []struct {
		name     string
		mx, my   int
		alive    bool
		expected bool
	}{
		{"inside", 12, 12, true, true},
		{"top-left corner", 10, 10, true, true},
		{"bottom-right corner (inclusive)", 22, 18, true, true},
		{"right of box", 23, 12, true, false},
		{"below box", 12, 19, true, false},
		{"left of box", 9, 12, true, false},
		{"above box", 12, 9, true, false},
		{"dead alien", 12, 12, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newAlien(10, 10, 100, AlienA)
			a.Alive = tc.alive
			m := Missile{X: tc.mx, Y: tc.my}
			if got := IsHit(&a, &m); got != tc.expected {
				t.Errorf("IsHit() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBombHitsPlayer(t *testing.T) {
	p := newPlayer(50, 100)

	tests := []struct {
		name     string
		bx, by   int
		expected bool
	}{
		{"nose", 55, 100, true},
		{"far corner (inclusive)", 61, 107, true},
		{"right of ship", 62, 103, false},
		{"below ship", 55, 108, false},
		{"above ship", 55, 99, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bomb{X: tc.bx, Y: tc.by}
			if got := bombHitsPlayer(&b, &p); got != tc.expected {
				t.Errorf("bombHitsPlayer() = %v, expected %v", got, tc.expected)
			}
		})
	}

	p.Alive = false
	b := Bomb{X: 55, Y: 100}
	if !bombHitsPlayer(&b, &p) {
		t.Error("a dead player is still hit-tested")
	}
}

func TestStepAlien(t *testing.T) {
	tests := []struct {
		heading Heading
		dx, dy  int
	}{
		{HeadingRight, StepSize, 0},
		{HeadingLeft, -StepSize, 0},
		{HeadingDown, 0, StepSize},
	}

	for _, tc := range tests {
		t.Run(tc.heading.String(), func(t *testing.T) {
			a := newAlien(50, 50, 10, AlienB)
			if stepAlien(tc.heading, &a, 200) {
				t.Fatal("alien should not have landed")
			}
			if a.X != 50+tc.dx || a.Y != 50+tc.dy {
				t.Errorf("alien at (%d, %d), expected (%d, %d)", a.X, a.Y, 50+tc.dx, 50+tc.dy)
			}
			if !a.Phase {
				t.Error("phase should toggle")
			}
			if a.Remove {
				t.Error("living alien should not be flagged")
			}
		})
	}

	dead := newAlien(50, 50, 10, AlienB)
	dead.Alive = false
	stepAlien(HeadingRight, &dead, 200)
	if !dead.Remove {
		t.Error("dead alien should be flagged after its step")
	}

	low := newAlien(50, 196, 10, AlienB)
	if !stepAlien(HeadingRight, &low, 200) {
		t.Error("alien with y+5 past the floor should land")
	}
	if low.X != 50 || low.Phase {
		t.Error("landed alien should not move or animate")
	}

	edge := newAlien(50, 195, 10, AlienB)
	if stepAlien(HeadingRight, &edge, 200) {
		t.Error("alien with y+5 exactly on the floor has not landed")
	}
}
