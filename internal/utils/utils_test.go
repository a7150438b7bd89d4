package utils

import "testing"

func TestCountdownFiresOnce(t *testing.T) {
	var c Countdown
	c.Arm(1.0)

	if c.Tick(0.4) {
		t.Fatal("Countdown fired too early")
	}
	if c.Tick(0.4) {
		t.Fatal("Countdown fired too early")
	}
	if !c.Tick(0.4) {
		t.Fatal("Expected countdown to fire after 1.2s")
	}
	if c.Armed() {
		t.Error("Expected countdown to disarm after firing")
	}
	if c.Tick(10) {
		t.Error("Countdown fired twice")
	}
}

func TestCountdownClearCancels(t *testing.T) {
	var c Countdown
	c.Arm(0.5)
	c.Clear()
	if c.Tick(1) {
		t.Error("Cleared countdown must not fire")
	}
	if c.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %v", c.Remaining())
	}
}

func TestPRNGRangeStaysInBounds(t *testing.T) {
	s := NewPRNGService(42)
	for i := 0; i < 1000; i++ {
		v := s.Range(1, 5)
		if v < 1 || v >= 5 {
			t.Fatalf("Value %v out of [1, 5)", v)
		}
		w := s.Range(5, 1)
		if w < 1 || w >= 5 {
			t.Fatalf("Swapped range value %v out of [1, 5)", w)
		}
	}
}

func TestPRNGSeedIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 20; i++ {
		if a.Intn(100) != b.Intn(100) {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
	if a.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
}

func TestLerpClampsT(t *testing.T) {
	cases := []struct {
		t, want float64
	}{
		{-1, 1},
		{0, 1},
		{0.5, 0.5},
		{1, 0},
		{2, 0},
	}
	for _, c := range cases {
		if got := Lerp(1, 0, c.t); got != c.want {
			t.Errorf("Lerp(1, 0, %v): expected %v, got %v", c.t, c.want, got)
		}
	}
}

func TestGameClockAdvance(t *testing.T) {
	c := NewGameClock()
	c.Advance(0.25)
	c.Advance(-1)
	c.Advance(0.25)
	if c.Now() != 0.5 {
		t.Errorf("Expected 0.5, got %v", c.Now())
	}
	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Expected 0 after reset, got %v", c.Now())
	}
}
