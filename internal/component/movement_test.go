package component

import "testing"

func TestPositionArithmetic(t *testing.T) {
	p := Position{X: 1, Y: 2}.Add(Position{X: 0.5, Y: -3})
	if p.X != 1.5 || p.Y != -1 {
		t.Errorf("Expected (1.5, -1), got (%v, %v)", p.X, p.Y)
	}
	d := p.Sub(Position{X: 1.5, Y: -1})
	if d.X != 0 || d.Y != 0 {
		t.Errorf("Expected zero difference, got (%v, %v)", d.X, d.Y)
	}
}

func TestVelocityStep(t *testing.T) {
	step := Velocity{X: 2, Y: -4}.Step(0.5)
	if step.X != 1 || step.Y != -2 {
		t.Errorf("Expected (1, -2), got (%v, %v)", step.X, step.Y)
	}
}
