// internal/component/visual.go
package component

import "image/color"

// Spark — одна частица взрыва, смещение от центра.
type Spark struct {
	Offset   Position
	Velocity Velocity
}

// Explosion — вспышка на месте убитого захватчика.
type Explosion struct {
	Position Position
	Color    color.RGBA
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
	Sparks   []Spark
}

// Progress — доля прожитого времени в [0, 1].
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Done — эффект отыграл.
func (e *Explosion) Done() bool {
	return e.Timer >= e.Duration
}
