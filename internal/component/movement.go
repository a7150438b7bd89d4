// component/movement.go
package component

// Position — компонент позиции в мировых единицах. Ось Y направлена вверх.
type Position struct {
	X, Y float64
}

// Add возвращает сумму двух позиций.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub возвращает разность двух позиций.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Velocity — компонент скорости (единиц в секунду по каждой оси)
type Velocity struct {
	X, Y float64
}

// Step возвращает смещение за deltaTime.
func (v Velocity) Step(deltaTime float64) Position {
	return Position{X: v.X * deltaTime, Y: v.Y * deltaTime}
}
