// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию. t ограничивается отрезком [0, 1].
func Lerp(from, to float64, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return from + (to-from)*t
}
