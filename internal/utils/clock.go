package utils

// Clock — источник игрового времени в секундах.
type Clock interface {
	Now() float64
}

// GameClock — игровое время, которое двигается только вызовом Advance.
// Во время паузы хозяин просто не вызывает Advance.
type GameClock struct {
	now float64
}

func NewGameClock() *GameClock {
	return &GameClock{}
}

// Now реализует Clock.
func (c *GameClock) Now() float64 {
	return c.now
}

// Advance сдвигает время вперёд на deltaTime секунд. Отрицательные значения игнорируются.
func (c *GameClock) Advance(deltaTime float64) {
	if deltaTime > 0 {
		c.now += deltaTime
	}
}

// Reset возвращает часы к нулю.
func (c *GameClock) Reset() {
	c.now = 0
}
