package utils

// Countdown — отложенное действие, которое проверяется раз в тик.
// Заменяет ожидание в корутине: взвести, тикать, сработать один раз.
// Отмена — просто Clear.
type Countdown struct {
	remaining float64
	armed     bool
}

// Arm взводит таймер на seconds секунд. Повторный вызов перезапускает отсчёт.
func (c *Countdown) Arm(seconds float64) {
	c.remaining = seconds
	c.armed = true
}

// Clear отменяет отложенное действие.
func (c *Countdown) Clear() {
	c.remaining = 0
	c.armed = false
}

// Armed — ждёт ли таймер срабатывания.
func (c *Countdown) Armed() bool {
	return c.armed
}

// Remaining — оставшееся время (0, если не взведён).
func (c *Countdown) Remaining() float64 {
	if !c.armed {
		return 0
	}
	return c.remaining
}

// Tick уменьшает остаток и возвращает true ровно один раз, в тик срабатывания.
func (c *Countdown) Tick(deltaTime float64) bool {
	if !c.armed {
		return false
	}
	c.remaining -= deltaTime
	if c.remaining > 0 {
		return false
	}
	c.Clear()
	return true
}
