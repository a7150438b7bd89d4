package formation

import (
	"go-space-invaders/internal/invader"
)

// RowListener получает события ряда.
type RowListener interface {
	OnInvaderKilled(row *Row, inv *invader.Invader)
	OnRowCleared(row *Row)
}

// Row — горизонтальная полоса захватчиков.
// Порядок регистрации = порядок появления слева направо, ряд его никогда не сортирует:
// первый живой считается крайним левым, последний живой крайним правым.
type Row struct {
	Index int

	units         []*invader.Invader
	listener      RowListener
	rng           Rand
	clearedRaised bool
}

// NewRow создаёт пустой ряд. index — номер ряда в конфигурации строя.
func NewRow(index int, listener RowListener, rng Rand) *Row {
	return &Row{Index: index, listener: listener, rng: rng}
}

// Register добавляет захватчика (повторно не добавляет), подписывается на его гибель
// и оживляет его.
func (r *Row) Register(u *invader.Invader) {
	if u == nil {
		return
	}
	if !r.contains(u) {
		r.units = append(r.units, u)
	}
	u.Subscribe(r)
	u.Activate()
	r.clearedRaised = false
}

// Units — все захватчики ряда в порядке появления, живые и мёртвые.
func (r *Row) Units() []*invader.Invader {
	return r.units
}

// HasAvailableUnit — есть ли живой захватчик. Не кэшируется.
func (r *Row) HasAvailableUnit() bool {
	for _, u := range r.units {
		if u.IsAlive() {
			return true
		}
	}
	return false
}

// AliveCount — число живых.
func (r *Row) AliveCount() int {
	n := 0
	for _, u := range r.units {
		if u.IsAlive() {
			n++
		}
	}
	return n
}

// LeftmostCrossed — первый живой захватчик стоит на x или левее.
func (r *Row) LeftmostCrossed(x float64) bool {
	for _, u := range r.units {
		if u.IsAlive() {
			return u.Position().X <= x
		}
	}
	return false
}

// RightmostCrossed — последний живой захватчик стоит на x или правее.
func (r *Row) RightmostCrossed(x float64) bool {
	for i := len(r.units) - 1; i >= 0; i-- {
		if r.units[i].IsAlive() {
			return r.units[i].Position().X >= x
		}
	}
	return false
}

// ReachedInvasionHeight — хотя бы один живой опустился до y.
func (r *Row) ReachedInvasionHeight(y float64) bool {
	for _, u := range r.units {
		if u.IsAlive() && u.Position().Y <= y {
			return true
		}
	}
	return false
}

// SignalShoot — случайный живой захватчик пытается выстрелить.
func (r *Row) SignalShoot(now float64) bool {
	alive := make([]*invader.Invader, 0, len(r.units))
	for _, u := range r.units {
		if u.IsAlive() {
			alive = append(alive, u)
		}
	}
	if len(alive) == 0 {
		return false
	}
	idx := 0
	if r.rng != nil {
		idx = r.rng.Intn(len(alive))
	}
	return alive[idx].Shoot(now)
}

// Reset оживляет весь ряд для новой волны.
func (r *Row) Reset() {
	for _, u := range r.units {
		r.Register(u)
	}
	r.clearedRaised = false
}

// OnInvaderKilled реализует invader.KillListener.
func (r *Row) OnInvaderKilled(u *invader.Invader) {
	if r.listener != nil {
		r.listener.OnInvaderKilled(r, u)
	}
	if r.clearedRaised || r.HasAvailableUnit() {
		return
	}
	r.clearedRaised = true
	if r.listener != nil {
		r.listener.OnRowCleared(r)
	}
}

func (r *Row) contains(u *invader.Invader) bool {
	for _, existing := range r.units {
		if existing == u {
			return true
		}
	}
	return false
}
