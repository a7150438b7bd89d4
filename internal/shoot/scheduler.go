package shoot

import (
	"log"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/projectile"
)

// Launcher — слой пулов, из которого планировщик запрашивает снаряд.
type Launcher interface {
	Launch(prototype *projectile.Definition, origin component.Position) (*projectile.Projectile, error)
}

// Scheduler решает, когда стрелку можно выстрелить.
// Один экземпляр на стрелка, не разделяется.
type Scheduler struct {
	launcher      Launcher
	prototype     *projectile.Definition
	interval      float64
	nextShootTime float64
}

// New создаёт планировщик. firstShootTime — момент, после которого разрешён первый выстрел.
func New(launcher Launcher, prototype *projectile.Definition, interval, firstShootTime float64) *Scheduler {
	return &Scheduler{
		launcher:      launcher,
		prototype:     prototype,
		interval:      interval,
		nextShootTime: firstShootTime,
	}
}

// SetInterval меняет темп будущих выстрелов, не трогая уже назначенный срок.
func (s *Scheduler) SetInterval(interval float64) {
	s.interval = interval
}

// Interval — текущий интервал между выстрелами.
func (s *Scheduler) Interval() float64 {
	return s.interval
}

// NextShootTime — момент, после которого разрешён следующий выстрел.
func (s *Scheduler) NextShootTime() float64 {
	return s.nextShootTime
}

// TryShoot стреляет из origin, если now строго больше срока следующего выстрела.
// Пропущенное окно не копится: выстрел не ставится в очередь и не делается «с опозданием».
func (s *Scheduler) TryShoot(origin component.Position, now float64) bool {
	if s.prototype == nil || s.launcher == nil {
		return false
	}
	if now <= s.nextShootTime {
		return false
	}
	if !s.shoot(origin) {
		return false
	}
	s.nextShootTime = now + s.interval
	return true
}

// ShootImmediately стреляет в обход таймера. Срок следующего выстрела не меняется.
// Для выстрелов по внешней команде; игровой цикл стреляет только через TryShoot,
// так что сейчас его вызывают лишь тесты.
func (s *Scheduler) ShootImmediately(origin component.Position) bool {
	if s.prototype == nil || s.launcher == nil {
		return false
	}
	return s.shoot(origin)
}

func (s *Scheduler) shoot(origin component.Position) bool {
	if _, err := s.launcher.Launch(s.prototype, origin); err != nil {
		log.Printf("Error: failed to spawn projectile %q: %v", s.prototype.ID(), err)
		return false
	}
	return true
}
