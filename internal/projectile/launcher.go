package projectile

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/pool"
)

// Launcher берёт снаряд из реестра пулов, ставит его в точку вылета и включает.
type Launcher struct {
	registry        *pool.Registry[*Projectile]
	eventDispatcher *event.Dispatcher
}

func NewLauncher(registry *pool.Registry[*Projectile], eventDispatcher *event.Dispatcher) *Launcher {
	return &Launcher{
		registry:        registry,
		eventDispatcher: eventDispatcher,
	}
}

// Launch выдаёт и запускает экземпляр прототипа.
func (l *Launcher) Launch(prototype *Definition, origin component.Position) (*Projectile, error) {
	p, err := l.registry.Acquire(prototype)
	if err != nil {
		return nil, err
	}
	p.Launch(origin)
	if l.eventDispatcher != nil {
		l.eventDispatcher.Dispatch(event.Event{
			Type: event.ShotFired,
			Data: event.ShotFiredData{ProjectileID: p.ID, Faction: prototype.Faction, Origin: origin},
		})
	}
	return p, nil
}

// Registry — реестр пулов, из которого берутся снаряды.
func (l *Launcher) Registry() *pool.Registry[*Projectile] {
	return l.registry
}
