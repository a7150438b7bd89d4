// internal/system/projectile.go
package system

import (
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/pool"
	"go-space-invaders/internal/projectile"
)

// ProjectileSystem двигает снаряды из пулов и возвращает в пул улетевшие за арену.
type ProjectileSystem struct {
	registry *pool.Registry[*projectile.Projectile]
	arena    defs.ArenaDefinition
}

func NewProjectileSystem(registry *pool.Registry[*projectile.Projectile], arena defs.ArenaDefinition) *ProjectileSystem {
	if registry == nil {
		panic("registry cannot be nil")
	}
	return &ProjectileSystem{
		registry: registry,
		arena:    arena,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.registry.Each(func(p *projectile.Projectile) {
		if !p.IsActive() {
			return
		}
		p.Update(deltaTime)
		// Улетел за край, возвращаем в пул
		if !s.arena.Contains(p.Position.X, p.Position.Y) {
			p.Deactivate()
		}
	})
}

// ActiveCount — сколько снарядов сейчас в полёте.
func (s *ProjectileSystem) ActiveCount() int {
	n := 0
	s.registry.Each(func(p *projectile.Projectile) {
		if p.IsActive() {
			n++
		}
	})
	return n
}
