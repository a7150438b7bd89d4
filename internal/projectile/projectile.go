package projectile

import (
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/types"
)

// Projectile — летящий снаряд. Экземпляры живут в пуле и переиспользуются:
// выключенный снаряд снова выдаётся при следующем выстреле.
type Projectile struct {
	ID       types.EntityID
	Def      *Definition
	Position component.Position
	Velocity component.Velocity
	active   bool
}

// IsActive реализует pool.Poolable.
func (p *Projectile) IsActive() bool {
	return p.active
}

// Launch ставит снаряд в точку вылета и включает его.
func (p *Projectile) Launch(origin component.Position) {
	p.Position = origin
	p.Velocity = component.Velocity{X: 0, Y: p.Def.Speed * p.Def.Direction}
	p.active = true
}

// Deactivate возвращает снаряд в пул.
func (p *Projectile) Deactivate() {
	p.active = false
}

// Update двигает активный снаряд.
func (p *Projectile) Update(deltaTime float64) {
	if !p.active {
		return
	}
	p.Position = p.Position.Add(p.Velocity.Step(deltaTime))
}

// Hit сообщает цели о попадании и выключает снаряд.
func (p *Projectile) Hit(target component.BulletTaker) {
	if !p.active || target == nil {
		return
	}
	target.TakeHit()
	p.active = false
}

// Faction — сторона, выпустившая снаряд.
func (p *Projectile) Faction() component.Faction {
	return p.Def.Faction
}

// Size — ширина и высота снаряда.
func (p *Projectile) Size() (float64, float64) {
	return p.Def.Width, p.Def.Height
}

// Color — цвет снаряда.
func (p *Projectile) Color() color.RGBA {
	return p.Def.Color
}
