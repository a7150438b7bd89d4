package invader

import (
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/projectile"
	"go-space-invaders/internal/shoot"
	"go-space-invaders/internal/types"
)

// KillListener получает уведомление о гибели захватчика.
type KillListener interface {
	OnInvaderKilled(inv *Invader)
}

// Anchor — точка, относительно которой стоит захватчик (позиция строя).
type Anchor interface {
	Position() component.Position
}

// Rand — источник случайных интервалов стрельбы.
type Rand interface {
	Range(min, max float64) float64
}

// Invader — один член строя.
// Неактивен до появления и после гибели; при сбросе волны включается снова
// с новым планировщиком стрельбы.
type Invader struct {
	ID  types.EntityID
	Def *defs.InvaderDefinition

	local     component.Position
	anchor    Anchor
	alive     bool
	launcher  shoot.Launcher
	prototype *projectile.Definition
	scheduler *shoot.Scheduler
	rng       Rand
	listeners []KillListener
}

// New создаёт неактивного захватчика со смещением local относительно anchor.
func New(id types.EntityID, def *defs.InvaderDefinition, local component.Position, anchor Anchor,
	launcher shoot.Launcher, prototype *projectile.Definition, rng Rand) *Invader {
	return &Invader{
		ID:        id,
		Def:       def,
		local:     local,
		anchor:    anchor,
		launcher:  launcher,
		prototype: prototype,
		rng:       rng,
	}
}

// Subscribe добавляет слушателя гибели. Повторная подписка того же слушателя ничего не меняет.
func (i *Invader) Subscribe(l KillListener) {
	for _, existing := range i.listeners {
		if existing == l {
			return
		}
	}
	i.listeners = append(i.listeners, l)
}

// Activate оживляет захватчика с новым случайным интервалом стрельбы.
func (i *Invader) Activate() {
	i.scheduler = shoot.New(i.launcher, i.prototype, i.rollInterval(), 0)
	i.alive = true
}

// TakeHit реализует component.BulletTaker: одно попадание убивает.
func (i *Invader) TakeHit() {
	if !i.alive {
		return
	}
	i.alive = false
	listeners := append([]KillListener(nil), i.listeners...)
	for _, l := range listeners {
		l.OnInvaderKilled(i)
	}
}

// Shoot пытается выстрелить. После выстрела интервал бросается заново.
func (i *Invader) Shoot(now float64) bool {
	if !i.alive || i.scheduler == nil {
		return false
	}
	if !i.scheduler.TryShoot(i.Muzzle(), now) {
		return false
	}
	i.scheduler.SetInterval(i.rollInterval())
	return true
}

// IsAlive — жив ли захватчик.
func (i *Invader) IsAlive() bool {
	return i.alive
}

// IsActive — то же, что IsAlive; нужен коллизиям.
func (i *Invader) IsActive() bool {
	return i.alive
}

// Position — мировая позиция: позиция строя плюс собственное смещение.
func (i *Invader) Position() component.Position {
	if i.anchor == nil {
		return i.local
	}
	return i.anchor.Position().Add(i.local)
}

// Center — то же, что Position; общий доступ к центру для коллизий.
func (i *Invader) Center() component.Position {
	return i.Position()
}

// Local — смещение относительно строя, заданное при появлении.
func (i *Invader) Local() component.Position {
	return i.local
}

// Muzzle — точка вылета снаряда: нижний край захватчика.
func (i *Invader) Muzzle() component.Position {
	_, h := i.Size()
	p := i.Position()
	p.Y -= h / 2
	return p
}

// Scheduler — текущий планировщик стрельбы (nil до первой активации).
func (i *Invader) Scheduler() *shoot.Scheduler {
	return i.scheduler
}

func (i *Invader) Color() color.RGBA {
	if i.Def == nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return i.Def.Visuals.Color
}

func (i *Invader) Size() (float64, float64) {
	if i.Def == nil {
		return 0, 0
	}
	return i.Def.Visuals.Width, i.Def.Visuals.Height
}

func (i *Invader) Points() int {
	if i.Def == nil {
		return 0
	}
	return i.Def.Points
}

func (i *Invader) rollInterval() float64 {
	if i.Def == nil {
		return 0
	}
	r := i.Def.ShootInterval
	if i.rng == nil {
		return r.Min
	}
	return i.rng.Range(r.Min, r.Max)
}
