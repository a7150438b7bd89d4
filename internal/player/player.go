// internal/player/player.go
package player

import (
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/projectile"
	"go-space-invaders/internal/shoot"
	"go-space-invaders/internal/types"
	"go-space-invaders/pkg/utils"
)

// Input — состояние управления за тик.
type Input struct {
	Axis float64 // -1 влево, +1 вправо
	Fire bool
}

// Player — корабль игрока.
type Player struct {
	ID       types.EntityID
	Position component.Position

	def             defs.PlayerDefinition
	spawn           component.Position
	minX, maxX      float64
	alive           bool
	scheduler       *shoot.Scheduler
	eventDispatcher *event.Dispatcher
}

// New создаёт живого игрока в точке появления.
func New(id types.EntityID, def defs.PlayerDefinition, arena defs.ArenaDefinition,
	launcher shoot.Launcher, prototype *projectile.Definition, eventDispatcher *event.Dispatcher) *Player {
	spawn := component.Position{X: def.SpawnX, Y: def.SpawnY}
	return &Player{
		ID:              id,
		Position:        spawn,
		def:             def,
		spawn:           spawn,
		minX:            arena.MinX,
		maxX:            arena.MaxX,
		alive:           true,
		scheduler:       shoot.New(launcher, prototype, def.ShootInterval, 0),
		eventDispatcher: eventDispatcher,
	}
}

// Update двигает корабль по оси и стреляет, если нажат огонь.
// Возвращает true, если в этом тике был выстрел.
func (p *Player) Update(in Input, deltaTime, now float64) bool {
	if !p.alive {
		return false
	}
	axis := utils.Clamp(in.Axis, -1, 1)
	p.Position.X = utils.Clamp(p.Position.X+axis*p.def.Speed*deltaTime, p.minX, p.maxX)

	if !in.Fire {
		return false
	}
	return p.scheduler.TryShoot(p.Muzzle(), now)
}

// TakeHit реализует component.BulletTaker: одно попадание убивает.
func (p *Player) TakeHit() {
	if !p.alive {
		return
	}
	p.alive = false
	p.dispatch(event.PlayerKilled)
}

// Respawn возвращает игрока в точку появления.
func (p *Player) Respawn() {
	p.Position = p.spawn
	p.alive = true
	p.dispatch(event.PlayerRespawned)
}

// Muzzle — верхний край корабля.
func (p *Player) Muzzle() component.Position {
	m := p.Position
	m.Y += p.def.Visuals.Height / 2
	return m
}

func (p *Player) Center() component.Position { return p.Position }
func (p *Player) IsAlive() bool              { return p.alive }
func (p *Player) IsActive() bool             { return p.alive }

func (p *Player) Size() (float64, float64) {
	return p.def.Visuals.Width, p.def.Visuals.Height
}

func (p *Player) Color() color.RGBA {
	return p.def.Visuals.Color
}

func (p *Player) Scheduler() *shoot.Scheduler {
	return p.scheduler
}

func (p *Player) dispatch(t event.EventType) {
	if p.eventDispatcher == nil {
		return
	}
	p.eventDispatcher.Dispatch(event.Event{Type: t, Data: event.PlayerData{ID: p.ID, Position: p.Position}})
}
