// internal/collision/world.go
package collision

import (
	"math"

	"github.com/solarlune/resolv"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/pool"
	"go-space-invaders/internal/projectile"
)

const cellSize = 32

var (
	tagInvader    = resolv.NewTag("invader")
	tagBlock      = resolv.NewTag("block")
	tagPlayer     = resolv.NewTag("player")
	tagProjectile = resolv.NewTag("projectile")
)

// Kind — вид цели, определяет её тег в пространстве.
type Kind int

const (
	KindInvader Kind = iota
	KindBlock
	KindPlayer
)

func (k Kind) tag() resolv.Tags {
	switch k {
	case KindBlock:
		return tagBlock
	case KindPlayer:
		return tagPlayer
	default:
		return tagInvader
	}
}

// Target — всё, во что может попасть снаряд.
type Target interface {
	component.BulletTaker
	IsActive() bool
	Center() component.Position
	Size() (float64, float64)
}

// body — фигура в пространстве и её владелец.
type body struct {
	shape   resolv.IShape
	tag     resolv.Tags
	w, h    float64
	inSpace bool
}

type targetBody struct {
	body
	target Target
}

// World — пространство resolv поверх арены. Мировые координаты (y вверх)
// переводятся в координаты пространства (y вниз) с масштабом scale.
type World struct {
	space    *resolv.Space
	arena    defs.ArenaDefinition
	scale    float64
	registry *pool.Registry[*projectile.Projectile]

	targets     []*targetBody
	byShape     map[resolv.IShape]*targetBody
	projectiles map[*projectile.Projectile]*body
	hits        int
}

// NewWorld создаёт пространство размером с арену. scale — пикселей пространства на мировую единицу.
func NewWorld(arena defs.ArenaDefinition, scale float64, registry *pool.Registry[*projectile.Projectile]) *World {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(arena.Width() * scale))
	h := int(math.Ceil(arena.Height() * scale))
	return &World{
		space:       resolv.NewSpace(w, h, cellSize, cellSize),
		arena:       arena,
		scale:       scale,
		registry:    registry,
		byShape:     make(map[resolv.IShape]*targetBody),
		projectiles: make(map[*projectile.Projectile]*body),
	}
}

// AddTarget регистрирует цель. Фигура появляется в пространстве при следующем Resolve,
// если цель активна.
func (w *World) AddTarget(kind Kind, t Target) {
	if t == nil {
		return
	}
	w.targets = append(w.targets, &targetBody{body: body{tag: kind.tag()}, target: t})
}

// Resolve синхронизирует фигуры с активностью и позициями, затем проверяет попадания.
// Каждый снаряд поражает не больше одной цели. Возвращает число попаданий.
func (w *World) Resolve() int {
	for _, tb := range w.targets {
		ww, hh := tb.target.Size()
		if w.sync(&tb.body, tb.target.IsActive(), tb.target.Center(), ww, hh) {
			w.byShape[tb.shape] = tb
		}
	}

	var flying []*projectile.Projectile
	w.registry.Each(func(p *projectile.Projectile) {
		b, ok := w.projectiles[p]
		if !ok {
			b = &body{tag: tagProjectile}
			w.projectiles[p] = b
		}
		pw, ph := p.Size()
		w.sync(b, p.IsActive(), p.Position, pw, ph)
		if p.IsActive() {
			flying = append(flying, p)
		}
	})

	hits := 0
	for _, p := range flying {
		if w.hitFirst(p) {
			hits++
		}
	}
	w.hits += hits
	return hits
}

// hitFirst ищет первую живую цель, которую может поразить снаряд этой стороны.
func (w *World) hitFirst(p *projectile.Projectile) bool {
	b := w.projectiles[p]
	if b == nil || !b.inSpace {
		return false
	}
	mask := targetsFor(p.Faction())
	bounds := b.shape.Bounds()
	var hit *targetBody
	// ForEach не останавливается по false, поэтому проверяем hit
	b.shape.SelectTouchingCells(0).FilterShapes().ByTags(mask).ForEach(func(other resolv.IShape) bool {
		if hit != nil {
			return false
		}
		tb := w.byShape[other]
		if tb == nil || !tb.target.IsActive() || !overlaps(bounds, other.Bounds()) {
			return true
		}
		hit = tb
		return false
	})
	if hit == nil {
		return false
	}
	p.Hit(hit.target)
	return true
}

// overlaps — пересечение прямоугольников, выровненных по осям.
// Снаряд целиком внутри цели тоже пересекает её.
func overlaps(a, b resolv.Bounds) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X && a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

func targetsFor(f component.Faction) resolv.Tags {
	if f == component.FactionPlayer {
		return tagInvader | tagBlock
	}
	return tagPlayer | tagBlock
}

// sync приводит фигуру в соответствие с владельцем. Возвращает true, если фигура создана заново.
func (w *World) sync(b *body, active bool, center component.Position, width, height float64) bool {
	if !active {
		if b.inSpace {
			w.space.Remove(b.shape)
			b.inSpace = false
		}
		return false
	}

	created := false
	if b.shape == nil || b.w != width || b.h != height {
		if b.inSpace {
			w.space.Remove(b.shape)
			b.inSpace = false
		}
		if b.shape != nil {
			delete(w.byShape, b.shape)
		}
		sw := math.Max(width*w.scale, 1)
		sh := math.Max(height*w.scale, 1)
		b.shape = resolv.NewRectangle(0, 0, sw, sh)
		b.shape.Tags().Set(b.tag)
		b.w, b.h = width, height
		created = true
	}
	if !b.inSpace {
		w.space.Add(b.shape)
		b.inSpace = true
	}
	x, y := w.ToSpace(center)
	b.shape.SetPosition(x, y)
	return created
}

// ToSpace переводит мировую точку в координаты пространства.
func (w *World) ToSpace(p component.Position) (float64, float64) {
	return (p.X - w.arena.MinX) * w.scale, (w.arena.MaxY - p.Y) * w.scale
}

// Hits — попаданий за всё время.
func (w *World) Hits() int {
	return w.hits
}

// TargetCount — зарегистрированные цели.
func (w *World) TargetCount() int {
	return len(w.targets)
}
