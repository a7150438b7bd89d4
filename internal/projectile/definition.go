package projectile

import (
	"errors"
	"fmt"
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
)

// ErrBadDefinition — прототип не может построить снаряд.
var ErrBadDefinition = errors.New("projectile: bad definition")

// Definition — прототип снаряда. Реализует pool.Prototype[*Projectile].
type Definition struct {
	Name      string
	Faction   component.Faction
	Speed     float64
	Direction float64
	Width     float64
	Height    float64
	Color     color.RGBA

	ids *entity.Registry
}

// NewDefinition строит прототип из описания в defs. ids выдаёт идентификаторы новым экземплярам.
func NewDefinition(def defs.ProjectileDefinition, ids *entity.Registry) *Definition {
	faction := component.FactionPlayer
	if def.Faction == defs.FactionInvaders {
		faction = component.FactionInvaders
	}
	return &Definition{
		Name:      def.ID,
		Faction:   faction,
		Speed:     def.Speed,
		Direction: def.Direction,
		Width:     def.Visuals.Width,
		Height:    def.Visuals.Height,
		Color:     def.Visuals.Color,
		ids:       ids,
	}
}

// ID реализует pool.Prototype.
func (d *Definition) ID() string {
	return d.Name
}

// Instantiate реализует pool.Prototype. Новый экземпляр создаётся выключенным.
func (d *Definition) Instantiate() (*Projectile, error) {
	if d.Speed <= 0 {
		return nil, fmt.Errorf("%w: %q has speed %v", ErrBadDefinition, d.Name, d.Speed)
	}
	if d.Direction == 0 {
		return nil, fmt.Errorf("%w: %q has no direction", ErrBadDefinition, d.Name)
	}
	p := &Projectile{Def: d}
	if d.ids != nil {
		p.ID = d.ids.NewEntity()
	}
	return p, nil
}
