// pkg/viewport/viewport.go
package viewport

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
)

// Viewport переводит мировые координаты арены (y вверх) в экранные (y вниз).
// Подходит и для пикселей, и для ячеек терминала.
type Viewport struct {
	Arena            defs.ArenaDefinition
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// New создаёт вид с явным масштабом.
func New(arena defs.ArenaDefinition, scaleX, scaleY, offsetX, offsetY float64) *Viewport {
	return &Viewport{Arena: arena, ScaleX: scaleX, ScaleY: scaleY, OffsetX: offsetX, OffsetY: offsetY}
}

// Fit вписывает арену в прямоугольник width x height со сдвигом (offsetX, offsetY).
// Масштабы по осям независимы: ячейки терминала не квадратные.
func Fit(arena defs.ArenaDefinition, width, height, offsetX, offsetY float64) *Viewport {
	sx, sy := 1.0, 1.0
	if arena.Width() > 0 {
		sx = width / arena.Width()
	}
	if arena.Height() > 0 {
		sy = height / arena.Height()
	}
	return New(arena, sx, sy, offsetX, offsetY)
}

// ToScreen — экранная точка для мировой.
func (v *Viewport) ToScreen(p component.Position) (float64, float64) {
	return v.OffsetX + (p.X-v.Arena.MinX)*v.ScaleX, v.OffsetY + (v.Arena.MaxY-p.Y)*v.ScaleY
}

// ToWorld — обратное преобразование.
func (v *Viewport) ToWorld(x, y float64) component.Position {
	return component.Position{
		X: (x-v.OffsetX)/v.ScaleX + v.Arena.MinX,
		Y: v.Arena.MaxY - (y-v.OffsetY)/v.ScaleY,
	}
}

// Rect — левый верхний угол и размер на экране для прямоугольника с центром center.
func (v *Viewport) Rect(center component.Position, width, height float64) (x, y, w, h float64) {
	cx, cy := v.ToScreen(center)
	w, h = width*v.ScaleX, height*v.ScaleY
	return cx - w/2, cy - h/2, w, h
}

// Size — размер всей арены на экране.
func (v *Viewport) Size() (float64, float64) {
	return v.Arena.Width() * v.ScaleX, v.Arena.Height() * v.ScaleY
}
