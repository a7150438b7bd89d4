// pkg/render/arena_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/component"
	"go-space-invaders/pkg/viewport"
)

// ArenaRenderer рисует содержимое арены прямоугольниками.
type ArenaRenderer struct {
	view       *viewport.Viewport
	background color.RGBA
}

func NewArenaRenderer(view *viewport.Viewport, background color.RGBA) *ArenaRenderer {
	if view == nil {
		panic("view cannot be nil")
	}
	return &ArenaRenderer{view: view, background: background}
}

// DrawBackground заливает область арены.
func (r *ArenaRenderer) DrawBackground(screen *ebiten.Image) {
	w, h := r.view.Size()
	vector.DrawFilledRect(screen, float32(r.view.OffsetX), float32(r.view.OffsetY), float32(w), float32(h), r.background, false)
}

// DrawRect рисует прямоугольник с центром в мировой точке.
func (r *ArenaRenderer) DrawRect(screen *ebiten.Image, center component.Position, width, height float64, c color.RGBA) {
	x, y, w, h := r.view.Rect(center, width, height)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawHorizontalLine — линия через всю арену на мировой высоте y.
func (r *ArenaRenderer) DrawHorizontalLine(screen *ebiten.Image, y float64, c color.RGBA) {
	x0, sy := r.view.ToScreen(component.Position{X: r.view.Arena.MinX, Y: y})
	x1, _ := r.view.ToScreen(component.Position{X: r.view.Arena.MaxX, Y: y})
	vector.StrokeLine(screen, float32(x0), float32(sy), float32(x1), float32(sy), 1, c, false)
}

// DrawExplosion рисует частицы вспышки, затухающие к концу эффекта.
func (r *ArenaRenderer) DrawExplosion(screen *ebiten.Image, ex *component.Explosion) {
	c := FadeColor(ex.Color, ex.Progress())
	for _, s := range ex.Sparks {
		x, y := r.view.ToScreen(ex.Position.Add(s.Offset))
		vector.DrawFilledRect(screen, float32(x)-1, float32(y)-1, 3, 3, c, false)
	}
}
