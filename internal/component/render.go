// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки: цвет и размер прямоугольника в мировых единицах.
type Renderable struct {
	Color         color.RGBA
	Width, Height float64
}
