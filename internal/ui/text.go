// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку по центру относительно cx; y — базовая линия.
func DrawCentered(screen *ebiten.Image, face font.Face, s string, cx, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-b.Dx()/2, y, clr)
}

// DrawRight рисует строку, прижатую правым краем к x.
func DrawRight(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Dx(), y, clr)
}
