// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
	"go-space-invaders/pkg/utils"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	face             font.Face
}

// NewWaveIndicator создает новый индикатор волны с центром в x.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 1,
		face:             face,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	s := utils.ToRoman(waveNumber)

	// Каждая десятая волна выделяется
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.BossWaveColor
	}

	b := text.BoundString(i.face, s)
	x := i.X - b.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, i.face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, s, i.face, x, i.Y, textColor)
}
