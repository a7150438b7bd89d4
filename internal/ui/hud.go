// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
)

// HUD — верхняя полоса: счёт, рекорд, жизни и волна.
type HUD struct {
	face  font.Face
	wave  *WaveIndicator
	width int
}

func NewHUD(face font.Face, width int) *HUD {
	return &HUD{
		face:  face,
		wave:  NewWaveIndicator(width/2, 40, face),
		width: width,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, state app.HUD) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), config.HUDHeight, config.HUDColor, false)

	text.Draw(screen, "SCORE", h.face, 16, 22, config.TextDimColor)
	text.Draw(screen, fmt.Sprintf("%06d", state.Score), h.face, 16, 44, config.TextLightColor)

	DrawRight(screen, h.face, "HI-SCORE", h.width-16, 22, config.TextDimColor)
	DrawRight(screen, h.face, fmt.Sprintf("%06d", state.HighScore), h.width-16, 44, config.HighScoreColor)

	// Запасные корабли
	for i := 0; i < state.Lives; i++ {
		x := float32(140 + i*26)
		vector.DrawFilledRect(screen, x, 34, 18, 8, config.TextLightColor, false)
		vector.DrawFilledRect(screen, x+7, 29, 4, 5, config.TextLightColor, false)
	}

	h.wave.Draw(screen, state.Wave)
}
