// internal/ui/leaderboard_view.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/leaderboard"
)

// LeaderboardView — таблица лучших результатов.
type LeaderboardView struct {
	face font.Face
	X, Y int
}

func NewLeaderboardView(face font.Face, x, y int) *LeaderboardView {
	return &LeaderboardView{face: face, X: x, Y: y}
}

func (v *LeaderboardView) Draw(screen *ebiten.Image, entries []leaderboard.Entry) {
	DrawCentered(screen, v.face, "HIGH SCORES", v.X, v.Y, config.HighScoreColor)
	if len(entries) == 0 {
		DrawCentered(screen, v.face, "no scores yet", v.X, v.Y+40, config.TextDimColor)
		return
	}
	for i, e := range entries {
		y := v.Y + 40 + i*config.TextLineHeight*2
		text.Draw(screen, fmt.Sprintf("%d.", i+1), v.face, v.X-160, y, config.TextDimColor)
		text.Draw(screen, e.PlayerName, v.face, v.X-120, y, config.TextLightColor)
		DrawRight(screen, v.face, fmt.Sprintf("%d", e.Score), v.X+160, y, config.TextLightColor)
	}
}
