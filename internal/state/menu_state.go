// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
)

// MenuState — главное меню
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.sm.GoToGameplayView()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		m.sm.GoToLeaderboardView()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, m.sm.ctx.TitleFace, "SPACE INVADERS", cx, 220, config.TextLightColor)

	best := 0
	if entries := m.sm.entries(); len(entries) > 0 {
		best = entries[0].Score
	}
	ui.DrawCentered(screen, m.sm.ctx.Face, fmt.Sprintf("HI-SCORE %06d", best), cx, 290, config.HighScoreColor)

	ui.DrawCentered(screen, m.sm.ctx.Face, "ENTER  play", cx, 400, config.TextLightColor)
	ui.DrawCentered(screen, m.sm.ctx.Face, "L  leaderboard", cx, 430, config.TextLightColor)
	ui.DrawCentered(screen, m.sm.ctx.Face, "ESC  quit", cx, 460, config.TextLightColor)
	ui.DrawCentered(screen, m.sm.ctx.Face, "pilot: "+m.sm.ctx.PlayerName, cx, 560, config.TextDimColor)
}

func (m *MenuState) Exit() {}
