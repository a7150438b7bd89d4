// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
)

// GameOverState — итог сессии поверх последнего кадра игры.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
	board    *ui.LeaderboardView
}

func NewGameOverState(sm *StateMachine, previous *GameState) *GameOverState {
	return &GameOverState{
		sm:       sm,
		previous: previous,
		board:    ui.NewLeaderboardView(sm.ctx.Face, config.ScreenWidth/2, config.ScreenHeight/2+60),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.GoToMenuView()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.sm.GoToLeaderboardView()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	hud := s.previous.Game().HUD()
	title := "GAME OVER"
	if hud.Invaded {
		title = "INVADED"
	}
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, s.sm.ctx.TitleFace, title, cx, config.ScreenHeight/2-80, config.BossWaveColor)
	ui.DrawCentered(screen, s.sm.ctx.Face, fmt.Sprintf("score %d   wave %d", hud.Score, hud.Wave), cx, config.ScreenHeight/2-40, config.TextLightColor)
	s.board.Draw(screen, s.sm.entries())
	ui.DrawCentered(screen, s.sm.ctx.Face, "ENTER  menu", cx, config.ScreenHeight-40, config.TextDimColor)
}

func (s *GameOverState) Exit() {}
