// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.previous.Game().TogglePause()
		s.sm.SetState(s.previous)
		return
	}
	// Выход в меню без сохранения счёта
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.sm.GoToMenuView()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, s.sm.ctx.TitleFace, "PAUSED", cx, config.ScreenHeight/2-10, config.TextLightColor)
	ui.DrawCentered(screen, s.sm.ctx.Face, "P  resume     Q  menu", cx, config.ScreenHeight/2+30, config.TextDimColor)
}

func (s *PauseState) Exit() {}
