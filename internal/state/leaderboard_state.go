// internal/state/leaderboard_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/ui"
)

type LeaderboardState struct {
	sm   *StateMachine
	view *ui.LeaderboardView
}

func NewLeaderboardState(sm *StateMachine) *LeaderboardState {
	return &LeaderboardState{
		sm:   sm,
		view: ui.NewLeaderboardView(sm.ctx.Face, config.ScreenWidth/2, 220),
	}
}

func (s *LeaderboardState) Enter() {}

func (s *LeaderboardState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.GoToMenuView()
	}
}

func (s *LeaderboardState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.view.Draw(screen, s.sm.entries())
	ui.DrawCentered(screen, s.sm.ctx.Face, "ENTER  back", config.ScreenWidth/2, config.ScreenHeight-40, config.TextDimColor)
}

func (s *LeaderboardState) Exit() {}
