// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/player"
	"go-space-invaders/internal/ui"
	"go-space-invaders/pkg/render"
	"go-space-invaders/pkg/viewport"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.ArenaRenderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	view := viewport.New(g.Def.Arena, config.PixelsPerUnit, config.PixelsPerUnit, 0, config.HUDHeight)
	return &GameState{
		sm:       sm,
		game:     g,
		renderer: render.NewArenaRenderer(view, config.BackgroundColor),
		hud:      ui.NewHUD(sm.ctx.Face, config.ScreenWidth),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime, readInput())

	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func readInput() player.Input {
	var in player.Input
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Axis--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Axis++
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	return in
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.DrawBackground(screen)
	g.renderer.DrawHorizontalLine(screen, g.game.Def.Formation.InvasionY, config.InvasionColor)

	for _, s := range g.game.Sprites() {
		g.renderer.DrawRect(screen, s.Position, s.Width, s.Height, s.Color)
	}
	for _, ex := range g.game.Effects() {
		g.renderer.DrawExplosion(screen, ex)
	}
	g.hud.Draw(screen, g.game.HUD())
}

func (g *GameState) Exit() {}

// Game — сессия этого экрана.
func (g *GameState) Game() *app.Game {
	return g.game
}
