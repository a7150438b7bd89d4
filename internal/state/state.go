// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/leaderboard"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context — общее для всех экранов.
type Context struct {
	Def         *defs.GameDefinition
	Leaderboard *leaderboard.Store
	PlayerName  string
	Seed        int64
	Face        font.Face
	TitleFace   font.Face
}

var _ interfaces.Navigator = (*StateMachine)(nil)

// StateMachine — структура для управления состояниями.
// Она же переключает экраны по запросу из состояний.
type StateMachine struct {
	current State
	ctx     *Context
	quit    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	if ctx == nil {
		panic("ctx cannot be nil")
	}
	return &StateMachine{ctx: ctx}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current — активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// GoToGameplayView начинает новую сессию.
func (sm *StateMachine) GoToGameplayView() {
	opts := app.Options{
		Def:         sm.ctx.Def,
		Leaderboard: sm.ctx.Leaderboard,
		PlayerName:  sm.ctx.PlayerName,
		Seed:        sm.ctx.Seed,
	}
	g, err := app.NewGame(opts)
	if err != nil {
		log.Printf("Error: cannot start game: %v", err)
		return
	}
	// Каждая сессия со своим зерном
	sm.ctx.Seed = opts.Next().Seed
	sm.SetState(NewGameState(sm, g))
}

func (sm *StateMachine) GoToMenuView() {
	sm.SetState(NewMenuState(sm))
}

// GoToLeaderboardView показывает таблицу рекордов.
func (sm *StateMachine) GoToLeaderboardView() {
	sm.SetState(NewLeaderboardState(sm))
}

// Quit просит главный цикл завершиться.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

func (sm *StateMachine) Quitting() bool {
	return sm.quit
}

func (sm *StateMachine) entries() []leaderboard.Entry {
	if sm.ctx.Leaderboard == nil {
		return nil
	}
	return sm.ctx.Leaderboard.Entries()
}
