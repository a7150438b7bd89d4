// internal/termui/runner.go
package termui

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/leaderboard"
)

// KeyHold — сколько держится нажатие без повтора клавиши.
const KeyHold = 0.15

// Runner ведёт сессии в терминале до выхода.
type Runner struct {
	screen   tcell.Screen
	opts     app.Options
	game     *app.Game
	renderer *Renderer
	controls *Controls
}

func NewRunner(screen tcell.Screen, opts app.Options) (*Runner, error) {
	r := &Runner{
		screen:   screen,
		opts:     opts,
		renderer: NewRenderer(screen),
		controls: NewControls(KeyHold),
	}
	if err := r.restart(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Runner) restart() error {
	g, err := app.NewGame(r.opts)
	if err != nil {
		return err
	}
	r.game = g
	r.controls.Reset()
	r.renderer.Resize(g)
	r.opts = r.opts.Next()
	return nil
}

// Game — текущая сессия.
func (r *Runner) Game() *app.Game {
	return r.game
}

// HandleEvent обрабатывает событие терминала; false означает выход.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := KeyAction(ev)
		switch action {
		case ActionQuit:
			return false
		case ActionPause:
			if !r.game.IsOver() {
				r.game.TogglePause()
				r.controls.Reset()
			}
		case ActionConfirm:
			if r.game.IsOver() {
				if err := r.restart(); err != nil {
					log.Printf("Error: cannot restart: %v", err)
					return false
				}
			}
		default:
			r.controls.Apply(action)
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.renderer.Resize(r.game)
	}
	return true
}

// Step — один кадр симуляции.
func (r *Runner) Step(dt float64) {
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	r.game.Update(dt, r.controls.Input(dt))
}

func (r *Runner) entries() []leaderboard.Entry {
	if r.opts.Leaderboard == nil {
		return nil
	}
	return r.opts.Leaderboard.Entries()
}

// Run — главный цикл: события из отдельной горутины, кадры по тикеру.
func (r *Runner) Run() {
	ticker := time.NewTicker(time.Second / config.TerminalTickRate)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	eventChan := pollEvents(r.screen, quit)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !r.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			r.Step(now.Sub(last).Seconds())
			last = now
			r.renderer.Draw(r.game, r.entries())
		}
	}
}

// pollEvents читает события экрана до закрытия quit.
// После Fini PollEvent возвращает nil, и горутина тоже выходит.
func pollEvents(screen tcell.Screen, quit <-chan struct{}) <-chan tcell.Event {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer close(eventChan)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	return eventChan
}
