// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/leaderboard"
	"go-space-invaders/internal/state"
	"go-space-invaders/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	dataDir := flag.String("data", config.DataDir, "directory for the leaderboard file")
	defsPath := flag.String("defs", "", "game definitions JSON (built-in when empty)")
	name := flag.String("name", config.DefaultPlayerName, "player name for the leaderboard")
	seed := flag.Int64("seed", 0, "random seed (0 — from the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	board := leaderboard.NewStore(*dataDir)
	if err := board.Load(); err != nil {
		if !errors.Is(err, leaderboard.ErrCorrupt) {
			log.Fatal(err)
		}
		log.Printf("Error: %v; starting with an empty leaderboard", err)
	}

	sm := state.NewStateMachine(&state.Context{
		Def:         defs.LoadOrDefault(*defsPath),
		Leaderboard: board,
		PlayerName:  *name,
		Seed:        *seed,
		Face:        render.LoadFace(16),
		TitleFace:   render.LoadFace(40),
	})
	sm.GoToMenuView()

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Invaders")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
