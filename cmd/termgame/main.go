// cmd/termgame/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/leaderboard"
	"go-space-invaders/internal/termui"
)

func main() {
	dataDir := flag.String("data", config.DataDir, "directory for the leaderboard file")
	defsPath := flag.String("defs", "", "game definitions JSON (built-in when empty)")
	name := flag.String("name", config.DefaultPlayerName, "player name for the leaderboard")
	seed := flag.Int64("seed", 0, "random seed (0 — from the clock)")
	logPath := flag.String("log", "", "log file (logging is off when empty)")
	flag.Parse()

	// Лог в терминал сломает картинку
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	board := leaderboard.NewStore(*dataDir)
	if err := board.Load(); err != nil {
		if !errors.Is(err, leaderboard.ErrCorrupt) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Printf("Error: %v; starting with an empty leaderboard", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	screen.HideCursor()

	runner, err := termui.NewRunner(screen, app.Options{
		Def:         defs.LoadOrDefault(*defsPath),
		Leaderboard: board,
		PlayerName:  *name,
		Seed:        *seed,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runner.Run()
	screen.Fini()
}
