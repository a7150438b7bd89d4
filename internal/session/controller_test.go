package session

import (
	"errors"
	"testing"

	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
)

type fakeScore struct {
	score int
	saves int
	err   error
}

func (s *fakeScore) SaveSessionScore() error { s.saves++; return s.err }
func (s *fakeScore) SessionScore() int       { return s.score }

type fixedWave int

func (w fixedWave) Wave() int { return int(w) }

func newController(lives int) (*Controller, *fakeScore, *event.Dispatcher) {
	d := event.NewDispatcher()
	s := &fakeScore{score: 700}
	c := New(defs.SessionDefinition{StartingLives: lives, RespawnDelay: 2}, s, d)
	return c, s, d
}

func TestPlayerDeathSchedulesRespawn(t *testing.T) {
	c, _, d := newController(3)
	respawns := 0
	c.SetRespawn(func() { respawns++ })

	d.Dispatch(event.Event{Type: event.PlayerKilled})
	if c.Lives() != 2 {
		t.Errorf("Expected 2 lives, got %d", c.Lives())
	}
	c.Update(1)
	if respawns != 0 {
		t.Fatal("Respawn must wait for the delay")
	}
	c.Update(1)
	if respawns != 1 {
		t.Errorf("Expected 1 respawn, got %d", respawns)
	}
	c.Update(5)
	if respawns != 1 {
		t.Errorf("Respawn must run once, got %d", respawns)
	}
}

func TestNoLivesEndsGame(t *testing.T) {
	c, s, d := newController(1)
	c.SetWaves(fixedWave(3))
	var ended []event.SessionEndedData
	d.SubscribeFunc(event.SessionEnded, func(e event.Event) {
		ended = append(ended, e.Data.(event.SessionEndedData))
	})

	c.RespawnOrEndGame(nil)
	if c.IsEnded() {
		t.Fatal("Game must continue while a life remains")
	}
	c.RespawnOrEndGame(nil)
	if !c.IsEnded() {
		t.Fatal("Expected game over with no lives left")
	}
	c.EndGame()
	if s.saves != 1 {
		t.Errorf("Expected score saved once, got %d", s.saves)
	}
	if len(ended) != 1 || ended[0].Score != 700 || ended[0].Wave != 3 || ended[0].Invaded {
		t.Errorf("Unexpected SessionEnded payload: %+v", ended)
	}
}

func TestInvasionEndsGame(t *testing.T) {
	c, s, d := newController(3)
	d.Dispatch(event.Event{Type: event.InvasionReached})
	if !c.IsEnded() || !c.Invaded() {
		t.Error("Expected invasion to end the session")
	}
	if s.saves != 1 {
		t.Errorf("Expected score saved once, got %d", s.saves)
	}
	c.RespawnOrEndGame(nil)
	if c.Lives() != 3 {
		t.Errorf("Ended session must not spend lives, got %d", c.Lives())
	}
}

func TestEndGameCancelsPendingRespawn(t *testing.T) {
	c, _, _ := newController(3)
	respawned := false
	c.RespawnOrEndGame(func() { respawned = true })
	c.EndGame()
	c.Update(10)
	if respawned || c.RespawnPending() {
		t.Error("EndGame must cancel the pending respawn")
	}
}

func TestPauseStopsRespawnCountdown(t *testing.T) {
	c, _, d := newController(3)
	paused, resumed := 0, 0
	d.SubscribeFunc(event.GamePaused, func(event.Event) { paused++ })
	d.SubscribeFunc(event.GameResumed, func(event.Event) { resumed++ })
	respawned := false
	c.RespawnOrEndGame(func() { respawned = true })

	c.TogglePause()
	c.Pause()
	c.Update(10)
	if respawned {
		t.Fatal("Respawn must not tick while paused")
	}
	c.TogglePause()
	c.Update(2)
	if !respawned {
		t.Error("Expected respawn after resume")
	}
	if paused != 1 || resumed != 1 {
		t.Errorf("Expected 1 pause and 1 resume event, got %d and %d", paused, resumed)
	}
}

func TestSaveErrorStillEndsSession(t *testing.T) {
	c, s, _ := newController(0)
	s.err = errors.New("read-only")
	c.RespawnOrEndGame(nil)
	if !c.IsEnded() {
		t.Error("Save failure must not keep the session alive")
	}
}
