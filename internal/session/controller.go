// internal/session/controller.go
package session

import (
	"log"

	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
)

// ScoreSaver — то, что нужно сессии от счёта.
type ScoreSaver interface {
	SaveSessionScore() error
	SessionScore() int
}

// WaveCounter сообщает номер текущей волны.
type WaveCounter interface {
	Wave() int
}

// Controller ведёт жизни, паузу, отложенное возрождение и конец игры.
type Controller struct {
	lives          int
	respawnDelay   float64
	respawnTimer   utils.Countdown
	pendingRespawn func()
	respawn        func()

	paused  bool
	ended   bool
	invaded bool

	score           ScoreSaver
	waves           WaveCounter
	eventDispatcher *event.Dispatcher
}

// New создаёт сессию и подписывает её на гибель игрока и вторжение.
func New(def defs.SessionDefinition, score ScoreSaver, eventDispatcher *event.Dispatcher) *Controller {
	if eventDispatcher == nil {
		panic("eventDispatcher cannot be nil")
	}
	lives := def.StartingLives
	if lives < 0 {
		log.Printf("session: starting_lives=%d is invalid, using 0", lives)
		lives = 0
	}
	c := &Controller{
		lives:           lives,
		respawnDelay:    def.RespawnDelay,
		score:           score,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.PlayerKilled, c)
	eventDispatcher.Subscribe(event.InvasionReached, c)
	return c
}

// SetRespawn задаёт действие, которое выполняется после задержки при гибели игрока.
func (c *Controller) SetRespawn(fn func()) {
	c.respawn = fn
}

// SetWaves подключает источник номера волны для итогов сессии.
func (c *Controller) SetWaves(w WaveCounter) {
	c.waves = w
}

// OnEvent реализует event.Listener.
func (c *Controller) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerKilled:
		c.RespawnOrEndGame(c.respawn)
	case event.InvasionReached:
		c.invaded = true
		c.EndGame()
	}
}

// RespawnOrEndGame тратит жизнь и взводит возрождение; без жизней заканчивает игру.
func (c *Controller) RespawnOrEndGame(respawn func()) {
	if c.ended {
		return
	}
	if c.lives > 0 {
		c.lives--
		c.pendingRespawn = respawn
		c.respawnTimer.Arm(c.respawnDelay)
		return
	}
	c.EndGame()
}

// EndGame сохраняет счёт и объявляет конец сессии. Повторный вызов ничего не делает.
func (c *Controller) EndGame() {
	if c.ended {
		return
	}
	c.ended = true
	c.respawnTimer.Clear()
	c.pendingRespawn = nil

	final := 0
	if c.score != nil {
		if err := c.score.SaveSessionScore(); err != nil {
			log.Printf("Error: session score not saved: %v", err)
		}
		final = c.score.SessionScore()
	}
	wave := 0
	if c.waves != nil {
		wave = c.waves.Wave()
	}
	log.Printf("Session ended: score=%d wave=%d invaded=%v", final, wave, c.invaded)
	c.eventDispatcher.Dispatch(event.Event{
		Type: event.SessionEnded,
		Data: event.SessionEndedData{Score: final, Wave: wave, Invaded: c.invaded},
	})
}

// Update отсчитывает задержку возрождения. На паузе и после конца игры стоит.
func (c *Controller) Update(deltaTime float64) {
	if c.paused || c.ended {
		return
	}
	if !c.respawnTimer.Tick(deltaTime) {
		return
	}
	fn := c.pendingRespawn
	c.pendingRespawn = nil
	if fn != nil {
		fn()
	}
}

func (c *Controller) Pause() {
	if c.paused || c.ended {
		return
	}
	c.paused = true
	c.eventDispatcher.Dispatch(event.Event{Type: event.GamePaused})
}

func (c *Controller) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.eventDispatcher.Dispatch(event.Event{Type: event.GameResumed})
}

func (c *Controller) TogglePause() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

func (c *Controller) IsPaused() bool       { return c.paused }
func (c *Controller) IsEnded() bool        { return c.ended }
func (c *Controller) Invaded() bool        { return c.invaded }
func (c *Controller) Lives() int           { return c.lives }
func (c *Controller) RespawnPending() bool { return c.respawnTimer.Armed() }
