// internal/score/manager.go
package score

import (
	"log"

	"go-space-invaders/internal/event"
	"go-space-invaders/internal/leaderboard"
)

// Board — таблица рекордов, куда сохраняется итог сессии.
type Board interface {
	Add(playerName string, score int) (leaderboard.Entry, error)
	Best() (leaderboard.Entry, bool)
}

// Manager считает очки сессии и лучший результат.
type Manager struct {
	sessionScore    int
	highScore       int
	playerName      string
	board           Board
	eventDispatcher *event.Dispatcher
}

// NewManager создаёт счётчик и подписывает его на убийства захватчиков.
// Лучший результат берётся из таблицы рекордов.
func NewManager(board Board, playerName string, eventDispatcher *event.Dispatcher) *Manager {
	if eventDispatcher == nil {
		panic("eventDispatcher cannot be nil")
	}
	m := &Manager{
		playerName:      playerName,
		board:           board,
		eventDispatcher: eventDispatcher,
	}
	if board != nil {
		if best, ok := board.Best(); ok {
			m.highScore = best.Score
		}
	}
	eventDispatcher.Subscribe(event.InvaderKilled, m)
	return m
}

// OnEvent реализует event.Listener.
func (m *Manager) OnEvent(e event.Event) {
	if e.Type != event.InvaderKilled {
		return
	}
	if data, ok := e.Data.(event.InvaderKilledData); ok {
		m.AddPoints(data.Points)
	}
}

// AddPoints прибавляет очки и поднимает рекорд, если он побит.
func (m *Manager) AddPoints(amount int) {
	m.sessionScore += amount
	if m.sessionScore > m.highScore {
		m.highScore = m.sessionScore
	}
	m.eventDispatcher.Dispatch(event.Event{
		Type: event.ScoreChanged,
		Data: event.ScoreData{Score: m.sessionScore, HighScore: m.highScore},
	})
}

// SaveSessionScore записывает счёт сессии в таблицу рекордов.
func (m *Manager) SaveSessionScore() error {
	if m.board == nil {
		return nil
	}
	if _, err := m.board.Add(m.playerName, m.sessionScore); err != nil {
		log.Printf("Error: failed to save score %d: %v", m.sessionScore, err)
		return err
	}
	return nil
}

func (m *Manager) SessionScore() int { return m.sessionScore }
func (m *Manager) HighScore() int    { return m.highScore }
func (m *Manager) PlayerName() string {
	return m.playerName
}
