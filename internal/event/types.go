// internal/event/types.go
package event

import (
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/types"
)

const (
	InvaderKilled   EventType = "InvaderKilled"   // Захватчик уничтожен (триггер эффекта взрыва и очков)
	RowCleared      EventType = "RowCleared"      // В ряду не осталось живых
	WaveCleared     EventType = "WaveCleared"     // Волна полностью уничтожена
	WaveStarted     EventType = "WaveStarted"     // Строй восстановлен, новая волна
	InvasionReached EventType = "InvasionReached" // Строй опустился до линии вторжения
	ShotFired       EventType = "ShotFired"       // Снаряд выпущен
	PlayerKilled    EventType = "PlayerKilled"
	PlayerRespawned EventType = "PlayerRespawned"
	BlockDamaged    EventType = "BlockDamaged"
	BlockDestroyed  EventType = "BlockDestroyed"
	ScoreChanged    EventType = "ScoreChanged"
	GamePaused      EventType = "GamePaused"
	GameResumed     EventType = "GameResumed"
	SessionEnded    EventType = "SessionEnded" // Сессия окончена, счёт сохранён
)

// InvaderKilledData — последнее известное состояние убитого захватчика.
type InvaderKilledData struct {
	ID       types.EntityID
	Position component.Position
	Color    color.RGBA
	Points   int
}

// RowClearedData — индекс ряда в конфигурации строя.
type RowClearedData struct {
	RowIndex int
}

// WaveData — номер волны.
type WaveData struct {
	Wave int
}

// ShotFiredData — кто и откуда выстрелил.
type ShotFiredData struct {
	ProjectileID types.EntityID
	Faction      component.Faction
	Origin       component.Position
}

// BlockData — состояние блока после попадания.
type BlockData struct {
	ID    types.EntityID
	Scale float64
}

// ScoreData — текущий и лучший счёт.
type ScoreData struct {
	Score     int
	HighScore int
}

// SessionEndedData — итог сессии.
type SessionEndedData struct {
	Score   int
	Wave    int
	Invaded bool
}

// PlayerData — игрок в момент гибели или появления.
type PlayerData struct {
	ID       types.EntityID
	Position component.Position
}
