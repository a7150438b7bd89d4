// internal/system/visual_effect.go
package system

import (
	"math"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/event"
)

// SparkRand — источник случайных направлений частиц.
type SparkRand interface {
	Float64() float64
}

// VisualEffectSystem создаёт вспышки на месте убитых захватчиков и доигрывает их.
type VisualEffectSystem struct {
	effects    []*component.Explosion
	rng        SparkRand
	sparkCount int
	sparkSpeed float64
	duration   float64
}

// NewVisualEffectSystem подписывает систему на InvaderKilled.
func NewVisualEffectSystem(eventDispatcher *event.Dispatcher, rng SparkRand, sparkCount int, sparkSpeed, duration float64) *VisualEffectSystem {
	s := &VisualEffectSystem{
		rng:        rng,
		sparkCount: sparkCount,
		sparkSpeed: sparkSpeed,
		duration:   duration,
	}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.InvaderKilled, s)
	}
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.InvaderKilledData)
	if !ok || s.sparkCount <= 0 {
		return
	}
	s.Spawn(data.Position, data)
}

// Spawn добавляет вспышку цвета убитого захватчика.
func (s *VisualEffectSystem) Spawn(pos component.Position, data event.InvaderKilledData) {
	ex := &component.Explosion{
		Position: pos,
		Color:    data.Color,
		Duration: s.duration,
		Sparks:   make([]component.Spark, s.sparkCount),
	}
	for i := range ex.Sparks {
		angle := 2 * math.Pi * float64(i) / float64(s.sparkCount)
		speed := s.sparkSpeed
		if s.rng != nil {
			angle += s.rng.Float64() * 0.5
			speed *= 0.5 + s.rng.Float64()
		}
		ex.Sparks[i].Velocity = component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	}
	s.effects = append(s.effects, ex)
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	alive := s.effects[:0]
	for _, ex := range s.effects {
		ex.Timer += deltaTime
		if ex.Done() {
			continue
		}
		for i := range ex.Sparks {
			ex.Sparks[i].Offset = ex.Sparks[i].Offset.Add(ex.Sparks[i].Velocity.Step(deltaTime))
		}
		alive = append(alive, ex)
	}
	for i := len(alive); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = alive
}

// Effects — активные вспышки.
func (s *VisualEffectSystem) Effects() []*component.Explosion {
	return s.effects
}
