// internal/block/block.go
package block

import (
	"image/color"
	"log"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
)

// Block — защитный блок. Каждое попадание уменьшает его на 1/shotsToDestroy,
// после последнего блок выключается.
type Block struct {
	ID       types.EntityID
	Position component.Position

	visuals         defs.Visuals
	shotsToDestroy  int
	hits            int
	active          bool
	eventDispatcher *event.Dispatcher
}

// New создаёт целый блок. shotsToDestroy <= 0 считается ошибкой конфигурации и заменяется на 1.
func New(id types.EntityID, pos component.Position, def defs.BlockDefinition, eventDispatcher *event.Dispatcher) *Block {
	shots := def.ShotsToDestroy
	if shots <= 0 {
		log.Printf("block: shots_to_destroy=%d is invalid, using 1", shots)
		shots = 1
	}
	return &Block{
		ID:              id,
		Position:        pos,
		visuals:         def.Visuals,
		shotsToDestroy:  shots,
		active:          true,
		eventDispatcher: eventDispatcher,
	}
}

// Layout расставляет def.Count блоков равномерно по ширине арены на высоте def.Y.
func Layout(def defs.BlockDefinition, arena defs.ArenaDefinition, ids *entity.Registry, eventDispatcher *event.Dispatcher) []*Block {
	if def.Count <= 0 {
		return nil
	}
	blocks := make([]*Block, 0, def.Count)
	slot := arena.Width() / float64(def.Count)
	for i := 0; i < def.Count; i++ {
		pos := component.Position{X: arena.MinX + (float64(i)+0.5)*slot, Y: def.Y}
		blocks = append(blocks, New(ids.NewEntity(), pos, def, eventDispatcher))
	}
	return blocks
}

// TakeHit реализует component.BulletTaker.
func (b *Block) TakeHit() {
	if !b.active {
		return
	}
	b.hits++
	if b.Progress() >= 1 {
		b.active = false
		b.dispatch(event.BlockDestroyed)
		return
	}
	b.dispatch(event.BlockDamaged)
}

// Progress — доля разрушения в [0, 1].
func (b *Block) Progress() float64 {
	p := float64(b.hits) / float64(b.shotsToDestroy)
	if p > 1 {
		return 1
	}
	return p
}

// Scale — текущий масштаб относительно исходного размера.
func (b *Block) Scale() float64 {
	return utils.Lerp(1, 0, b.Progress())
}

// Size — размер с учётом масштаба.
func (b *Block) Size() (float64, float64) {
	s := b.Scale()
	return b.visuals.Width * s, b.visuals.Height * s
}

func (b *Block) Center() component.Position {
	return b.Position
}

func (b *Block) Color() color.RGBA {
	return b.visuals.Color
}

func (b *Block) IsActive() bool {
	return b.active
}

// Reset восстанавливает блок целиком.
func (b *Block) Reset() {
	b.hits = 0
	b.active = true
}

func (b *Block) dispatch(t event.EventType) {
	if b.eventDispatcher == nil {
		return
	}
	b.eventDispatcher.Dispatch(event.Event{Type: t, Data: event.BlockData{ID: b.ID, Scale: b.Scale()}})
}
