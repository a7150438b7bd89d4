package block

import (
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
)

func TestBlockShrinksAndDeactivates(t *testing.T) {
	d := event.NewDispatcher()
	damaged, destroyed := 0, 0
	d.SubscribeFunc(event.BlockDamaged, func(event.Event) { damaged++ })
	d.SubscribeFunc(event.BlockDestroyed, func(event.Event) { destroyed++ })

	b := New(1, component.Position{}, defs.BlockDefinition{
		ShotsToDestroy: 4,
		Visuals:        defs.Visuals{Width: 2, Height: 1},
	}, d)

	b.TakeHit()
	if b.Scale() != 0.75 {
		t.Errorf("Expected scale 0.75, got %v", b.Scale())
	}
	w, h := b.Size()
	if w != 1.5 || h != 0.75 {
		t.Errorf("Expected size 1.5x0.75, got %vx%v", w, h)
	}

	for i := 0; i < 3; i++ {
		b.TakeHit()
	}
	if b.IsActive() {
		t.Error("Expected block to be destroyed after 4 hits")
	}
	if b.Scale() != 0 {
		t.Errorf("Expected scale 0, got %v", b.Scale())
	}
	b.TakeHit()
	if damaged != 3 || destroyed != 1 {
		t.Errorf("Expected 3 damaged and 1 destroyed, got %d and %d", damaged, destroyed)
	}
}

func TestTenShotsDestroyExactly(t *testing.T) {
	b := New(1, component.Position{}, defs.BlockDefinition{ShotsToDestroy: 10}, nil)
	for i := 0; i < 9; i++ {
		b.TakeHit()
	}
	if !b.IsActive() {
		t.Fatal("Block must survive 9 of 10 shots")
	}
	b.TakeHit()
	if b.IsActive() {
		t.Error("Block must be destroyed by the 10th shot")
	}
}

func TestInvalidShotsTreatedAsOne(t *testing.T) {
	b := New(1, component.Position{}, defs.BlockDefinition{ShotsToDestroy: 0}, nil)
	b.TakeHit()
	if b.IsActive() {
		t.Error("Expected a single hit to destroy the block")
	}
	b.Reset()
	if !b.IsActive() || b.Scale() != 1 {
		t.Error("Expected Reset to restore the block")
	}
}

func TestLayoutSpreadsBlocks(t *testing.T) {
	arena := defs.ArenaDefinition{MinX: -8, MaxX: 8, MinY: -7, MaxY: 7}
	blocks := Layout(defs.BlockDefinition{Count: 4, Y: -4, ShotsToDestroy: 10}, arena, entity.NewRegistry(), nil)
	if len(blocks) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(blocks))
	}
	want := []float64{-6, -2, 2, 6}
	for i, b := range blocks {
		if b.Position.X != want[i] || b.Position.Y != -4 {
			t.Errorf("Block %d: expected (%v, -4), got %+v", i, want[i], b.Position)
		}
	}
	if blocks[0].ID == blocks[1].ID {
		t.Error("Expected unique block IDs")
	}
}
