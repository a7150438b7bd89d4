package entity

import (
	"testing"

	"go-space-invaders/internal/types"
)

func TestRegistryIssuesSequentialIDs(t *testing.T) {
	r := NewRegistry()
	seen := make(map[types.EntityID]bool)
	for i := 0; i < 10; i++ {
		id := r.NewEntity()
		if id == types.NoEntity {
			t.Fatalf("Expected non-zero id, got %d", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate id %d", id)
		}
		seen[id] = true
	}
	if r.Issued() != 10 {
		t.Errorf("Expected 10 issued ids, got %d", r.Issued())
	}
}
