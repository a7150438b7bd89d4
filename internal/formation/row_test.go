package formation

import (
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/invader"
)

type rowRecorder struct {
	kills   int
	cleared int
}

func (r *rowRecorder) OnInvaderKilled(row *Row, inv *invader.Invader) { r.kills++ }
func (r *rowRecorder) OnRowCleared(row *Row)                          { r.cleared++ }

func newTestRow(listener RowListener, xs ...float64) *Row {
	row := NewRow(0, listener, firstRand{})
	for _, x := range xs {
		row.Register(invader.New(0, squid, component.Position{X: x}, nil, nil, nil, firstRand{}))
	}
	return row
}

func TestRowClearedOnceInAnyOrder(t *testing.T) {
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {1, 2, 0}}
	for _, order := range orders {
		rec := &rowRecorder{}
		row := newTestRow(rec, -1, 0, 1)
		for _, i := range order {
			row.Units()[i].TakeHit()
			row.Units()[i].TakeHit()
		}
		if rec.cleared != 1 {
			t.Errorf("Order %v: expected 1 clear, got %d", order, rec.cleared)
		}
		if rec.kills != 3 {
			t.Errorf("Order %v: expected 3 kills, got %d", order, rec.kills)
		}
	}
}

func TestRowResetAllowsNextClear(t *testing.T) {
	rec := &rowRecorder{}
	row := newTestRow(rec, 0, 1)
	for _, u := range row.Units() {
		u.TakeHit()
	}
	row.Reset()
	if row.AliveCount() != 2 {
		t.Fatalf("Expected 2 alive after reset, got %d", row.AliveCount())
	}
	for _, u := range row.Units() {
		u.TakeHit()
	}
	if rec.cleared != 2 {
		t.Errorf("Expected 2 clears across two waves, got %d", rec.cleared)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	rec := &rowRecorder{}
	row := newTestRow(rec, 0)
	u := row.Units()[0]
	row.Register(u)
	if len(row.Units()) != 1 {
		t.Errorf("Expected 1 unit, got %d", len(row.Units()))
	}
	u.TakeHit()
	if rec.kills != 1 {
		t.Errorf("Expected a single kill notification, got %d", rec.kills)
	}
}

func TestBoundaryChecksSkipDeadUnits(t *testing.T) {
	row := newTestRow(nil, -2, 0, 2)
	if !row.LeftmostCrossed(-2) || !row.RightmostCrossed(2) {
		t.Fatal("Expected both edges crossed with all alive")
	}
	row.Units()[0].TakeHit()
	row.Units()[2].TakeHit()
	if row.LeftmostCrossed(-1) {
		t.Error("Dead leftmost must be ignored")
	}
	if row.RightmostCrossed(1) {
		t.Error("Dead rightmost must be ignored")
	}
	if !row.LeftmostCrossed(0) || !row.RightmostCrossed(0) {
		t.Error("Remaining unit should define both edges")
	}
}

func TestInvasionHeightIgnoresDead(t *testing.T) {
	row := NewRow(0, nil, firstRand{})
	low := invader.New(0, squid, component.Position{Y: -5}, nil, nil, nil, nil)
	high := invader.New(0, squid, component.Position{Y: 0}, nil, nil, nil, nil)
	row.Register(low)
	row.Register(high)

	if !row.ReachedInvasionHeight(-4) {
		t.Error("Expected invasion with a low alive unit")
	}
	low.TakeHit()
	if row.ReachedInvasionHeight(-4) {
		t.Error("Dead units must not count for invasion")
	}
}

func TestSignalShootOnEmptyRow(t *testing.T) {
	row := NewRow(0, nil, firstRand{})
	if row.SignalShoot(1) {
		t.Error("Empty row must not shoot")
	}
	if row.HasAvailableUnit() || row.LeftmostCrossed(0) || row.RightmostCrossed(0) {
		t.Error("Empty row must report no units")
	}
}
