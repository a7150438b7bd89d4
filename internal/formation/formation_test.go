package formation

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/invader"
	"go-space-invaders/internal/pool"
	"go-space-invaders/internal/projectile"
)

// firstRand всегда выбирает первый элемент и нижнюю границу диапазона.
type firstRand struct{}

func (firstRand) Intn(n int) int                 { return 0 }
func (firstRand) Range(min, max float64) float64 { return min }

type fixedClock struct{ now float64 }

func (c *fixedClock) Now() float64 { return c.now }

type pauseFlag struct{ paused bool }

func (p *pauseFlag) IsPaused() bool { return p.paused }

type eventLog struct {
	counts map[event.EventType]int
	kills  []event.InvaderKilledData
}

func listen(d *event.Dispatcher) *eventLog {
	l := &eventLog{counts: make(map[event.EventType]int)}
	for _, et := range []event.EventType{
		event.InvaderKilled, event.RowCleared, event.WaveCleared,
		event.WaveStarted, event.InvasionReached,
	} {
		et := et
		d.SubscribeFunc(et, func(e event.Event) {
			l.counts[et]++
			if data, ok := e.Data.(event.InvaderKilledData); ok {
				l.kills = append(l.kills, data)
			}
		})
	}
	return l
}

var squid = &defs.InvaderDefinition{
	ID:            "SQUID",
	Points:        100,
	ShootInterval: defs.IntervalRange{Min: 1, Max: 1},
	Visuals:       defs.Visuals{Width: 0.5, Height: 0.5},
}

func baseConfig(columns ...int) Config {
	cfg := Config{
		Spacing:           1,
		MovementSpeed:     1,
		DownwardStep:      0.5,
		ScreenEdgePadding: 0.5,
		InvasionY:         -100,
		MinShootWait:      100,
		MaxShootWait:      100,
		WaveResetDelay:    2,
		LeftEdge:          -3,
		RightEdge:         3,
		PointsPerKill:     100,
	}
	for _, c := range columns {
		cfg.Rows = append(cfg.Rows, RowConfig{ColumnCount: c, Invader: squid})
	}
	return cfg
}

func newFormation(cfg Config, d *event.Dispatcher) *Formation {
	f := New(cfg, d, nil, entity.NewRegistry(), firstRand{}, &fixedClock{})
	f.Spawn()
	return f
}

func xs(row *Row) []float64 {
	var out []float64
	for _, u := range row.Units() {
		out = append(out, u.Position().X)
	}
	return out
}

func TestSpawnProducesCenteredGrid(t *testing.T) {
	cfg := baseConfig(3, 2, 0)
	cfg.Rows = append(cfg.Rows, RowConfig{ColumnCount: 4})
	f := newFormation(cfg, event.NewDispatcher())

	if len(f.Rows()) != 2 {
		t.Fatalf("Expected 2 spawned rows, got %d", len(f.Rows()))
	}
	if f.AliveCount() != 5 {
		t.Errorf("Expected 5 invaders, got %d", f.AliveCount())
	}

	wantX := [][]float64{{-1, 0, 1}, {-0.5, 0.5}}
	wantY := []float64{-1.5, -0.5}
	seen := make(map[component.Position]bool)
	for i, row := range f.Rows() {
		got := xs(row)
		for j := range wantX[i] {
			if got[j] != wantX[i][j] {
				t.Errorf("Row %d unit %d: expected x=%v, got %v", i, j, wantX[i][j], got[j])
			}
		}
		for _, u := range row.Units() {
			if u.Position().Y != wantY[i] {
				t.Errorf("Row %d: expected y=%v, got %v", i, wantY[i], u.Position().Y)
			}
			if seen[u.Position()] {
				t.Errorf("Duplicate position %+v", u.Position())
			}
			seen[u.Position()] = true
		}
	}
}

func TestSpawnIsIdempotent(t *testing.T) {
	f := newFormation(baseConfig(2), event.NewDispatcher())
	f.Spawn()
	if f.AliveCount() != 2 {
		t.Errorf("Expected 2 invaders after second Spawn, got %d", f.AliveCount())
	}
}

func TestEndToEndWaveCycle(t *testing.T) {
	d := event.NewDispatcher()
	events := listen(d)
	f := newFormation(baseConfig(3), d)

	row := f.Rows()[0]
	got := xs(row)
	if len(got) != 3 || got[0] != -1 || got[1] != 0 || got[2] != 1 {
		t.Fatalf("Expected x positions {-1, 0, 1}, got %v", got)
	}

	units := row.Units()
	units[2].TakeHit()
	units[0].TakeHit()
	units[1].TakeHit()

	if events.counts[event.RowCleared] != 1 {
		t.Errorf("Expected row cleared once, got %d", events.counts[event.RowCleared])
	}
	if events.counts[event.WaveCleared] != 1 {
		t.Errorf("Expected wave cleared once, got %d", events.counts[event.WaveCleared])
	}
	if f.State() != StateClearing {
		t.Fatalf("Expected Clearing while the delay is pending, got %v", f.State())
	}

	f.Update(1)
	if f.AliveCount() != 0 {
		t.Fatal("Wave must not reset before the delay")
	}
	if f.State() != StateClearing {
		t.Errorf("Expected Clearing mid-delay, got %v", f.State())
	}
	f.Update(1)
	if f.State() != StateActive || f.Wave() != 2 {
		t.Fatalf("Expected Active wave 2, got %v wave %d", f.State(), f.Wave())
	}
	if f.AliveCount() != 3 {
		t.Errorf("Expected 3 alive after reset, got %d", f.AliveCount())
	}
	got = xs(row)
	if got[0] != -1 || got[1] != 0 || got[2] != 1 {
		t.Errorf("Expected initial positions after reset, got %v", got)
	}
	if events.counts[event.WaveStarted] != 1 {
		t.Errorf("Expected one WaveStarted, got %d", events.counts[event.WaveStarted])
	}

	// Порог справа: 3 - 0.5 = 2.5.
	startY := f.Anchor().Y
	f.Update(1)
	if f.Direction() != 1 {
		t.Fatal("Direction must not flip before the edge")
	}
	f.Update(0.5)
	if f.Direction() != -1 {
		t.Errorf("Expected direction -1 after crossing, got %v", f.Direction())
	}
	if f.Anchor().Y != startY-0.5 {
		t.Errorf("Expected y=%v after descent, got %v", startY-0.5, f.Anchor().Y)
	}

	reg := pool.NewRegistry[*projectile.Projectile]()
	launcher := projectile.NewLauncher(reg, d)
	bolt := projectile.NewDefinition(defs.ProjectileDefinition{
		ID: "BOLT_INVADER", Faction: defs.FactionInvaders, Speed: 6, Direction: -1,
	}, entity.NewRegistry())
	first, _ := launcher.Launch(bolt, component.Position{})
	second, _ := launcher.Launch(bolt, component.Position{})
	first.Deactivate()
	third, err := launcher.Launch(bolt, component.Position{})
	if err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	if reg.Size() != 2 {
		t.Errorf("Expected pool size 2, got %d", reg.Size())
	}
	if third != first || third == second {
		t.Error("Expected the deactivated instance to be reused")
	}
}

func TestRepeatedFlipsDescendByStep(t *testing.T) {
	cfg := baseConfig(1)
	cfg.LeftEdge, cfg.RightEdge = -1, 1
	cfg.ScreenEdgePadding = 0
	cfg.DownwardStep = 0.25
	f := newFormation(cfg, event.NewDispatcher())

	for i := 0; i < 5; i++ {
		f.Update(1)
	}
	if f.Descents() != 3 {
		t.Fatalf("Expected 3 flips, got %d", f.Descents())
	}
	if f.Anchor().Y != -0.75 {
		t.Errorf("Expected y=-0.75, got %v", f.Anchor().Y)
	}
	if f.Direction() != -1 {
		t.Errorf("Expected direction -1 after odd flips, got %v", f.Direction())
	}
}

func TestInvasionHaltsFormation(t *testing.T) {
	d := event.NewDispatcher()
	events := listen(d)
	cfg := baseConfig(1)
	cfg.LeftEdge, cfg.RightEdge = -1, 1
	cfg.ScreenEdgePadding = 0
	cfg.DownwardStep = 1
	cfg.InvasionY = -0.5
	f := newFormation(cfg, d)

	f.Update(1)
	if f.State() != StateInvaded {
		t.Fatalf("Expected Invaded, got %v", f.State())
	}
	anchor := f.Anchor()
	f.Update(1)
	f.Update(1)
	if f.Anchor() != anchor {
		t.Error("Invaded formation must not move")
	}
	if events.counts[event.InvasionReached] != 1 {
		t.Errorf("Expected one InvasionReached, got %d", events.counts[event.InvasionReached])
	}
}

func TestPausedFormationDoesNotMove(t *testing.T) {
	f := newFormation(baseConfig(1), event.NewDispatcher())
	p := &pauseFlag{paused: true}
	f.SetPauser(p)

	f.Update(1)
	if f.Anchor().X != 0 {
		t.Errorf("Expected no movement while paused, got x=%v", f.Anchor().X)
	}
	p.paused = false
	f.Update(1)
	if f.Anchor().X != 1 {
		t.Errorf("Expected x=1 after resume, got %v", f.Anchor().X)
	}
}

type recordingLauncher struct{ shots int }

func (l *recordingLauncher) Launch(p *projectile.Definition, origin component.Position) (*projectile.Projectile, error) {
	l.shots++
	return &projectile.Projectile{Def: p}, nil
}

func TestShootWaitSignalsRow(t *testing.T) {
	cfg := baseConfig(2)
	cfg.MinShootWait, cfg.MaxShootWait = 1, 1
	cfg.MovementSpeed = 0
	cfg.Rows[0].Projectile = &projectile.Definition{Name: "BOLT", Speed: 1, Direction: -1}
	l := &recordingLauncher{}
	f := New(cfg, event.NewDispatcher(), l, entity.NewRegistry(), firstRand{}, &fixedClock{now: 10})
	f.Spawn()

	f.Update(0.5)
	if l.shots != 0 {
		t.Fatalf("Expected no shot before the wait elapses, got %d", l.shots)
	}
	f.Update(0.5)
	if l.shots != 1 {
		t.Errorf("Expected 1 shot, got %d", l.shots)
	}
	if f.ShootWait() != 1 {
		t.Errorf("Expected shoot wait re-rolled to 1, got %v", f.ShootWait())
	}
}

func TestEmptyFormationNeverClearsOrInvades(t *testing.T) {
	d := event.NewDispatcher()
	events := listen(d)
	cfg := baseConfig()
	cfg.MinShootWait, cfg.MaxShootWait = 0.1, 0.1
	f := newFormation(cfg, d)

	for i := 0; i < 50; i++ {
		f.Update(1)
	}
	if f.State() != StateActive {
		t.Errorf("Expected Active, got %v", f.State())
	}
	if len(events.counts) != 0 {
		t.Errorf("Expected no events, got %v", events.counts)
	}
}

func TestKillEventCarriesPointsAndProgression(t *testing.T) {
	d := event.NewDispatcher()
	events := listen(d)
	cfg := baseConfig(2)
	cfg.SpeedPerKill = 0.25
	cfg.SpeedPerWave = 0.5
	cfg.PointsPerKill = 40
	cfg.Rows[0].Invader = &defs.InvaderDefinition{ID: "FREE"}
	f := newFormation(cfg, d)

	f.Rows()[0].Units()[0].TakeHit()
	if len(events.kills) != 1 || events.kills[0].Points != 40 {
		t.Fatalf("Expected fallback points 40, got %+v", events.kills)
	}
	if events.kills[0].Position.X != -0.5 {
		t.Errorf("Expected last position x=-0.5, got %v", events.kills[0].Position.X)
	}
	if f.Multiplier() != 1.25 {
		t.Errorf("Expected multiplier 1.25, got %v", f.Multiplier())
	}

	f.Rows()[0].Units()[1].TakeHit()
	if f.Multiplier() != 1.5 {
		t.Errorf("Expected multiplier 1.5 after wave clear, got %v", f.Multiplier())
	}
}

func TestKillSpeedsUpMovementAndShooting(t *testing.T) {
	cfg := baseConfig(2)
	cfg.SpeedPerKill = 0.5
	f := newFormation(cfg, event.NewDispatcher())

	f.Rows()[0].Units()[0].TakeHit()
	startX := f.Anchor().X
	wait := f.ShootWait()

	f.Update(1)
	if moved := f.Anchor().X - startX; moved != 1.5 {
		t.Errorf("Expected anchor to move 1.5, got %v", moved)
	}
	if dropped := wait - f.ShootWait(); dropped != 1.5 {
		t.Errorf("Expected shoot wait to drop by 1.5, got %v", dropped)
	}
}

func TestResetWaveCancelsPendingCountdown(t *testing.T) {
	d := event.NewDispatcher()
	events := listen(d)
	f := newFormation(baseConfig(1), d)

	f.Rows()[0].Units()[0].TakeHit()
	if !f.ResetPending() {
		t.Fatal("Expected a pending reset after clearing the wave")
	}
	f.ResetWave()
	if f.ResetPending() {
		t.Error("ResetWave must cancel the pending countdown")
	}
	if f.State() != StateActive {
		t.Errorf("Expected Active after ResetWave, got %v", f.State())
	}
	f.Update(5)
	if events.counts[event.WaveStarted] != 1 {
		t.Errorf("Expected a single WaveStarted, got %d", events.counts[event.WaveStarted])
	}
}

func TestEachVisitsAllInvaders(t *testing.T) {
	f := newFormation(baseConfig(3, 2), event.NewDispatcher())
	n := 0
	f.Each(func(*invader.Invader) { n++ })
	if n != 5 {
		t.Errorf("Expected 5 invaders, got %d", n)
	}
}

func TestConfigFromDefinitionLogsMissingProjectile(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	gd := defs.DefaultGameDefinition()
	cfg := ConfigFromDefinition(gd, map[string]*projectile.Definition{})

	if len(cfg.Rows) != len(gd.Formation.Rows) {
		t.Fatalf("Expected %d rows, got %d", len(gd.Formation.Rows), len(cfg.Rows))
	}
	for i, rc := range cfg.Rows {
		if rc.Invader == nil {
			t.Errorf("Row %d: expected invader definition to be resolved", i)
		}
		if rc.Projectile != nil {
			t.Errorf("Row %d: expected no projectile prototype", i)
		}
	}
	if !strings.Contains(buf.String(), "unknown projectile") {
		t.Errorf("Expected a log line about the unknown projectile, got %q", buf.String())
	}
}
