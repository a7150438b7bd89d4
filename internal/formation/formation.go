// internal/formation/formation.go
package formation

import (
	"fmt"
	"log"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/invader"
	"go-space-invaders/internal/projectile"
	"go-space-invaders/internal/shoot"
	"go-space-invaders/internal/utils"
)

// Rand — источник случайности строя. utils.PRNGService подходит.
type Rand interface {
	Intn(n int) int
	Range(min, max float64) float64
}

// Pauser сообщает, стоит ли игра на паузе.
type Pauser interface {
	IsPaused() bool
}

// State — фаза волны.
type State int

const (
	StateActive    State = iota // строй движется и стреляет
	StateClearing               // все ряды зачищены, ждём задержку перед новой волной
	StateResetting              // задержка вышла, якорь и ряды восстанавливаются
	StateInvaded                // строй дошёл до линии вторжения, конец
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateClearing:
		return "Clearing"
	case StateResetting:
		return "Resetting"
	case StateInvaded:
		return "Invaded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// RowConfig — один ряд: сколько колонок и кем заполнять.
type RowConfig struct {
	ColumnCount int
	Invader     *defs.InvaderDefinition
	Projectile  *projectile.Definition
}

// Config — параметры строя в мировых единицах.
type Config struct {
	Rows              []RowConfig // снизу вверх
	Spacing           float64
	Start             component.Position
	MovementSpeed     float64
	DownwardStep      float64
	ScreenEdgePadding float64
	InvasionY         float64
	MinShootWait      float64
	MaxShootWait      float64
	WaveResetDelay    float64
	LeftEdge          float64
	RightEdge         float64
	PointsPerKill     int
	SpeedPerKill      float64
	SpeedPerWave      float64
}

// ConfigFromDefinition собирает Config из описания игры.
// prototypes — снаряды по ID; ряд с неизвестным захватчиком остаётся без описания
// и пропускается при появлении.
func ConfigFromDefinition(gd *defs.GameDefinition, prototypes map[string]*projectile.Definition) Config {
	fd := gd.Formation
	cfg := Config{
		Spacing:           fd.Spacing,
		Start:             component.Position{X: fd.StartX, Y: fd.StartY},
		MovementSpeed:     fd.MovementSpeed,
		DownwardStep:      fd.DownwardStep,
		ScreenEdgePadding: fd.ScreenEdgePadding,
		InvasionY:         fd.InvasionY,
		MinShootWait:      fd.ShootWait.Min,
		MaxShootWait:      fd.ShootWait.Max,
		WaveResetDelay:    fd.WaveResetDelay,
		LeftEdge:          gd.Arena.MinX,
		RightEdge:         gd.Arena.MaxX,
		PointsPerKill:     gd.PointsPerKill,
		SpeedPerKill:      gd.Difficulty.SpeedIncreasePerKill,
		SpeedPerWave:      gd.Difficulty.SpeedIncreasePerWave,
	}
	for _, rd := range fd.Rows {
		rc := RowConfig{ColumnCount: rd.ColumnCount}
		if def, ok := gd.Invader(rd.InvaderID); ok {
			rc.Invader = def
			rc.Projectile = prototypes[def.ProjectileID]
			if rc.Projectile == nil {
				log.Printf("formation: invader %q has unknown projectile %q, row will not fire", def.ID, def.ProjectileID)
			}
		} else {
			log.Printf("formation: unknown invader %q in row config", rd.InvaderID)
		}
		cfg.Rows = append(cfg.Rows, rc)
	}
	return cfg
}

// Formation — весь строй захватчиков.
// Владеет рядами, направлением движения и позицией якоря; захватчики стоят
// относительно якоря.
type Formation struct {
	cfg             Config
	eventDispatcher *event.Dispatcher
	launcher        shoot.Launcher
	ids             *entity.Registry
	rng             Rand
	clock           utils.Clock
	pauser          Pauser

	rows        []*Row
	anchor      component.Position
	direction   float64
	descents    int
	wave        int
	state       State
	shootWait   float64
	progression *Progression
	resetTimer  utils.Countdown
	spawned     bool
}

// New создаёт строй. Захватчики появляются только после Spawn.
func New(cfg Config, eventDispatcher *event.Dispatcher, launcher shoot.Launcher,
	ids *entity.Registry, rng Rand, clock utils.Clock) *Formation {
	if eventDispatcher == nil {
		panic("eventDispatcher cannot be nil")
	}
	if ids == nil {
		ids = entity.NewRegistry()
	}
	f := &Formation{
		cfg:             cfg,
		eventDispatcher: eventDispatcher,
		launcher:        launcher,
		ids:             ids,
		rng:             rng,
		clock:           clock,
		anchor:          cfg.Start,
		direction:       1,
		wave:            1,
		state:           StateActive,
		progression:     NewProgression(cfg.SpeedPerKill, cfg.SpeedPerWave),
	}
	f.rollShootWait()
	return f
}

// SetPauser подключает источник паузы.
func (f *Formation) SetPauser(p Pauser) {
	f.pauser = p
}

// Spawn расставляет захватчиков. Ряд i стоит на высоте i*spacing от низа строя,
// каждый ряд центрирован по горизонтали. Повторный вызов ничего не делает.
func (f *Formation) Spawn() {
	if f.spawned {
		return
	}
	f.spawned = true

	spacing := f.cfg.Spacing
	groupHeight := spacing * float64(len(f.cfg.Rows)-1)
	if len(f.cfg.Rows) == 0 {
		groupHeight = 0
	}

	for rowIndex, rc := range f.cfg.Rows {
		if rc.ColumnCount <= 0 {
			log.Printf("formation: row %d has %d columns, skipped", rowIndex, rc.ColumnCount)
			continue
		}
		if rc.Invader == nil {
			log.Printf("formation: row %d has no invader definition, skipped", rowIndex)
			continue
		}

		groupWidth := spacing * float64(rc.ColumnCount-1)
		rowX := -groupWidth / 2
		rowY := -groupHeight/2 + float64(rowIndex)*spacing

		row := NewRow(rowIndex, f, f.rng)
		for col := 0; col < rc.ColumnCount; col++ {
			local := component.Position{X: rowX + float64(col)*spacing, Y: rowY}
			u := invader.New(f.ids.NewEntity(), rc.Invader, local, f, f.launcher, rc.Projectile, f.rng)
			row.Register(u)
		}
		f.rows = append(f.rows, row)
	}
	log.Printf("formation: spawned %d rows, %d invaders", len(f.rows), f.AliveCount())
}

// Update продвигает строй на dt секунд: движение, проверка краёв и вторжения, стрельба.
func (f *Formation) Update(dt float64) {
	if f.state == StateInvaded || f.isPaused() {
		return
	}
	if f.state == StateClearing {
		if f.resetTimer.Tick(dt) {
			f.ResetWave()
		}
		return
	}
	if f.state != StateActive {
		return
	}

	f.move(dt)
	if f.state != StateActive {
		return
	}
	f.updateShooting(dt)
}

func (f *Formation) move(dt float64) {
	f.anchor.X += f.cfg.MovementSpeed * f.direction * f.progression.Multiplier() * dt

	right := f.cfg.RightEdge - f.cfg.ScreenEdgePadding
	left := f.cfg.LeftEdge + f.cfg.ScreenEdgePadding
	for _, row := range f.rows {
		if !row.HasAvailableUnit() {
			continue
		}
		if (f.direction > 0 && row.RightmostCrossed(right)) ||
			(f.direction < 0 && row.LeftmostCrossed(left)) {
			f.descend()
			return
		}
	}
}

// descend опускает строй, разворачивает его и проверяет вторжение.
func (f *Formation) descend() {
	f.anchor.Y -= f.cfg.DownwardStep
	f.direction = -f.direction
	f.descents++

	for _, row := range f.rows {
		if !row.HasAvailableUnit() {
			continue
		}
		if row.ReachedInvasionHeight(f.cfg.InvasionY) {
			f.state = StateInvaded
			f.resetTimer.Clear()
			log.Printf("formation: invasion reached at wave %d", f.wave)
			f.eventDispatcher.Dispatch(event.Event{Type: event.InvasionReached, Data: event.WaveData{Wave: f.wave}})
			return
		}
	}
}

func (f *Formation) updateShooting(dt float64) {
	f.shootWait -= dt * f.progression.Multiplier()
	if f.shootWait > 0 {
		return
	}
	f.signalShoot()
	f.rollShootWait()
}

// signalShoot отдаёт приказ стрелять случайному ряду, где есть живые.
func (f *Formation) signalShoot() {
	active := make([]*Row, 0, len(f.rows))
	for _, row := range f.rows {
		if row.HasAvailableUnit() {
			active = append(active, row)
		}
	}
	if len(active) == 0 {
		return
	}
	idx := 0
	if f.rng != nil {
		idx = f.rng.Intn(len(active))
	}
	active[idx].SignalShoot(f.now())
}

func (f *Formation) rollShootWait() {
	if f.rng == nil {
		f.shootWait = f.cfg.MinShootWait
		return
	}
	f.shootWait = f.rng.Range(f.cfg.MinShootWait, f.cfg.MaxShootWait)
}

// OnInvaderKilled реализует RowListener.
func (f *Formation) OnInvaderKilled(row *Row, u *invader.Invader) {
	f.progression.OnKill()

	points := u.Points()
	if points <= 0 {
		points = f.cfg.PointsPerKill
	}
	f.eventDispatcher.Dispatch(event.Event{
		Type: event.InvaderKilled,
		Data: event.InvaderKilledData{
			ID:       u.ID,
			Position: u.Position(),
			Color:    u.Color(),
			Points:   points,
		},
	})
}

// OnRowCleared реализует RowListener. Когда живых не осталось ни в одном ряду,
// волна закрывается и взводится таймер новой волны.
func (f *Formation) OnRowCleared(row *Row) {
	f.eventDispatcher.Dispatch(event.Event{Type: event.RowCleared, Data: event.RowClearedData{RowIndex: row.Index}})

	if f.state != StateActive || f.AliveCount() > 0 {
		return
	}
	f.state = StateClearing
	f.progression.OnWaveCleared()
	log.Printf("formation: wave %d cleared", f.wave)
	f.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: f.wave}})

	f.resetTimer.Arm(f.cfg.WaveResetDelay)
}

// ResetWave возвращает якорь в стартовую точку и оживляет все ряды.
// Отменяет ожидающий таймер; направление движения сохраняется.
func (f *Formation) ResetWave() {
	f.resetTimer.Clear()
	f.state = StateResetting
	f.anchor = f.cfg.Start
	for _, row := range f.rows {
		row.Reset()
	}
	f.wave++
	f.state = StateActive
	f.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: f.wave}})
}

// Position реализует invader.Anchor.
func (f *Formation) Position() component.Position {
	return f.anchor
}

func (f *Formation) Anchor() component.Position { return f.anchor }
func (f *Formation) State() State               { return f.state }
func (f *Formation) Direction() float64         { return f.direction }
func (f *Formation) Descents() int              { return f.descents }
func (f *Formation) Wave() int                  { return f.wave }
func (f *Formation) Rows() []*Row               { return f.rows }
func (f *Formation) Progression() *Progression  { return f.progression }
func (f *Formation) Multiplier() float64        { return f.progression.Multiplier() }
func (f *Formation) ShootWait() float64         { return f.shootWait }
func (f *Formation) ResetPending() bool         { return f.resetTimer.Armed() }

// AliveCount — живые захватчики во всех рядах.
func (f *Formation) AliveCount() int {
	n := 0
	for _, row := range f.rows {
		n += row.AliveCount()
	}
	return n
}

// Each обходит всех захватчиков, включая мёртвых.
func (f *Formation) Each(fn func(*invader.Invader)) {
	for _, row := range f.rows {
		for _, u := range row.Units() {
			fn(u)
		}
	}
}

func (f *Formation) isPaused() bool {
	return f.pauser != nil && f.pauser.IsPaused()
}

func (f *Formation) now() float64 {
	if f.clock == nil {
		return 0
	}
	return f.clock.Now()
}
