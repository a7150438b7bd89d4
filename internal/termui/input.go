// internal/termui/input.go
package termui

import (
	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/player"
)

// Action — что означает нажатая клавиша.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionQuit
	ActionConfirm
)

// KeyAction переводит событие клавиатуры в действие.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return ActionLeft
		case 'd', 'D', 'l':
			return ActionRight
		case ' ':
			return ActionFire
		case 'p', 'P':
			return ActionPause
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// Latch держит нажатие активным hold секунд.
// Терминал не сообщает об отпускании клавиши, только повторы.
type Latch struct {
	hold      float64
	remaining float64
}

func NewLatch(hold float64) *Latch {
	return &Latch{hold: hold}
}

func (l *Latch) Press() {
	l.remaining = l.hold
}

func (l *Latch) Release() {
	l.remaining = 0
}

func (l *Latch) Tick(dt float64) {
	if l.remaining > 0 {
		l.remaining -= dt
	}
}

func (l *Latch) Held() bool {
	return l.remaining > 0
}

// Controls собирает player.Input из потока нажатий.
type Controls struct {
	left, right, fire *Latch
}

func NewControls(hold float64) *Controls {
	return &Controls{left: NewLatch(hold), right: NewLatch(hold), fire: NewLatch(hold)}
}

// Apply запоминает действие движения или стрельбы.
func (c *Controls) Apply(a Action) {
	switch a {
	case ActionLeft:
		c.left.Press()
		c.right.Release()
	case ActionRight:
		c.right.Press()
		c.left.Release()
	case ActionFire:
		c.fire.Press()
	}
}

// Input — ввод на этот кадр; затем защёлки стареют на dt.
func (c *Controls) Input(dt float64) player.Input {
	var in player.Input
	if c.left.Held() {
		in.Axis--
	}
	if c.right.Held() {
		in.Axis++
	}
	in.Fire = c.fire.Held()
	c.left.Tick(dt)
	c.right.Tick(dt)
	c.fire.Tick(dt)
	return in
}

// Reset отпускает всё.
func (c *Controls) Reset() {
	c.left.Release()
	c.right.Release()
	c.fire.Release()
}
