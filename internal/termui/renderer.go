// internal/termui/renderer.go
package termui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/leaderboard"
	"go-space-invaders/pkg/utils"
	"go-space-invaders/pkg/viewport"
)

const (
	blockRune = '█'
	sparkRune = '*'
	lineRune  = '-'
)

// Renderer рисует сессию в ячейках терминала. Верхняя строка занята HUD.
type Renderer struct {
	screen tcell.Screen
	view   *viewport.Viewport
	width  int
	height int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	if screen == nil {
		panic("screen cannot be nil")
	}
	return &Renderer{screen: screen}
}

// Resize перестраивает вид под текущий размер экрана.
func (r *Renderer) Resize(g *app.Game) {
	r.width, r.height = r.screen.Size()
	r.view = viewport.Fit(g.Def.Arena, float64(r.width), float64(r.height-1), 0, 1)
}

// Cell — ячейка, в которую попадает мировая точка.
func (r *Renderer) Cell(p component.Position) (int, int) {
	x, y := r.view.ToScreen(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 1 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// fillRect закрашивает ячейки прямоугольника; минимум одна ячейка.
func (r *Renderer) fillRect(center component.Position, w, h float64, style tcell.Style) {
	x, y, sw, sh := r.view.Rect(center, w, h)
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+sw)), int(math.Ceil(y+sh))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r.set(cx, cy, blockRune, style)
		}
	}
}

// DrawText пишет строку начиная с (x, y); строка 0 доступна только тут.
func (r *Renderer) DrawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= 0 && x < r.width && y >= 0 && y < r.height {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	r.DrawText((r.width-len([]rune(s)))/2, y, s, style)
}

// Draw — полный кадр сессии.
func (r *Renderer) Draw(g *app.Game, entries []leaderboard.Entry) {
	if r.view == nil {
		r.Resize(g)
	}
	r.screen.Clear()

	_, lineY := r.Cell(component.Position{X: 0, Y: g.Def.Formation.InvasionY})
	lineStyle := styleFor(config.InvasionColor)
	for x := 0; x < r.width; x++ {
		r.set(x, lineY, lineRune, lineStyle)
	}

	for _, s := range g.Sprites() {
		r.fillRect(s.Position, s.Width, s.Height, styleFor(s.Color))
	}
	for _, ex := range g.Effects() {
		style := styleFor(ex.Color)
		for _, sp := range ex.Sparks {
			x, y := r.Cell(ex.Position.Add(sp.Offset))
			r.set(x, y, sparkRune, style)
		}
	}

	hud := g.HUD()
	r.DrawText(0, 0, fmt.Sprintf("SCORE %06d  HI %06d  LIVES %d", hud.Score, hud.HighScore, hud.Lives), styleFor(config.TextLightColor))
	wave := "WAVE " + utils.ToRoman(hud.Wave)
	r.DrawText(r.width-len(wave), 0, wave, styleFor(config.WaveColor))

	mid := r.height / 2
	switch {
	case hud.Over:
		title := "GAME OVER"
		if hud.Invaded {
			title = "INVADED"
		}
		r.drawCentered(mid-2, title, styleFor(config.BossWaveColor))
		for i, e := range entries {
			r.drawCentered(mid+i, fmt.Sprintf("%d. %-10s %6d", i+1, e.PlayerName, e.Score), styleFor(config.HighScoreColor))
		}
		r.drawCentered(mid+len(entries)+1, "ENTER restart   Q quit", styleFor(config.TextDimColor))
	case hud.Paused:
		r.drawCentered(mid, "PAUSED", styleFor(config.TextLightColor))
		r.drawCentered(mid+1, "P resume   Q quit", styleFor(config.TextDimColor))
	}

	r.screen.Show()
}
