// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-space-invaders/internal/block"
	"go-space-invaders/internal/collision"
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/formation"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/invader"
	"go-space-invaders/internal/leaderboard"
	"go-space-invaders/internal/player"
	"go-space-invaders/internal/pool"
	"go-space-invaders/internal/projectile"
	"go-space-invaders/internal/score"
	"go-space-invaders/internal/session"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/utils"
)

var _ interfaces.ScoreKeeper = (*score.Manager)(nil)

// Options — всё, что нужно для новой сессии.
type Options struct {
	Def         *defs.GameDefinition
	Leaderboard *leaderboard.Store // nil — без сохранения рекордов
	PlayerName  string
	Seed        int64
}

// Next — опции следующей сессии: тот же набор, другое зерно.
func (o Options) Next() Options {
	o.Seed++
	return o
}

// Game держит состояние одной игровой сессии и связывает все системы.
type Game struct {
	Def             *defs.GameDefinition
	EventDispatcher *event.Dispatcher
	Clock           *utils.GameClock
	Rng             *utils.PRNGService
	IDs             *entity.Registry

	Projectiles      *pool.Registry[*projectile.Projectile]
	Launcher         *projectile.Launcher
	Prototypes       map[string]*projectile.Definition
	ProjectileSystem *system.ProjectileSystem
	EffectSystem     *system.VisualEffectSystem

	Formation  *formation.Formation
	Player     *player.Player
	Blocks     []*block.Block
	Collisions *collision.World

	Score       *score.Manager
	Leaderboard *leaderboard.Store
	Session     *session.Controller
}

// NewGame собирает сессию по описанию игры.
func NewGame(opts Options) (*Game, error) {
	def := opts.Def
	if def == nil {
		def = defs.DefaultGameDefinition()
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	eventDispatcher := event.NewDispatcher()
	ids := entity.NewRegistry()
	rng := utils.NewPRNGService(opts.Seed)
	clock := utils.NewGameClock()
	projectiles := pool.NewRegistry[*projectile.Projectile]()

	g := &Game{
		Def:              def,
		EventDispatcher:  eventDispatcher,
		Clock:            clock,
		Rng:              rng,
		IDs:              ids,
		Projectiles:      projectiles,
		Launcher:         projectile.NewLauncher(projectiles, eventDispatcher),
		Prototypes:       make(map[string]*projectile.Definition, len(def.Projectiles)),
		ProjectileSystem: system.NewProjectileSystem(projectiles, def.Arena),
		Leaderboard:      opts.Leaderboard,
	}
	for _, pd := range def.Projectiles {
		g.Prototypes[pd.ID] = projectile.NewDefinition(pd, ids)
	}

	playerBolt, ok := g.Prototypes[def.Player.ProjectileID]
	if !ok {
		return nil, fmt.Errorf("new game: %w: player projectile %q", defs.ErrInvalidDefinition, def.Player.ProjectileID)
	}

	// Счёт подписывается на убийства раньше эффектов: порядок подписки = порядок вызова
	var board score.Board
	if opts.Leaderboard != nil {
		board = opts.Leaderboard
	}
	g.Score = score.NewManager(board, opts.PlayerName, eventDispatcher)
	g.EffectSystem = system.NewVisualEffectSystem(eventDispatcher, rng,
		config.DeathParticleCount, config.SparkSpeed, config.ExplosionDuration)

	g.Formation = formation.New(formation.ConfigFromDefinition(def, g.Prototypes),
		eventDispatcher, g.Launcher, ids, rng, clock)
	g.Player = player.New(ids.NewEntity(), def.Player, def.Arena, g.Launcher, playerBolt, eventDispatcher)
	g.Blocks = block.Layout(def.Blocks, def.Arena, ids, eventDispatcher)

	g.Session = session.New(def.Session, g.Score, eventDispatcher)
	g.Session.SetRespawn(g.Player.Respawn)
	g.Session.SetWaves(g.Formation)
	g.Formation.SetPauser(g.Session)

	g.Formation.Spawn()

	g.Collisions = collision.NewWorld(def.Arena, config.CollisionScale, projectiles)
	g.Formation.Each(func(inv *invader.Invader) {
		g.Collisions.AddTarget(collision.KindInvader, inv)
	})
	for _, b := range g.Blocks {
		g.Collisions.AddTarget(collision.KindBlock, b)
	}
	g.Collisions.AddTarget(collision.KindPlayer, g.Player)

	log.Printf("New game: %d invaders, %d blocks, %d lives", g.Formation.AliveCount(), len(g.Blocks), g.Session.Lives())
	return g, nil
}

// Update продвигает сессию на один тик.
// Порядок: часы, игрок, строй, снаряды, попадания, отложенные действия сессии.
func (g *Game) Update(deltaTime float64, in player.Input) {
	if g.Session.IsEnded() || g.Session.IsPaused() {
		return
	}
	g.Clock.Advance(deltaTime)
	g.Player.Update(in, deltaTime, g.Clock.Now())
	g.Formation.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.Collisions.Resolve()
	g.EffectSystem.Update(deltaTime)
	g.Session.Update(deltaTime)
}

// TogglePause ставит или снимает паузу.
func (g *Game) TogglePause() {
	g.Session.TogglePause()
}

func (g *Game) IsPaused() bool { return g.Session.IsPaused() }
func (g *Game) IsOver() bool   { return g.Session.IsEnded() }

// HUD — то, что показывается в строке состояния.
type HUD struct {
	Score     int
	HighScore int
	Lives     int
	Wave      int
	Paused    bool
	Over      bool
	Invaded   bool
}

func (g *Game) HUD() HUD {
	return HUD{
		Score:     g.Score.SessionScore(),
		HighScore: g.Score.HighScore(),
		Lives:     g.Session.Lives(),
		Wave:      g.Formation.Wave(),
		Paused:    g.Session.IsPaused(),
		Over:      g.Session.IsEnded(),
		Invaded:   g.Session.Invaded(),
	}
}

// Sprite — прямоугольник для отрисовки; Position — центр.
type Sprite struct {
	Position component.Position
	component.Renderable
}

// Sprites собирает всё видимое: блоки, захватчиков, игрока, снаряды.
func (g *Game) Sprites() []Sprite {
	sprites := make([]Sprite, 0, g.Formation.AliveCount()+len(g.Blocks)+8)
	for _, b := range g.Blocks {
		if !b.IsActive() {
			continue
		}
		w, h := b.Size()
		sprites = append(sprites, Sprite{b.Position, component.Renderable{Color: b.Color(), Width: w, Height: h}})
	}
	g.Formation.Each(func(inv *invader.Invader) {
		if !inv.IsAlive() {
			return
		}
		w, h := inv.Size()
		sprites = append(sprites, Sprite{inv.Position(), component.Renderable{Color: inv.Color(), Width: w, Height: h}})
	})
	if g.Player.IsAlive() {
		w, h := g.Player.Size()
		sprites = append(sprites, Sprite{g.Player.Position, component.Renderable{Color: g.Player.Color(), Width: w, Height: h}})
	}
	g.Projectiles.Each(func(p *projectile.Projectile) {
		if !p.IsActive() {
			return
		}
		w, h := p.Size()
		sprites = append(sprites, Sprite{p.Position, component.Renderable{Color: p.Color(), Width: w, Height: h}})
	})
	return sprites
}

// Effects — активные вспышки для отрисовки.
func (g *Game) Effects() []*component.Explosion {
	return g.EffectSystem.Effects()
}
