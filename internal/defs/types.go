// internal/defs/types.go
package defs

import "image/color"

// Visuals contains parameters for rendering an entity as a rectangle.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
}

// ProjectileDefinition describes a projectile prototype.
type ProjectileDefinition struct {
	ID        string  `json:"id"`
	Faction   string  `json:"faction"`   // "player" or "invaders"
	Speed     float64 `json:"speed"`     // World units per second
	Direction float64 `json:"direction"` // +1 flies up, -1 flies down
	Visuals   Visuals `json:"visuals"`
}

// RowDefinition is one row of the formation, bottom row first.
type RowDefinition struct {
	ColumnCount int    `json:"column_count"`
	InvaderID   string `json:"invader_id"`
}

// FormationDefinition holds the spawn layout and movement of the invader group.
type FormationDefinition struct {
	Rows              []RowDefinition `json:"rows"`
	Spacing           float64         `json:"spacing"`
	StartX            float64         `json:"start_x"`
	StartY            float64         `json:"start_y"`
	MovementSpeed     float64         `json:"movement_speed"`
	DownwardStep      float64         `json:"downward_step"`
	ScreenEdgePadding float64         `json:"screen_edge_padding"`
	InvasionY         float64         `json:"invasion_y"`
	ShootWait         IntervalRange   `json:"shoot_wait"`
	WaveResetDelay    float64         `json:"wave_reset_delay"`
}

// DifficultyDefinition holds values for difficulty progression.
type DifficultyDefinition struct {
	SpeedIncreasePerKill float64 `json:"speed_increase_per_kill"`
	SpeedIncreasePerWave float64 `json:"speed_increase_per_wave"`
}

// PlayerDefinition describes the player ship.
type PlayerDefinition struct {
	Speed         float64 `json:"speed"`
	ShootInterval float64 `json:"shoot_interval"`
	ProjectileID  string  `json:"projectile_id"`
	SpawnX        float64 `json:"spawn_x"`
	SpawnY        float64 `json:"spawn_y"`
	Visuals       Visuals `json:"visuals"`
}

// SessionDefinition holds lives and respawn pacing.
type SessionDefinition struct {
	StartingLives int     `json:"starting_lives"`
	RespawnDelay  float64 `json:"respawn_delay"`
}

// BlockDefinition describes the row of shield blocks.
type BlockDefinition struct {
	Count          int     `json:"count"`
	Y              float64 `json:"y"`
	ShotsToDestroy int     `json:"shots_to_destroy"`
	Visuals        Visuals `json:"visuals"`
}

// ArenaDefinition is the visible play area in world units.
type ArenaDefinition struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Width of the arena.
func (a ArenaDefinition) Width() float64 { return a.MaxX - a.MinX }

// Height of the arena.
func (a ArenaDefinition) Height() float64 { return a.MaxY - a.MinY }

// Contains reports whether the point lies inside the arena (edges included).
func (a ArenaDefinition) Contains(x, y float64) bool {
	return x >= a.MinX && x <= a.MaxX && y >= a.MinY && y <= a.MaxY
}

// GameDefinition is the root of the definitions file.
type GameDefinition struct {
	Arena         ArenaDefinition        `json:"arena"`
	Formation     FormationDefinition    `json:"formation"`
	Difficulty    DifficultyDefinition   `json:"difficulty"`
	Player        PlayerDefinition       `json:"player"`
	Session       SessionDefinition      `json:"session"`
	Blocks        BlockDefinition        `json:"blocks"`
	Invaders      []InvaderDefinition    `json:"invaders"`
	Projectiles   []ProjectileDefinition `json:"projectiles"`
	PointsPerKill int                    `json:"points_per_kill"` // Used when an invader has no own points

	invaderIndex    map[string]*InvaderDefinition
	projectileIndex map[string]*ProjectileDefinition
}

// Invader returns the invader definition by ID.
func (g *GameDefinition) Invader(id string) (*InvaderDefinition, bool) {
	if g.invaderIndex == nil {
		g.buildIndex()
	}
	def, ok := g.invaderIndex[id]
	return def, ok
}

// Projectile returns the projectile definition by ID.
func (g *GameDefinition) Projectile(id string) (*ProjectileDefinition, bool) {
	if g.projectileIndex == nil {
		g.buildIndex()
	}
	def, ok := g.projectileIndex[id]
	return def, ok
}

func (g *GameDefinition) buildIndex() {
	g.invaderIndex = make(map[string]*InvaderDefinition, len(g.Invaders))
	for i := range g.Invaders {
		g.invaderIndex[g.Invaders[i].ID] = &g.Invaders[i]
	}
	g.projectileIndex = make(map[string]*ProjectileDefinition, len(g.Projectiles))
	for i := range g.Projectiles {
		g.projectileIndex[g.Projectiles[i].ID] = &g.Projectiles[i]
	}
}
