package defs

// InvaderDefinition holds all the static data for a specific kind of invader.
type InvaderDefinition struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Points        int           `json:"points"`
	ProjectileID  string        `json:"projectile_id"`
	ShootInterval IntervalRange `json:"shoot_interval"` // Per-invader cooldown, re-rolled after every shot
	Visuals       Visuals       `json:"visuals"`
}

// IntervalRange is a closed range of seconds a random interval is drawn from.
type IntervalRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Valid reports whether the range is usable.
func (r IntervalRange) Valid() bool {
	return r.Min >= 0 && r.Max >= r.Min
}
