package component

// Faction определяет, чьи снаряды в кого могут попасть.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionInvaders
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionInvaders:
		return "invaders"
	default:
		return "unknown"
	}
}

// BulletTaker — всё, что может принять попадание снаряда.
// Захватчик и игрок умирают от одного попадания, блок уменьшается.
type BulletTaker interface {
	TakeHit()
}
