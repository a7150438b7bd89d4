package formation

// Progression — ускорение строя по ходу игры.
// waveBonus копится между волнами, killBonus обнуляется на каждой зачищенной волне.
type Progression struct {
	perKill   float64
	perWave   float64
	waveBonus float64
	killBonus float64
}

func NewProgression(perKill, perWave float64) *Progression {
	return &Progression{perKill: perKill, perWave: perWave}
}

// OnKill — захватчик убит.
func (p *Progression) OnKill() {
	p.killBonus += p.perKill
}

// OnWaveCleared — волна зачищена: бонус волны растёт, бонус убийств сгорает.
func (p *Progression) OnWaveCleared() {
	p.waveBonus += p.perWave
	p.killBonus = 0
}

// Multiplier = 1 + waveBonus + killBonus. Применяется к скорости и темпу стрельбы.
func (p *Progression) Multiplier() float64 {
	return 1 + p.waveBonus + p.killBonus
}

func (p *Progression) WaveBonus() float64 { return p.waveBonus }
func (p *Progression) KillBonus() float64 { return p.killBonus }
