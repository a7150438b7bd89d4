// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 760
	HUDHeight    = 60
	MaxDeltaTime = 0.06

	PixelsPerUnit  = 50.0 // экранных пикселей на мировую единицу
	CollisionScale = 16.0 // единиц пространства коллизий на мировую единицу

	TextCharWidth  = 7
	TextLineHeight = 16

	DeathParticleCount = 30
	SparkSpeed         = 3.0
	ExplosionDuration  = 0.5

	DataDir           = "data"
	DefaultPlayerName = "PLAYER"

	TerminalTickRate = 30 // кадров в секунду в терминале
)

var (
	BackgroundColor = color.RGBA{10, 10, 20, 255}
	HUDColor        = color.RGBA{20, 20, 35, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{140, 140, 160, 255}
	HighScoreColor  = color.RGBA{255, 215, 0, 255}
	InvasionColor   = color.RGBA{220, 60, 60, 128}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	WaveColor       = color.RGBA{70, 130, 180, 255}
	BossWaveColor   = color.RGBA{220, 60, 60, 255}
)
