// internal/config/config.go
package config

import "image/color"

const (
	Title        = "Zombie Apocalypse"
	ScreenWidth  = 1366
	ScreenHeight = 768
	FPS          = 60

	PlayerSize = 48.0
	EnemySize  = 48.0
	BulletSize = 8.0
	PickupSize = 24.0

	// Ствол пистолета смещён от центра игрока
	MuzzleOffset = 40.0

	MaxHealthBarLength = 200
	HealthBarHeight    = 18
	MaxReloadBarLength = 60
	ReloadBarHeight    = 6

	LeaderboardSize = 5
	MaxNameLength   = 16

	ConfigFileName = "zombie.cfg.json"
	EnvPrefix      = "ZOMBIE"
)

var (
	BackgroundColor  = color.RGBA{34, 40, 30, 255}
	PlayerColor      = color.RGBA{70, 130, 180, 255}
	PlayerFacing     = color.RGBA{240, 240, 240, 255}
	EnemyColor       = color.RGBA{90, 140, 60, 255}
	EnemySlowedColor = color.RGBA{60, 110, 160, 255}
	CorpseColor      = color.RGBA{90, 30, 30, 255}
	AmmoColor        = color.RGBA{255, 215, 0, 255}
	HealthPackColor  = color.RGBA{220, 60, 60, 255}
	HealthBarColor   = color.RGBA{255, 0, 0, 255}
	ReloadBarColor   = color.RGBA{240, 240, 240, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{140, 140, 140, 255}
	HighlightColor   = color.RGBA{255, 215, 0, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	BulletColors     = []color.RGBA{
		{255, 240, 150, 255}, // pistol
		{255, 180, 60, 255},  // m4
		{120, 220, 255, 255}, // awp
	}
)
