// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Till Dawn"
	MaxDeltaTime = 0.06

	// Скорости в описаниях врагов заданы в единицах за кадр при 60 FPS.
	FrameRateScale = 60.0

	HUDMargin        = 16
	HUDLineHeight    = 18
	TimerIndicatorY  = 28
	AmmoIndicatorGap = 6

	DefaultTextureSize = 32
	BarrierStripAlpha  = 0.85
	// Скорость сглаживания камеры, 1/с. Чем больше, тем плотнее камера держится за игроком.
	CameraLerp = 8.0
)

var (
	BackgroundColor = color.RGBA{18, 20, 28, 255}
	GroundGridColor = color.RGBA{32, 36, 48, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	DimOverlayColor = color.RGBA{0, 0, 0, 150}

	// Заглушка для отсутствующих текстур, ярко-розовая, чтобы сразу бросалась в глаза.
	MissingTextureColor = colornames.Magenta
	BarrierColor        = colornames.Deepskyblue
	HealthColor         = colornames.Crimson
	HealthEmptyColor    = colornames.Black
	XPBarColor          = color.RGBA{70, 100, 120, 220}
	AmmoColor           = colornames.Gold
	BulletColor         = colornames.Lightyellow
)
