// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 800
	WindowTitle  = "Cosmic Mines"
	MaxDeltaTime = 0.06

	// Board geometry: the board is always BoardPixels wide, split evenly
	// between the rows, under a HeaderHeight status bar.
	BoardPixels  = 750
	HeaderHeight = 50

	DefaultRows  = 8
	MinRows      = 8
	MaxRows      = 26
	RowsPerLevel = 2
	MaxLevel     = 10
	HintsPerGame = 3

	SecondsPerExtraRow = 60 // time limit is 60s per row above 7
	ResultDelay        = 2.0

	// Instruction screen pacing.
	InstructionLineInterval = 0.6
	InstructionLineHeight   = 36
	InstructionStartY       = 100

	TitleStarCount       = 150
	InstructionStarCount = 80
	StarfieldStepSeconds = 0.03
	TwinkleStepSeconds   = 0.05
	TwinkleStep          = 0.01
	TwinkleMin           = 0.3

	HintButtonWidth  = 100
	HintButtonHeight = 40
	ToastDuration    = 2.5
)

var (
	SpaceColor       = color.RGBA{0, 0, 0, 255}
	NavyColor        = color.RGBA{0, 0, 48, 255}
	HeaderColor      = color.RGBA{0, 0, 0, 255}
	TextLightColor   = color.RGBA{255, 255, 255, 255}
	TextDimColor     = color.RGBA{192, 192, 192, 255}
	GameOverColor    = color.RGBA{255, 0, 0, 255}
	HintButtonColor  = color.RGBA{10, 10, 60, 255}
	HintButtonHover  = color.RGBA{20, 20, 80, 255}
	HintButtonBorder = color.RGBA{255, 255, 255, 255}
	HoverOverlay     = color.RGBA{0, 0, 0, 50}
	ToastColor       = color.RGBA{10, 10, 60, 230}

	// Fallback tile artwork, used when no sprite file is found.
	HiddenTileColors = []color.RGBA{
		{46, 52, 92, 255},
		{58, 44, 96, 255},
		{38, 62, 90, 255},
	}
	BlankTileColors = []color.RGBA{
		{18, 18, 40, 255},
		{22, 20, 44, 255},
		{16, 22, 42, 255},
		{20, 18, 36, 255},
	}
	NumberColors = []color.RGBA{
		{0, 0, 0, 0}, // 0 unused
		{90, 170, 255, 255},
		{90, 220, 120, 255},
		{255, 90, 90, 255},
		{170, 110, 255, 255},
		{255, 170, 60, 255},
		{60, 220, 220, 255},
		{240, 240, 240, 255},
		{160, 160, 160, 255},
	}
	MineColor = color.RGBA{230, 60, 40, 255}
	FlagColor = color.RGBA{255, 215, 0, 255}
)
