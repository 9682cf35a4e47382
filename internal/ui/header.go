// internal/ui/header.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Header is the status bar above the board.
type Header struct {
	Height    int
	Face      text.Face
	BgColor   color.Color
	TextColor color.Color
}

func (h *Header) Draw(screen *ebiten.Image, status string) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h.Height), h.BgColor, false)
	DrawLeft(screen, status, h.Face, 10, float64(h.Height)/2, h.TextColor)
}
