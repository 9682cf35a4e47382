// internal/ui/toast.go
package ui

import (
	"image/color"

	"cosmic-mines/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const toastFadeOut = 0.4

// Toast shows a short message in the middle of the screen and fades it out.
type Toast struct {
	Face      text.Face
	BgColor   color.RGBA
	TextColor color.RGBA
	Duration  float64

	message   string
	remaining float64
}

// Show replaces any message on screen.
func (t *Toast) Show(message string) {
	t.message = message
	t.remaining = t.Duration
}

func (t *Toast) Visible() bool {
	return t.message != "" && t.remaining > 0
}

func (t *Toast) Message() string {
	if !t.Visible() {
		return ""
	}
	return t.message
}

func (t *Toast) Update(deltaTime float64) {
	if t.remaining > 0 {
		t.remaining -= deltaTime
	}
}

func (t *Toast) Draw(screen *ebiten.Image) {
	if !t.Visible() {
		return
	}
	alpha := utils.Fade(t.remaining, toastFadeOut)
	b := screen.Bounds()
	tw, th := text.Measure(t.message, t.Face, 0)
	w, h := float32(tw)+40, float32(th)+24
	x := float32(b.Dx())/2 - w/2
	y := float32(b.Dy())/2 - h/2

	vector.DrawFilledRect(screen, x, y, w, h, scaleAlpha(t.BgColor, alpha), false)
	vector.StrokeRect(screen, x, y, w, h, 2, scaleAlpha(color.RGBA{255, 255, 255, 255}, alpha), false)
	DrawCentered(screen, t.message, t.Face, float64(b.Dx())/2, float64(b.Dy())/2, scaleAlpha(t.TextColor, alpha))
}

func scaleAlpha(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
