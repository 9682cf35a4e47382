// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centred label. It pulses briefly
// after a click.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Face       text.Face
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Border     color.Color
	Disabled   bool

	sinceClick float64
}

func NewButton(rect image.Rectangle, label string, face text.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		Face:       face,
		TextColor:  color.White,
		BgColor:    color.RGBA{10, 10, 60, 255},
		HoverColor: color.RGBA{20, 20, 80, 255},
		Border:     color.White,
		sinceClick: math.Inf(1),
	}
}

// Contains reports whether the cursor is over the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports a left click on the button this frame.
func (b *Button) IsClicked(x, y int) bool {
	if b.Disabled || !b.Contains(x, y) || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	b.sinceClick = 0
	return true
}

func (b *Button) Update(deltaTime float64) {
	b.sinceClick += deltaTime
}

func (b *Button) Draw(screen *ebiten.Image, x, y int) {
	bg := b.BgColor
	if !b.Disabled && b.Contains(x, y) {
		bg = b.HoverColor
	}
	scale := float32(1 + 0.1*math.Exp(-b.sinceClick*8))
	w := float32(b.Rect.Dx()) * scale
	h := float32(b.Rect.Dy()) * scale
	cx := float32(b.Rect.Min.X) + float32(b.Rect.Dx())/2
	cy := float32(b.Rect.Min.Y) + float32(b.Rect.Dy())/2

	vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, bg, false)
	vector.StrokeRect(screen, cx-w/2, cy-h/2, w, h, 2, b.Border, false)

	clr := b.TextColor
	if b.Disabled {
		clr = color.Gray{Y: 128}
	}
	DrawCentered(screen, b.Text, b.Face, float64(cx), float64(cy), clr)
}
