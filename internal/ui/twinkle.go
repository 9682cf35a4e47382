// internal/ui/twinkle.go
package ui

import (
	"image/color"

	"cosmic-mines/internal/config"
	"cosmic-mines/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type twinkleStar struct {
	x, y       float32
	size       float32
	brightness float32
	rising     bool
}

// TwinkleField is a still field of stars that slowly brighten and dim
// between config.TwinkleMin and full brightness.
type TwinkleField struct {
	stars []twinkleStar
	acc   float64
}

func NewTwinkleField(count, width, height int, rng Random) *TwinkleField {
	f := &TwinkleField{stars: make([]twinkleStar, count)}
	for i := range f.stars {
		f.stars[i] = twinkleStar{
			x:          rng.Float32() * float32(width),
			y:          rng.Float32() * float32(height),
			size:       float32(1 + rng.Intn(3)),
			brightness: utils.Lerp(config.TwinkleMin, 1, rng.Float32()),
			rising:     rng.Intn(2) == 0,
		}
	}
	return f
}

func (f *TwinkleField) Update(deltaTime float64) {
	f.acc += deltaTime
	for f.acc >= config.TwinkleStepSeconds {
		f.acc -= config.TwinkleStepSeconds
		for i := range f.stars {
			f.stars[i].step()
		}
	}
}

func (s *twinkleStar) step() {
	if s.rising {
		s.brightness += config.TwinkleStep
	} else {
		s.brightness -= config.TwinkleStep
	}
	s.brightness = utils.Clamp(s.brightness, config.TwinkleMin, 1)
	if s.brightness >= 1 {
		s.rising = false
	} else if s.brightness <= config.TwinkleMin {
		s.rising = true
	}
}

// Brightness returns each star's current brightness, in order.
func (f *TwinkleField) Brightness() []float32 {
	out := make([]float32, len(f.stars))
	for i, s := range f.stars {
		out[i] = s.brightness
	}
	return out
}

func (f *TwinkleField) Draw(screen *ebiten.Image) {
	for _, s := range f.stars {
		v := uint8(utils.Lerp(0, 255, s.brightness))
		vector.DrawFilledCircle(screen, s.x, s.y, s.size/2+0.5, color.RGBA{v, v, v, 255}, true)
	}
}
