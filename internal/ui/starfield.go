// internal/ui/starfield.go
package ui

import (
	"image/color"

	"cosmic-mines/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type fallingStar struct {
	x, y  float32
	speed float32
	size  float32
	gray  uint8
}

// Starfield is a field of stars drifting down the screen. A star that leaves
// the bottom comes back at the top in a new column.
type Starfield struct {
	stars         []fallingStar
	width, height float32
	rng           Random
	acc           float64
}

func NewStarfield(count, width, height int, rng Random) *Starfield {
	f := &Starfield{
		stars:  make([]fallingStar, count),
		width:  float32(width),
		height: float32(height),
		rng:    rng,
	}
	for i := range f.stars {
		f.stars[i] = fallingStar{
			x:     rng.Float32() * f.width,
			y:     rng.Float32() * f.height,
			speed: float32(1 + rng.Intn(2)),
			size:  float32(1 + rng.Intn(2)),
			gray:  uint8(155 + rng.Intn(100)),
		}
	}
	return f
}

// Update moves the stars one step per config.StarfieldStepSeconds.
func (f *Starfield) Update(deltaTime float64) {
	f.acc += deltaTime
	for f.acc >= config.StarfieldStepSeconds {
		f.acc -= config.StarfieldStepSeconds
		f.step()
	}
}

func (f *Starfield) step() {
	for i := range f.stars {
		s := &f.stars[i]
		s.y += s.speed
		if s.y > f.height {
			s.y = 0
			s.x = f.rng.Float32() * f.width
		}
	}
}

func (f *Starfield) Draw(screen *ebiten.Image) {
	for _, s := range f.stars {
		vector.DrawFilledRect(screen, s.x, s.y, s.size, s.size, color.RGBA{s.gray, s.gray, s.gray, 255}, false)
	}
}
