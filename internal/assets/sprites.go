// internal/assets/sprites.go
package assets

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"
	"math"
	"path/filepath"
	"strconv"

	"cosmic-mines/internal/config"
	"cosmic-mines/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// SpriteSize is the edge of a synthesised sprite in pixels.
const SpriteSize = 64

var numberFiles = [9]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight"}

// Sprites is the full artwork set.
type Sprites struct {
	Tiles render.TileSprites
	// Decorations are the blank tiles shown on the instruction screen.
	Decorations []*ebiten.Image

	loaded      int
	synthesised int
}

// Loader reads sprites from a directory and synthesises whatever is missing.
type Loader struct {
	dir   string
	fonts *Fonts
	log   logrus.FieldLogger
}

func NewLoader(dir string, fonts *Fonts, log logrus.FieldLogger) *Loader {
	return &Loader{dir: dir, fonts: fonts, log: log}
}

// LoadSprites loads back1-3, b1-4, flag, bomb and one..eight (all .png).
func (l *Loader) LoadSprites() (*Sprites, error) {
	s := &Sprites{}
	for i := range config.HiddenTileColors {
		img, err := l.load(s, "back"+strconv.Itoa(i+1), func() *ebiten.Image { return hiddenTile(config.HiddenTileColors[i]) })
		if err != nil {
			return nil, err
		}
		s.Tiles.Backgrounds = append(s.Tiles.Backgrounds, img)
	}
	for i := range config.BlankTileColors {
		img, err := l.load(s, "b"+strconv.Itoa(i+1), func() *ebiten.Image { return blankTile(config.BlankTileColors[i], i) })
		if err != nil {
			return nil, err
		}
		s.Tiles.Blanks = append(s.Tiles.Blanks, img)
	}
	s.Decorations = s.Tiles.Blanks

	for n := 1; n < len(numberFiles); n++ {
		img, err := l.load(s, numberFiles[n], func() *ebiten.Image { return numberTile(n, l.fonts.Tile) })
		if err != nil {
			return nil, err
		}
		s.Tiles.Numbers[n] = img
	}

	var err error
	if s.Tiles.Flag, err = l.load(s, "flag", flagTile); err != nil {
		return nil, err
	}
	if s.Tiles.Mine, err = l.load(s, "bomb", mineTile); err != nil {
		return nil, err
	}

	l.log.WithFields(logrus.Fields{
		"dir":         l.dir,
		"loaded":      s.loaded,
		"synthesised": s.synthesised,
	}).Info("sprites ready")
	return s, nil
}

func (l *Loader) load(s *Sprites, name string, fallback func() *ebiten.Image) (*ebiten.Image, error) {
	path := filepath.Join(l.dir, name+".png")
	img, _, err := ebitenutil.NewImageFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.log.WithField("path", path).Debug("sprite missing, synthesising")
		s.synthesised++
		return fallback(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}
	s.loaded++
	return img, nil
}

func hiddenTile(base color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(SpriteSize, SpriteSize)
	img.Fill(base)
	const edge = 4
	light := render.LightenColor(base)
	dark := render.DarkenColor(base)
	vector.DrawFilledRect(img, 0, 0, SpriteSize, edge, light, false)
	vector.DrawFilledRect(img, 0, 0, edge, SpriteSize, light, false)
	vector.DrawFilledRect(img, 0, SpriteSize-edge, SpriteSize, edge, dark, false)
	vector.DrawFilledRect(img, SpriteSize-edge, 0, edge, SpriteSize, dark, false)
	return img
}

// blankTile is an opened empty tile with a few faint stars; variant shifts
// the star positions.
func blankTile(base color.RGBA, variant int) *ebiten.Image {
	img := ebiten.NewImage(SpriteSize, SpriteSize)
	img.Fill(base)
	vector.StrokeRect(img, 0.5, 0.5, SpriteSize-1, SpriteSize-1, 1, render.LightenColor(base), false)
	for i := 0; i < 3; i++ {
		x := float32((variant*23 + i*37 + 11) % SpriteSize)
		y := float32((variant*41 + i*19 + 7) % SpriteSize)
		vector.DrawFilledCircle(img, x, y, 1, render.WithAlpha(config.TextDimColor, 0.5), true)
	}
	return img
}

func numberTile(n int, face text.Face) *ebiten.Image {
	img := blankTile(config.BlankTileColors[0], n)
	op := &text.DrawOptions{}
	op.GeoM.Translate(SpriteSize/2, SpriteSize/2)
	op.ColorScale.ScaleWithColor(config.NumberColors[n])
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(img, strconv.Itoa(n), face, op)
	return img
}

func flagTile() *ebiten.Image {
	img := hiddenTile(config.HiddenTileColors[0])
	const poleX = 22
	vector.StrokeLine(img, poleX, 12, poleX, 54, 3, config.TextDimColor, true)
	vector.DrawFilledRect(img, poleX-8, 52, 18, 4, config.TextDimColor, false)
	render.FillPolygon(img, [][2]float32{{poleX, 12}, {50, 22}, {poleX, 32}}, config.FlagColor)
	return img
}

func mineTile() *ebiten.Image {
	img := blankTile(config.BlankTileColors[0], 0)
	const c, r = SpriteSize / 2, 14
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		dx, dy := float32(math.Cos(a)), float32(math.Sin(a))
		vector.StrokeLine(img, c, c, c+dx*(r+8), c+dy*(r+8), 3, render.DarkenColor(config.MineColor), true)
	}
	vector.DrawFilledCircle(img, c, c, r, config.MineColor, true)
	vector.DrawFilledCircle(img, c-5, c-5, 4, render.LightenColor(config.MineColor), true)
	return img
}
