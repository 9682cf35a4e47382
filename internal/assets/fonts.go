// internal/assets/fonts.go
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// TitleFontFile is an optional display font under <assets>/fonts.
const TitleFontFile = "title.ttf"

// Fonts are the faces every screen draws text with.
type Fonts struct {
	Title   text.Face // title and result banners
	Heading text.Face // bold instruction lines
	Body    text.Face
	Header  text.Face // status bar
	Button  text.Face
	Tile    text.Face // digits on synthesised number tiles
}

// LoadFonts builds the faces from the bundled Go fonts. A TTF found at
// <dir>/fonts/title.ttf replaces the title face.
func LoadFonts(dir string, log logrus.FieldLogger) (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}

	f := &Fonts{
		Title:   &text.GoTextFace{Source: bold, Size: 48},
		Heading: &text.GoTextFace{Source: bold, Size: 24},
		Body:    &text.GoTextFace{Source: regular, Size: 22},
		Header:  &text.GoTextFace{Source: mono, Size: 16},
		Button:  &text.GoTextFace{Source: bold, Size: 18},
		Tile:    &text.GoTextFace{Source: bold, Size: 44},
	}

	path := filepath.Join(dir, "fonts", TitleFontFile)
	title, err := loadTTF(path, 48)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", path).Debug("no title font, using Go Bold")
	case err != nil:
		log.WithError(err).WithField("path", path).Warn("failed to load title font, using Go Bold")
	default:
		f.Title = text.NewGoXFace(title)
		log.WithField("path", path).Info("loaded title font")
	}
	return f, nil
}

func loadTTF(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s: %w", path, err)
	}
	return face, nil
}
