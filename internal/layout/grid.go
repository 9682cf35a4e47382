// Package layout maps board coordinates to screen pixels.
package layout

import (
	"image"

	"cosmic-mines/internal/config"
	"cosmic-mines/pkg/minefield"
)

// Grid places a rows x cols board under the status header, centred
// horizontally on the screen.
type Grid struct {
	Rows, Cols int
	TileSize   int
	OriginX    int
	OriginY    int
}

// NewGrid sizes tiles so the board spans config.BoardPixels.
func NewGrid(rows, cols int) Grid {
	tile := config.BoardPixels / max(rows, 1)
	width := tile * cols
	return Grid{
		Rows:     rows,
		Cols:     cols,
		TileSize: tile,
		OriginX:  (config.ScreenWidth - width) / 2,
		OriginY:  config.HeaderHeight,
	}
}

// Bounds is the board rectangle in screen pixels.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(g.OriginX, g.OriginY, g.OriginX+g.Cols*g.TileSize, g.OriginY+g.Rows*g.TileSize)
}

// TileRect is the screen rectangle of one tile.
func (g Grid) TileRect(p minefield.Point) image.Rectangle {
	x := g.OriginX + p.Col*g.TileSize
	y := g.OriginY + p.Row*g.TileSize
	return image.Rect(x, y, x+g.TileSize, y+g.TileSize)
}

// CellAt maps a cursor position to a tile.
func (g Grid) CellAt(x, y int) (minefield.Point, bool) {
	if !image.Pt(x, y).In(g.Bounds()) {
		return minefield.Point{}, false
	}
	return minefield.Point{
		Row: (y - g.OriginY) / g.TileSize,
		Col: (x - g.OriginX) / g.TileSize,
	}, true
}

// HintButtonRect sits at the right end of the header.
func HintButtonRect() image.Rectangle {
	x := config.ScreenWidth - config.HintButtonWidth - 5
	y := (config.HeaderHeight - config.HintButtonHeight) / 2
	return image.Rect(x, y, x+config.HintButtonWidth, y+config.HintButtonHeight)
}
