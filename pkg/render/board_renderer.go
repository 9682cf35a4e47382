// pkg/render/board_renderer.go
package render

import (
	"image"
	"image/color"

	"cosmic-mines/internal/layout"
	"cosmic-mines/pkg/minefield"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TileSprites is the artwork a board is drawn with.
type TileSprites struct {
	Backgrounds []*ebiten.Image // hidden tiles
	Blanks      []*ebiten.Image // revealed zero tiles
	Numbers     [9]*ebiten.Image
	Flag        *ebiten.Image
	Mine        *ebiten.Image
}

// Picker chooses sprite variants.
type Picker interface {
	Intn(n int) int
}

// BoardRenderer draws a board. Each tile keeps the background variant it
// was dealt, and a blank variant is dealt the first time it is seen open.
type BoardRenderer struct {
	sprites     *TileSprites
	grid        layout.Grid
	picker      Picker
	backgrounds [][]int
	blanks      [][]int
	hover       color.Color
	exploded    color.Color
}

func NewBoardRenderer(sprites *TileSprites, grid layout.Grid, picker Picker, hover color.Color) *BoardRenderer {
	r := &BoardRenderer{
		sprites:     sprites,
		grid:        grid,
		picker:      picker,
		backgrounds: make([][]int, grid.Rows),
		blanks:      make([][]int, grid.Rows),
		hover:       hover,
		exploded:    color.RGBA{160, 0, 0, 160},
	}
	for row := 0; row < grid.Rows; row++ {
		r.backgrounds[row] = make([]int, grid.Cols)
		r.blanks[row] = make([]int, grid.Cols)
		for col := 0; col < grid.Cols; col++ {
			r.backgrounds[row][col] = picker.Intn(len(sprites.Backgrounds))
			r.blanks[row][col] = -1
		}
	}
	return r
}

// Grid returns the geometry the renderer draws with.
func (r *BoardRenderer) Grid() layout.Grid {
	return r.grid
}

// BoardView is what Draw needs to know beyond the tiles themselves.
type BoardView struct {
	Hovered     minefield.Point
	HasHover    bool
	Interactive bool
	Exploded    *minefield.Point
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, board *minefield.Board, view BoardView) {
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			p := minefield.Point{Row: row, Col: col}
			tile, _ := board.Tile(p)
			rect := r.grid.TileRect(p)
			r.drawSprite(screen, r.spriteFor(p, tile), rect)

			if view.Exploded != nil && *view.Exploded == p {
				vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), r.exploded, false)
			}
			if view.Interactive && view.HasHover && view.Hovered == p && !tile.Revealed() {
				vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), r.hover, false)
			}
		}
	}
}

func (r *BoardRenderer) spriteFor(p minefield.Point, tile minefield.Tile) *ebiten.Image {
	switch {
	case tile.Flagged():
		return r.sprites.Flag
	case tile.Hidden():
		return r.sprites.Backgrounds[r.backgrounds[p.Row][p.Col]]
	case tile.Mine:
		return r.sprites.Mine
	case tile.Adjacent > 0:
		return r.sprites.Numbers[tile.Adjacent]
	}
	if r.blanks[p.Row][p.Col] < 0 {
		r.blanks[p.Row][p.Col] = r.picker.Intn(len(r.sprites.Blanks))
	}
	return r.sprites.Blanks[r.blanks[p.Row][p.Col]]
}

func (r *BoardRenderer) drawSprite(screen, sprite *ebiten.Image, rect image.Rectangle) {
	if sprite == nil {
		return
	}
	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx())/float64(b.Dx()), float64(rect.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
