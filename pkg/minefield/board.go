// pkg/minefield/board.go
package minefield

import "fmt"

// MineDensity is the share of tiles that hold a mine.
const MineDensity = 0.15

// Random is the source of randomness for placement and hints.
type Random interface {
	Intn(n int) int
}

// RevealResult describes what a reveal changed.
type RevealResult struct {
	HitMine bool
	Opened  []Point
}

// Board is a rectangular minefield. Mines are placed lazily, after the first
// point is known, so that the opening move is always safe.
type Board struct {
	rows, cols  int
	mineCount   int
	tiles       [][]Tile
	minesPlaced bool
	revealed    int
	flags       int
}

// MineCountFor returns the number of mines for a rows x cols board.
func MineCountFor(rows, cols int) int {
	return int(float64(rows*cols) * MineDensity)
}

// NewBoard creates an empty board. The mine count must leave room for the
// 3x3 safe zone around the first click.
func NewBoard(rows, cols, mines int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	if mines < 0 || mines > rows*cols-9 {
		return nil, fmt.Errorf("%w: %d mines on %dx%d", ErrInvalidSize, mines, rows, cols)
	}
	tiles := make([][]Tile, rows)
	for r := range tiles {
		tiles[r] = make([]Tile, cols)
	}
	return &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mines,
		tiles:     tiles,
	}, nil
}

func (b *Board) Rows() int          { return b.rows }
func (b *Board) Cols() int          { return b.cols }
func (b *Board) MineCount() int     { return b.mineCount }
func (b *Board) MinesPlaced() bool  { return b.minesPlaced }
func (b *Board) RevealedCount() int { return b.revealed }
func (b *Board) FlagCount() int     { return b.flags }

// FlagsRemaining is the number of flags the player may still place.
func (b *Board) FlagsRemaining() int {
	return b.mineCount - b.flags
}

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Tile returns a copy of the tile at p.
func (b *Board) Tile(p Point) (Tile, error) {
	if !b.Contains(p) {
		return Tile{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return b.tiles[p.Row][p.Col], nil
}

func (b *Board) at(p Point) *Tile {
	return &b.tiles[p.Row][p.Col]
}

// Neighbors returns the on-board neighbours of p.
func (b *Board) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(directions))
	for _, d := range directions {
		n := Point{p.Row + d.Row, p.Col + d.Col}
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Mines lists every mine position in row-major order.
func (b *Board) Mines() []Point {
	var out []Point
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.tiles[r][c].Mine {
				out = append(out, Point{r, c})
			}
		}
	}
	return out
}

// PlaceMines distributes the mines uniformly over every tile outside the 3x3
// block around first and fills in the adjacency counts.
func (b *Board) PlaceMines(first Point, rng Random) error {
	if b.minesPlaced {
		return ErrAlreadyPlaced
	}
	if !b.Contains(first) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, first)
	}

	candidates := make([]Point, 0, b.rows*b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := Point{r, c}
			if !first.Near(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) < b.mineCount {
		return fmt.Errorf("%w: %d mines, %d free tiles", ErrInvalidSize, b.mineCount, len(candidates))
	}

	// partial Fisher-Yates: the first mineCount slots become mines
	for i := 0; i < b.mineCount; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.at(candidates[i]).Mine = true
	}

	b.countAdjacent()
	b.minesPlaced = true
	return nil
}

// PlaceMinesAt installs a fixed layout, for replays and puzzles. The layout
// must match the mine count and keep clear of the 3x3 block around first.
func (b *Board) PlaceMinesAt(first Point, mines []Point) error {
	if b.minesPlaced {
		return ErrAlreadyPlaced
	}
	if len(mines) != b.mineCount {
		return fmt.Errorf("%w: layout has %d mines, want %d", ErrInvalidSize, len(mines), b.mineCount)
	}
	seen := make(map[Point]bool, len(mines))
	for _, p := range mines {
		if !b.Contains(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if first.Near(p) || seen[p] {
			return fmt.Errorf("%w: mine at %v", ErrInvalidLayout, p)
		}
		seen[p] = true
	}
	for _, p := range mines {
		b.at(p).Mine = true
	}
	b.countAdjacent()
	b.minesPlaced = true
	return nil
}

func (b *Board) countAdjacent() {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := Point{r, c}
			count := 0
			for _, n := range b.Neighbors(p) {
				if b.at(n).Mine {
					count++
				}
			}
			b.at(p).Adjacent = count
		}
	}
}

// Reveal opens the tile at p. Revealed and flagged tiles are left alone.
// A zero tile opens its neighbours until the connected zero region and its
// numbered border are visible; flagged tiles stop the expansion.
func (b *Board) Reveal(p Point) (RevealResult, error) {
	if !b.Contains(p) {
		return RevealResult{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !b.minesPlaced {
		return RevealResult{}, ErrNotStarted
	}
	t := b.at(p)
	if t.State != Hidden {
		return RevealResult{}, nil
	}
	if t.Mine {
		t.State = Revealed
		return RevealResult{HitMine: true, Opened: []Point{p}}, nil
	}

	var opened []Point
	stack := []Point{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ct := b.at(cur)
		if ct.State != Hidden || ct.Mine {
			continue
		}
		ct.State = Revealed
		b.revealed++
		opened = append(opened, cur)
		if ct.Adjacent > 0 {
			continue
		}
		for _, n := range b.Neighbors(cur) {
			if b.at(n).State == Hidden {
				stack = append(stack, n)
			}
		}
	}
	return RevealResult{Opened: opened}, nil
}

// ToggleFlag flips a hidden tile to flagged and back. A new flag is only
// accepted while flags remain. It reports whether the tile changed.
func (b *Board) ToggleFlag(p Point) (bool, error) {
	if !b.Contains(p) {
		return false, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	t := b.at(p)
	switch t.State {
	case Hidden:
		if b.FlagsRemaining() <= 0 {
			return false, nil
		}
		t.State = Flagged
		b.flags++
		return true, nil
	case Flagged:
		t.State = Hidden
		b.flags--
		return true, nil
	}
	return false, nil
}

// HintCandidates lists the safe hidden tiles that border a revealed tile.
func (b *Board) HintCandidates() []Point {
	var out []Point
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := Point{r, c}
			t := b.at(p)
			if t.Mine || t.State != Hidden {
				continue
			}
			for _, n := range b.Neighbors(p) {
				if b.at(n).State == Revealed {
					out = append(out, p)
					break
				}
			}
		}
	}
	return out
}

// Hint reveals a random safe tile next to the already revealed area.
func (b *Board) Hint(rng Random) (Point, RevealResult, error) {
	if !b.minesPlaced {
		return Point{}, RevealResult{}, ErrNotStarted
	}
	candidates := b.HintCandidates()
	if len(candidates) == 0 {
		return Point{}, RevealResult{}, ErrNoHintAvailable
	}
	p := candidates[rng.Intn(len(candidates))]
	res, err := b.Reveal(p)
	if err != nil {
		return Point{}, RevealResult{}, err
	}
	return p, res, nil
}

// RevealMines turns every mine face up. Used when a game is lost.
func (b *Board) RevealMines() []Point {
	mines := b.Mines()
	for _, p := range mines {
		b.at(p).State = Revealed
	}
	return mines
}

// Cleared reports whether every safe tile has been revealed.
func (b *Board) Cleared() bool {
	return b.minesPlaced && b.revealed == b.rows*b.cols-b.mineCount
}
