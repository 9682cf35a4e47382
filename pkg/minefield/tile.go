// pkg/minefield/tile.go
package minefield

// TileState is what the player currently sees on a tile.
type TileState int

const (
	Hidden TileState = iota
	Revealed
	Flagged
)

func (s TileState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	}
	return "unknown"
}

// Tile is one cell of the board.
type Tile struct {
	Mine     bool
	State    TileState
	Adjacent int // mines among the eight neighbours
}

func (t Tile) Hidden() bool   { return t.State == Hidden }
func (t Tile) Revealed() bool { return t.State == Revealed }
func (t Tile) Flagged() bool  { return t.State == Flagged }
