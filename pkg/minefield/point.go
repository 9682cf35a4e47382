// pkg/minefield/point.go
package minefield

import "fmt"

// Point addresses a tile by row and column.
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Near reports whether q lies in the 3x3 block centred on p.
func (p Point) Near(q Point) bool {
	return abs(p.Row-q.Row) <= 1 && abs(p.Col-q.Col) <= 1
}

// offsets of the eight neighbours
var directions = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
