package minefield

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

// newTestBoard builds a board with mines at fixed positions.
func newTestBoard(t *testing.T, rows, cols int, mines ...Point) *Board {
	t.Helper()
	b, err := NewBoard(rows, cols, len(mines))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for _, p := range mines {
		b.at(p).Mine = true
	}
	b.countAdjacent()
	b.minesPlaced = true
	return b
}

func sortPoints(ps []Point) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
}

func TestMineCountFor(t *testing.T) {
	tests := []struct {
		rows, cols int
		want       int
	}{
		{8, 8, 9},
		{10, 10, 15},
		{12, 12, 21},
		{26, 26, 101},
	}
	for _, tt := range tests {
		if got := MineCountFor(tt.rows, tt.cols); got != tt.want {
			t.Errorf("MineCountFor(%d, %d) = %d, want %d", tt.rows, tt.cols, got, tt.want)
		}
	}
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, mines int
		wantErr           bool
	}{
		{"zero rows", 0, 5, 0, true},
		{"negative mines", 5, 5, -1, true},
		{"no room outside safe zone", 3, 3, 1, true},
		{"too many mines", 4, 4, 8, true},
		{"tight fit", 4, 4, 7, false},
		{"default level", 8, 8, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.rows, tt.cols, tt.mines)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Fatalf("expected ErrInvalidSize, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPlaceMinesKeepsFirstClickSafe(t *testing.T) {
	firsts := []Point{{0, 0}, {0, 7}, {7, 0}, {7, 7}, {3, 4}}
	for seed := int64(1); seed <= 40; seed++ {
		for _, first := range firsts {
			b, err := NewBoard(8, 8, MineCountFor(8, 8))
			if err != nil {
				t.Fatalf("NewBoard: %v", err)
			}
			if err := b.PlaceMines(first, rand.New(rand.NewSource(seed))); err != nil {
				t.Fatalf("PlaceMines: %v", err)
			}

			mines := b.Mines()
			if len(mines) != 9 {
				t.Fatalf("seed %d first %v: expected 9 mines, got %d", seed, first, len(mines))
			}
			for _, m := range mines {
				if first.Near(m) {
					t.Fatalf("seed %d: mine %v inside safe zone of %v", seed, m, first)
				}
			}

			for r := 0; r < 8; r++ {
				for c := 0; c < 8; c++ {
					p := Point{r, c}
					want := 0
					for _, n := range b.Neighbors(p) {
						if tile, _ := b.Tile(n); tile.Mine {
							want++
						}
					}
					tile, _ := b.Tile(p)
					if tile.Adjacent != want {
						t.Fatalf("seed %d: adjacency at %v = %d, want %d", seed, p, tile.Adjacent, want)
					}
				}
			}
		}
	}
}

func TestPlaceMinesOnlyOnce(t *testing.T) {
	b, _ := NewBoard(8, 8, 9)
	rng := rand.New(rand.NewSource(7))
	if err := b.PlaceMines(Point{4, 4}, rng); err != nil {
		t.Fatalf("PlaceMines: %v", err)
	}
	if err := b.PlaceMines(Point{0, 0}, rng); !errors.Is(err, ErrAlreadyPlaced) {
		t.Fatalf("expected ErrAlreadyPlaced, got %v", err)
	}
	if err := (&Board{rows: 2, cols: 2}).PlaceMines(Point{5, 5}, rng); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestRevealBeforePlacement(t *testing.T) {
	b, _ := NewBoard(8, 8, 9)
	if _, err := b.Reveal(Point{0, 0}); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if _, err := b.Reveal(Point{-1, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestRevealFloodFill(t *testing.T) {
	t.Run("open field clears the board", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, Point{4, 4})
		res, err := b.Reveal(Point{0, 0})
		if err != nil {
			t.Fatalf("Reveal: %v", err)
		}
		if res.HitMine {
			t.Fatal("unexpected mine")
		}
		if len(res.Opened) != 24 {
			t.Fatalf("expected 24 opened tiles, got %d", len(res.Opened))
		}
		if !b.Cleared() {
			t.Fatal("board should be cleared")
		}
	})

	t.Run("stops at numbered border", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, Point{0, 2}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{4, 2})
		res, err := b.Reveal(Point{0, 0})
		if err != nil {
			t.Fatalf("Reveal: %v", err)
		}
		var want []Point
		for r := 0; r < 5; r++ {
			want = append(want, Point{r, 0}, Point{r, 1})
		}
		sortPoints(want)
		got := append([]Point(nil), res.Opened...)
		sortPoints(got)
		if len(got) != len(want) {
			t.Fatalf("opened %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("opened %v, want %v", got, want)
			}
		}
		for r := 0; r < 5; r++ {
			for c := 3; c < 5; c++ {
				if tile, _ := b.Tile(Point{r, c}); !tile.Hidden() {
					t.Fatalf("tile %v should stay hidden", Point{r, c})
				}
			}
		}
		if b.Cleared() {
			t.Fatal("board should not be cleared")
		}
	})

	t.Run("flags block expansion", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, Point{0, 2}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{4, 2})
		if changed, err := b.ToggleFlag(Point{2, 0}); err != nil || !changed {
			t.Fatalf("ToggleFlag: %v %v", changed, err)
		}
		res, err := b.Reveal(Point{0, 0})
		if err != nil {
			t.Fatalf("Reveal: %v", err)
		}
		if len(res.Opened) != 5 {
			t.Fatalf("expected 5 opened tiles, got %v", res.Opened)
		}
		if tile, _ := b.Tile(Point{2, 0}); !tile.Flagged() {
			t.Fatal("flag was overwritten")
		}
		if tile, _ := b.Tile(Point{4, 0}); !tile.Hidden() {
			t.Fatal("expansion leaked past the flag")
		}
	})
}

func TestRevealMineAndNoops(t *testing.T) {
	b := newTestBoard(t, 5, 5, Point{4, 4})

	res, err := b.Reveal(Point{4, 4})
	if err != nil || !res.HitMine {
		t.Fatalf("expected mine hit, got %+v %v", res, err)
	}

	b = newTestBoard(t, 5, 5, Point{4, 4})
	if _, err := b.Reveal(Point{3, 3}); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	before := b.RevealedCount()
	res, err = b.Reveal(Point{3, 3})
	if err != nil || len(res.Opened) != 0 || res.HitMine {
		t.Fatalf("second reveal should be a no-op, got %+v %v", res, err)
	}
	if b.RevealedCount() != before {
		t.Fatal("revealed count changed")
	}
}

func TestToggleFlag(t *testing.T) {
	b := newTestBoard(t, 5, 5, Point{4, 4})

	if changed, _ := b.ToggleFlag(Point{0, 0}); !changed {
		t.Fatal("first flag should be placed")
	}
	if b.FlagsRemaining() != 0 {
		t.Fatalf("expected 0 flags remaining, got %d", b.FlagsRemaining())
	}
	if changed, _ := b.ToggleFlag(Point{1, 1}); changed {
		t.Fatal("flag beyond mine count should be refused")
	}
	if changed, _ := b.ToggleFlag(Point{0, 0}); !changed {
		t.Fatal("flag should be removed")
	}
	if b.FlagsRemaining() != 1 {
		t.Fatalf("expected 1 flag remaining, got %d", b.FlagsRemaining())
	}

	if _, err := b.Reveal(Point{3, 3}); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if changed, _ := b.ToggleFlag(Point{3, 3}); changed {
		t.Fatal("revealed tile cannot be flagged")
	}
	if _, err := b.ToggleFlag(Point{9, 9}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestHint(t *testing.T) {
	t.Run("requires placed mines", func(t *testing.T) {
		b, _ := NewBoard(8, 8, 9)
		if _, _, err := b.Hint(rand.New(rand.NewSource(1))); !errors.Is(err, ErrNotStarted) {
			t.Fatalf("expected ErrNotStarted, got %v", err)
		}
	})

	t.Run("reveals a safe bordering tile", func(t *testing.T) {
		allowed := map[Point]bool{
			{2, 2}: true, {2, 3}: true, {2, 4}: true,
			{3, 2}: true, {3, 4}: true,
			{4, 2}: true, {4, 3}: true,
		}
		for seed := int64(1); seed <= 20; seed++ {
			b := newTestBoard(t, 5, 5, Point{4, 4})
			if _, err := b.Reveal(Point{3, 3}); err != nil {
				t.Fatalf("Reveal: %v", err)
			}
			if got := len(b.HintCandidates()); got != 7 {
				t.Fatalf("expected 7 candidates, got %d", got)
			}
			p, res, err := b.Hint(rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("Hint: %v", err)
			}
			if !allowed[p] {
				t.Fatalf("hint picked %v", p)
			}
			if res.HitMine {
				t.Fatal("hint hit a mine")
			}
			if tile, _ := b.Tile(p); !tile.Revealed() {
				t.Fatalf("hinted tile %v not revealed", p)
			}
		}
	})

	t.Run("nothing to hint behind a wall of mines", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, Point{0, 2}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{4, 2})
		if _, err := b.Reveal(Point{0, 0}); err != nil {
			t.Fatalf("Reveal: %v", err)
		}
		if _, _, err := b.Hint(rand.New(rand.NewSource(1))); !errors.Is(err, ErrNoHintAvailable) {
			t.Fatalf("expected ErrNoHintAvailable, got %v", err)
		}
	})
}

func TestClearedOnlyAfterLastSafeTile(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b, _ := NewBoard(10, 10, MineCountFor(10, 10))
		if err := b.PlaceMines(Point{5, 5}, rand.New(rand.NewSource(seed))); err != nil {
			t.Fatalf("PlaceMines: %v", err)
		}
		safe := 100 - b.MineCount()
	scan:
		for r := 0; r < 10; r++ {
			for c := 0; c < 10; c++ {
				if b.Cleared() {
					t.Fatalf("seed %d: cleared early at %d/%d", seed, b.RevealedCount(), safe)
				}
				if tile, _ := b.Tile(Point{r, c}); tile.Mine {
					continue
				}
				if _, err := b.Reveal(Point{r, c}); err != nil {
					t.Fatalf("Reveal: %v", err)
				}
				if b.RevealedCount() == safe {
					break scan
				}
			}
		}
		if !b.Cleared() || b.RevealedCount() != safe {
			t.Fatalf("seed %d: expected cleared with %d revealed, got %d", seed, safe, b.RevealedCount())
		}
	}
}

func TestRevealMines(t *testing.T) {
	b := newTestBoard(t, 5, 5, Point{0, 4}, Point{4, 0})
	mines := b.RevealMines()
	if len(mines) != 2 {
		t.Fatalf("expected 2 mines, got %d", len(mines))
	}
	for _, p := range mines {
		if tile, _ := b.Tile(p); !tile.Revealed() {
			t.Fatalf("mine %v still hidden", p)
		}
	}
}

func TestPlaceMinesAt(t *testing.T) {
	b, _ := NewBoard(5, 5, 2)
	if err := b.PlaceMinesAt(Point{0, 0}, []Point{{1, 1}, {4, 4}}); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for a mine in the safe zone, got %v", err)
	}
	if err := b.PlaceMinesAt(Point{0, 0}, []Point{{4, 4}, {4, 4}}); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for a duplicate, got %v", err)
	}
	if err := b.PlaceMinesAt(Point{0, 0}, []Point{{4, 4}}); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize for a short layout, got %v", err)
	}
	if err := b.PlaceMinesAt(Point{0, 0}, []Point{{4, 4}, {3, 4}}); err != nil {
		t.Fatalf("PlaceMinesAt: %v", err)
	}
	if tile, _ := b.Tile(Point{3, 3}); tile.Adjacent != 2 {
		t.Fatalf("expected adjacency 2 at (3,3), got %d", tile.Adjacent)
	}
	if !b.MinesPlaced() {
		t.Fatal("mines should be placed")
	}
}
