package state

import (
	"testing"

	"cosmic-mines/internal/config"
	"cosmic-mines/internal/event"
	"cosmic-mines/internal/session"
	"cosmic-mines/internal/utils"
	"cosmic-mines/pkg/minefield"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
	next func()
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Exit()                     { *s.log = append(*s.log, "exit "+s.name) }
func (s *recordingState) Draw(screen *ebiten.Image) {}
func (s *recordingState) Update(deltaTime float64) {
	*s.log = append(*s.log, "update "+s.name)
	if s.next != nil {
		s.next()
	}
}

func TestStateMachineRequestSwitchesAfterUpdate(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	b := &recordingState{name: "b", log: &log}
	a := &recordingState{name: "a", log: &log}
	a.next = func() { sm.Request(b) }

	sm.SetState(a)
	sm.Update(0.016)
	sm.Update(0.016)

	want := []string{"enter a", "update a", "exit a", "enter b", "update b"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if sm.Current() != b {
		t.Fatal("current state is not b")
	}
}

func TestVisibleLines(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    int
	}{
		{0, 0},
		{0.59, 0},
		{0.61, 1},
		{3.05, 5},
		{100, len(instructions)},
	}
	for _, tt := range tests {
		if got := visibleLines(tt.elapsed); got != tt.want {
			t.Errorf("visibleLines(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestInstructionText(t *testing.T) {
	if len(instructions) != 12 {
		t.Fatalf("got %d lines", len(instructions))
	}
	if instructions[len(instructions)-1].text != "Press SPACE to begin your journey..." {
		t.Fatalf("last line = %q", instructions[len(instructions)-1].text)
	}
}

func TestOutcomeText(t *testing.T) {
	won := Outcome{Won: true, Level: 10, Rows: 26}
	if won.Title() != "You Win!" || won.Detail() != "Congratulations! You completed all 10 levels!" {
		t.Fatalf("won outcome = %q / %q", won.Title(), won.Detail())
	}
	lost := Outcome{Level: 2, Rows: 10}
	if lost.Title() != "Game Over" {
		t.Fatalf("lost title = %q", lost.Title())
	}
}

// clearBoard opens every safe tile of a started session.
func clearBoard(t *testing.T, s *session.Session) {
	t.Helper()
	b := s.Board()
	for r := 0; r < b.Rows() && !s.Over(); r++ {
		for c := 0; c < b.Cols() && !s.Over(); c++ {
			p := minefield.Point{Row: r, Col: c}
			if tile, _ := b.Tile(p); !tile.Mine {
				if _, err := s.Open(p); err != nil {
					t.Fatalf("open %v: %v", p, err)
				}
			}
		}
	}
}

func TestNextAfter(t *testing.T) {
	rng := utils.NewPRNGService(5)

	t.Run("won level advances", func(t *testing.T) {
		s, err := session.New(8, rng, event.NewDispatcher())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.Open(minefield.Point{Row: 4, Col: 4}); err != nil {
			t.Fatal(err)
		}
		clearBoard(t, s)
		rows, outcome := nextAfter(s)
		if outcome != nil || rows != 10 {
			t.Fatalf("nextAfter = %d, %+v", rows, outcome)
		}
	})

	t.Run("final level wins the game", func(t *testing.T) {
		s, err := session.New(config.MaxRows, rng, event.NewDispatcher())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.Open(minefield.Point{Row: 0, Col: 0}); err != nil {
			t.Fatal(err)
		}
		clearBoard(t, s)
		_, outcome := nextAfter(s)
		if outcome == nil || !outcome.Won || outcome.Level != config.MaxLevel {
			t.Fatalf("outcome = %+v", outcome)
		}
	})

	t.Run("loss ends the game", func(t *testing.T) {
		s, err := session.New(8, rng, event.NewDispatcher())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.Open(minefield.Point{Row: 0, Col: 0}); err != nil {
			t.Fatal(err)
		}
		if s.Over() {
			t.Skip("first open cleared the board")
		}
		s.Open(s.Board().Mines()[0])
		_, outcome := nextAfter(s)
		if outcome == nil || outcome.Won || outcome.Rows != 8 {
			t.Fatalf("outcome = %+v", outcome)
		}
	})
}
