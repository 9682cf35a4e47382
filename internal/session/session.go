// internal/session/session.go
package session

import (
	"errors"
	"fmt"

	"cosmic-mines/internal/config"
	"cosmic-mines/internal/event"
	"cosmic-mines/pkg/minefield"
)

// Phase is where a level is in its lifecycle.
type Phase int

const (
	Waiting Phase = iota // board shown, no mines yet
	Playing
	Won
	Lost
)

// LossCause tells why a level was lost.
type LossCause int

const (
	NotLost LossCause = iota
	SteppedOnMine
	OutOfTime
)

// Session is one level of play: a board, its clock and the hint budget.
type Session struct {
	level      int
	rows       int
	board      *minefield.Board
	rng        minefield.Random
	dispatcher *event.Dispatcher

	phase     Phase
	cause     LossCause
	exploded  minefield.Point
	elapsed   float64
	timeLimit int
	hints     int
}

// New starts a square level of the given size.
func New(rows int, rng minefield.Random, dispatcher *event.Dispatcher) (*Session, error) {
	board, err := minefield.NewBoard(rows, rows, minefield.MineCountFor(rows, rows))
	if err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	s := newSession(rows, board, rng, dispatcher)
	s.dispatch(event.LevelStarted, s.Summary())
	return s, nil
}

func newSession(rows int, board *minefield.Board, rng minefield.Random, dispatcher *event.Dispatcher) *Session {
	return &Session{
		level:      LevelForRows(rows),
		rows:       rows,
		board:      board,
		rng:        rng,
		dispatcher: dispatcher,
		phase:      Waiting,
		timeLimit:  TimeLimit(rows),
		hints:      config.HintsPerGame,
	}
}

func (s *Session) Level() int                { return s.level }
func (s *Session) Rows() int                 { return s.rows }
func (s *Session) Board() *minefield.Board   { return s.board }
func (s *Session) Phase() Phase              { return s.phase }
func (s *Session) Cause() LossCause          { return s.cause }
func (s *Session) HintsLeft() int            { return s.hints }
func (s *Session) TimeLimit() int            { return s.timeLimit }
func (s *Session) Over() bool                { return s.phase == Won || s.phase == Lost }
func (s *Session) Exploded() minefield.Point { return s.exploded }

// ElapsedSeconds is the whole number of seconds on the clock.
func (s *Session) ElapsedSeconds() int {
	return int(s.elapsed)
}

// TimeLeft never goes below zero.
func (s *Session) TimeLeft() int {
	return max(0, s.timeLimit-s.ElapsedSeconds())
}

// FinalLevel reports whether clearing this level ends the game.
func (s *Session) FinalLevel() bool {
	return s.level >= config.MaxLevel
}

// NextRows is the board size of the following level.
func (s *Session) NextRows() int {
	return RowsForLevel(s.level + 1)
}

// Open reveals the tile at p. The first open of a level lays the mines
// around p and starts the clock.
func (s *Session) Open(p minefield.Point) (minefield.RevealResult, error) {
	if s.Over() {
		return minefield.RevealResult{}, ErrGameOver
	}
	if !s.board.Contains(p) {
		return minefield.RevealResult{}, fmt.Errorf("open %v: %w", p, minefield.ErrOutOfBounds)
	}
	if s.phase == Waiting {
		if tile, _ := s.board.Tile(p); tile.Flagged() {
			return minefield.RevealResult{}, nil
		}
		if !s.board.MinesPlaced() {
			if err := s.board.PlaceMines(p, s.rng); err != nil {
				return minefield.RevealResult{}, fmt.Errorf("place mines: %w", err)
			}
		}
		s.phase = Playing
		s.dispatch(event.FirstClick, p)
	}

	res, err := s.board.Reveal(p)
	if err != nil {
		return res, fmt.Errorf("reveal %v: %w", p, err)
	}
	if res.HitMine {
		s.exploded = p
		s.lose(SteppedOnMine)
		return res, nil
	}
	if len(res.Opened) > 0 {
		s.dispatch(event.TileRevealed, len(res.Opened))
	}
	s.checkCleared()
	return res, nil
}

// Flag toggles a flag on a hidden tile.
func (s *Session) Flag(p minefield.Point) (bool, error) {
	if s.Over() {
		return false, ErrGameOver
	}
	changed, err := s.board.ToggleFlag(p)
	if err != nil {
		return false, fmt.Errorf("flag %v: %w", p, err)
	}
	if changed {
		s.dispatch(event.FlagToggled, p)
	}
	return changed, nil
}

// UseHint reveals a safe tile bordering the open area. A hint is only spent
// when a tile was found.
func (s *Session) UseHint() (minefield.Point, error) {
	switch {
	case s.Over():
		return minefield.Point{}, ErrGameOver
	case s.phase == Waiting:
		return minefield.Point{}, ErrHintNeedsFirstClick
	case s.hints <= 0:
		return minefield.Point{}, ErrNoHintsLeft
	}

	p, _, err := s.board.Hint(s.rng)
	if errors.Is(err, minefield.ErrNoHintAvailable) {
		return minefield.Point{}, ErrNoHintFound
	}
	if err != nil {
		return minefield.Point{}, fmt.Errorf("hint: %w", err)
	}
	s.hints--
	s.dispatch(event.HintUsed, p)
	s.checkCleared()
	return p, nil
}

// Tick advances the clock while the level is being played.
func (s *Session) Tick(deltaTime float64) {
	if s.phase != Playing {
		return
	}
	s.elapsed += deltaTime
	if s.ElapsedSeconds() >= s.timeLimit {
		s.lose(OutOfTime)
	}
}

// Header is the status bar text while playing.
func (s *Session) Header() string {
	return fmt.Sprintf("Level %d/%d   Mines: %d   Time left: %ds   Hints: %d",
		s.level, config.MaxLevel, s.board.FlagsRemaining(), s.TimeLeft(), s.hints)
}

// Status is the header, or the end-of-level banner once the level is over.
func (s *Session) Status() string {
	switch s.phase {
	case Won:
		return fmt.Sprintf("Mines Cleared!   Time: %d seconds", s.ElapsedSeconds())
	case Lost:
		return "Game Over!"
	}
	return s.Header()
}

// Summary describes the level for events and records.
func (s *Session) Summary() event.LevelSummary {
	return event.LevelSummary{
		Level:          s.level,
		Rows:           s.rows,
		Mines:          s.board.MineCount(),
		ElapsedSeconds: s.ElapsedSeconds(),
		HintsUsed:      config.HintsPerGame - s.hints,
		Won:            s.phase == Won,
	}
}

func (s *Session) checkCleared() {
	if s.phase == Playing && s.board.Cleared() {
		s.phase = Won
		s.dispatch(event.LevelCleared, s.Summary())
	}
}

func (s *Session) lose(cause LossCause) {
	s.board.RevealMines()
	s.phase = Lost
	s.cause = cause
	if cause == OutOfTime {
		s.dispatch(event.TimeExpired, s.ElapsedSeconds())
	} else {
		s.dispatch(event.MineHit, s.exploded)
	}
	s.dispatch(event.GameLost, s.Summary())
}

func (s *Session) dispatch(t event.EventType, data any) {
	s.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}
