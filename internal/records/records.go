// Package records keeps the history of finished levels and the best clear
// time for each board size.
package records

import (
	"context"
	"time"
)

// Result is one finished level.
type Result struct {
	Level          int
	Rows           int
	Mines          int
	ElapsedSeconds int
	HintsUsed      int
	Won            bool
	PlayedAt       time.Time
}

// Store persists level results.
type Store interface {
	RecordResult(ctx context.Context, result Result) error
	// BestTime is the fastest win on a board size; ok is false when the
	// size was never cleared.
	BestTime(ctx context.Context, rows int) (seconds int, ok bool, err error)
	Recent(ctx context.Context, limit int) ([]Result, error)
	Close() error
}

// NopStore discards everything. Used when records are disabled.
type NopStore struct{}

func (NopStore) RecordResult(context.Context, Result) error       { return nil }
func (NopStore) BestTime(context.Context, int) (int, bool, error) { return 0, false, nil }
func (NopStore) Recent(context.Context, int) ([]Result, error)    { return nil, nil }
func (NopStore) Close() error                                     { return nil }
