// internal/event/types.go
package event

const (
	LevelStarted EventType = "LevelStarted" // board created, waiting for the first click
	FirstClick   EventType = "FirstClick"   // mines placed, clock running
	TileRevealed EventType = "TileRevealed"
	FlagToggled  EventType = "FlagToggled"
	HintUsed     EventType = "HintUsed"
	MineHit      EventType = "MineHit"
	TimeExpired  EventType = "TimeExpired"
	LevelCleared EventType = "LevelCleared"
	GameLost     EventType = "GameLost" // after MineHit or TimeExpired
)

// LevelSummary is the payload of LevelStarted, LevelCleared and GameLost.
type LevelSummary struct {
	Level          int
	Rows           int
	Mines          int
	ElapsedSeconds int
	HintsUsed      int
	Won            bool
}
