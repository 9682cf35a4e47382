package logging

import (
	"cosmic-mines/internal/event"

	"github.com/sirupsen/logrus"
)

// GameplayListener logs level lifecycle events at info and tile-level
// events at debug.
type GameplayListener struct {
	log logrus.FieldLogger
}

func NewGameplayListener(log logrus.FieldLogger) *GameplayListener {
	return &GameplayListener{log: log}
}

// Register subscribes the listener to every gameplay event.
func (l *GameplayListener) Register(d *event.Dispatcher) {
	d.SubscribeAll(l,
		event.LevelStarted, event.FirstClick, event.TileRevealed, event.FlagToggled,
		event.HintUsed, event.MineHit, event.TimeExpired, event.LevelCleared, event.GameLost,
	)
}

func (l *GameplayListener) OnEvent(e event.Event) {
	entry := l.log.WithField("event", string(e.Type))
	if summary, ok := e.Data.(event.LevelSummary); ok {
		entry = entry.WithFields(logrus.Fields{
			"level":   summary.Level,
			"rows":    summary.Rows,
			"mines":   summary.Mines,
			"elapsed": summary.ElapsedSeconds,
			"hints":   summary.HintsUsed,
		})
	} else if e.Data != nil {
		entry = entry.WithField("data", e.Data)
	}

	switch e.Type {
	case event.GameLost:
		if summary, ok := e.Data.(event.LevelSummary); ok {
			entry.Infof("Game over at size: %dx%d", summary.Rows, summary.Rows)
			return
		}
		entry.Info("level")
	case event.LevelStarted, event.LevelCleared:
		entry.Info("level")
	case event.MineHit, event.TimeExpired:
		entry.Warn("game over")
	default:
		entry.Debug("gameplay")
	}
}
