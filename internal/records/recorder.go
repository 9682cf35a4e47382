package records

import (
	"context"
	"time"

	"cosmic-mines/internal/event"

	"github.com/sirupsen/logrus"
)

const writeTimeout = 2 * time.Second

// Recorder stores a Result every time a level ends.
type Recorder struct {
	store Store
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewRecorder(store Store, log logrus.FieldLogger) *Recorder {
	return &Recorder{store: store, log: log, now: time.Now}
}

// Register subscribes the recorder to level endings.
func (r *Recorder) Register(d *event.Dispatcher) {
	d.SubscribeAll(r, event.LevelCleared, event.GameLost)
}

func (r *Recorder) OnEvent(e event.Event) {
	summary, ok := e.Data.(event.LevelSummary)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := r.store.RecordResult(ctx, Result{
		Level:          summary.Level,
		Rows:           summary.Rows,
		Mines:          summary.Mines,
		ElapsedSeconds: summary.ElapsedSeconds,
		HintsUsed:      summary.HintsUsed,
		Won:            summary.Won,
		PlayedAt:       r.now(),
	})
	if err != nil {
		r.log.WithError(err).WithField("rows", summary.Rows).Error("failed to record level result")
	}
}
