// internal/state/result_state.go
package state

import (
	"context"
	"fmt"
	"time"

	"cosmic-mines/internal/config"
	"cosmic-mines/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

const recordsTimeout = 2 * time.Second

// Outcome is how a game ended.
type Outcome struct {
	Won   bool
	Level int
	Rows  int
}

// Title is the banner of the result screen.
func (o Outcome) Title() string {
	if o.Won {
		return "You Win!"
	}
	return "Game Over"
}

// Detail is the line under the banner.
func (o Outcome) Detail() string {
	if o.Won {
		return fmt.Sprintf("Congratulations! You completed all %d levels!", config.MaxLevel)
	}
	return fmt.Sprintf("You reached level %d on a %dx%d board.", o.Level, o.Rows, o.Rows)
}

// ResultState closes a game and offers a new one from the smallest board.
type ResultState struct {
	sm      *StateMachine
	res     *Resources
	outcome Outcome
	stars   *ui.Starfield

	best    int
	hasBest bool
}

func NewResultState(sm *StateMachine, res *Resources, outcome Outcome) *ResultState {
	return &ResultState{sm: sm, res: res, outcome: outcome}
}

func (r *ResultState) Enter() {
	r.stars = ui.NewStarfield(config.TitleStarCount, config.ScreenWidth, config.ScreenHeight, r.res.Rng)

	ctx, cancel := context.WithTimeout(context.Background(), recordsTimeout)
	defer cancel()
	best, ok, err := r.res.Records.BestTime(ctx, r.outcome.Rows)
	if err != nil {
		r.res.Log.WithError(err).WithField("rows", r.outcome.Rows).Warn("failed to read best time")
		return
	}
	r.best, r.hasBest = best, ok
	r.res.Log.WithFields(logrus.Fields{
		"won":   r.outcome.Won,
		"level": r.outcome.Level,
		"rows":  r.outcome.Rows,
	}).Info("game finished")
}

func (r *ResultState) Update(deltaTime float64) {
	r.stars.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		r.sm.Request(NewGameState(r.sm, r.res, config.DefaultRows))
	}
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SpaceColor)
	r.stars.Draw(screen)

	const cx = config.ScreenWidth / 2
	cy := float64(config.ScreenHeight / 2)
	ui.DrawCentered(screen, r.outcome.Title(), r.res.Fonts.Title, cx, cy-80, config.GameOverColor)
	ui.DrawCentered(screen, r.outcome.Detail(), r.res.Fonts.Body, cx, cy-20, config.TextLightColor)
	if r.hasBest {
		best := fmt.Sprintf("Best time on %dx%d: %d seconds", r.outcome.Rows, r.outcome.Rows, r.best)
		ui.DrawCentered(screen, best, r.res.Fonts.Body, cx, cy+20, config.TextDimColor)
	}
	ui.DrawCentered(screen, "Press SPACE to play again", r.res.Fonts.Body, cx, cy+80, config.TextDimColor)
}

func (r *ResultState) Exit() {}
