// internal/state/game_state.go
package state

import (
	"cosmic-mines/internal/config"
	"cosmic-mines/internal/layout"
	"cosmic-mines/internal/session"
	"cosmic-mines/internal/ui"
	"cosmic-mines/pkg/minefield"
	"cosmic-mines/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// GameState plays one level. When the level ends the board stays on screen
// for config.ResultDelay before the next level or the result screen.
type GameState struct {
	sm   *StateMachine
	res  *Resources
	rows int

	session    *session.Session
	renderer   *render.BoardRenderer
	header     ui.Header
	hintButton *ui.Button
	toast      ui.Toast
	endTimer   float64
	mouseX     int
	mouseY     int
}

func NewGameState(sm *StateMachine, res *Resources, rows int) *GameState {
	return &GameState{sm: sm, res: res, rows: rows}
}

func (g *GameState) Enter() {
	s, err := session.New(g.rows, g.res.Rng, g.res.Events)
	if err != nil {
		g.res.Log.WithError(err).WithField("rows", g.rows).Error("cannot start level, falling back to default size")
		g.rows = config.DefaultRows
		s, _ = session.New(g.rows, g.res.Rng, g.res.Events) // 8x8 always fits
	}
	g.session = s
	g.renderer = render.NewBoardRenderer(&g.res.Sprites.Tiles, layout.NewGrid(g.rows, g.rows), g.res.Rng, config.HoverOverlay)
	g.header = ui.Header{
		Height:    config.HeaderHeight,
		Face:      g.res.Fonts.Header,
		BgColor:   config.HeaderColor,
		TextColor: config.TextLightColor,
	}
	g.hintButton = ui.NewButton(layout.HintButtonRect(), "Hint", g.res.Fonts.Button)
	g.hintButton.BgColor = config.HintButtonColor
	g.hintButton.HoverColor = config.HintButtonHover
	g.hintButton.Border = config.HintButtonBorder
	g.toast = ui.Toast{
		Face:      g.res.Fonts.Body,
		BgColor:   config.ToastColor,
		TextColor: config.TextLightColor,
		Duration:  config.ToastDuration,
	}
	g.endTimer = 0
}

func (g *GameState) Update(deltaTime float64) {
	g.mouseX, g.mouseY = ebiten.CursorPosition()
	g.toast.Update(deltaTime)
	g.hintButton.Update(deltaTime)

	if g.session.Over() {
		g.endTimer += deltaTime
		if g.endTimer >= config.ResultDelay {
			g.sm.Request(g.next())
		}
		return
	}

	g.session.Tick(deltaTime)
	if g.session.Over() {
		return
	}

	switch {
	case g.hintButton.IsClicked(g.mouseX, g.mouseY):
		g.useHint()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if p, ok := g.renderer.Grid().CellAt(g.mouseX, g.mouseY); ok {
			g.open(p)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		if p, ok := g.renderer.Grid().CellAt(g.mouseX, g.mouseY); ok {
			if _, err := g.session.Flag(p); err != nil {
				g.res.Log.WithError(err).WithField("tile", p).Warn("flag failed")
			}
		}
	}
}

func (g *GameState) open(p minefield.Point) {
	if _, err := g.session.Open(p); err != nil {
		g.res.Log.WithError(err).WithField("tile", p).Warn("open failed")
	}
}

func (g *GameState) useHint() {
	p, err := g.session.UseHint()
	if err == nil {
		g.res.Log.WithFields(logrus.Fields{"tile": p, "hints_left": g.session.HintsLeft()}).Debug("hint used")
		return
	}
	msg := session.Message(err)
	if msg == "" {
		g.res.Log.WithError(err).Error("hint failed")
		return
	}
	g.toast.Show(msg)
}

// next picks the screen that follows the finished level.
func (g *GameState) next() State {
	rows, outcome := nextAfter(g.session)
	if outcome != nil {
		return NewResultState(g.sm, g.res, *outcome)
	}
	return NewGameState(g.sm, g.res, rows)
}

// nextAfter returns either the board size of the following level or, when
// the game is over, its outcome.
func nextAfter(s *session.Session) (int, *Outcome) {
	switch {
	case s.Phase() == session.Lost:
		return 0, &Outcome{Won: false, Level: s.Level(), Rows: s.Rows()}
	case s.FinalLevel():
		return 0, &Outcome{Won: true, Level: s.Level(), Rows: s.Rows()}
	}
	return s.NextRows(), nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SpaceColor)
	g.header.Draw(screen, g.session.Status())

	g.hintButton.Disabled = g.session.Over()
	g.hintButton.Draw(screen, g.mouseX, g.mouseY)

	view := render.BoardView{Interactive: !g.session.Over()}
	view.Hovered, view.HasHover = g.renderer.Grid().CellAt(g.mouseX, g.mouseY)
	if g.session.Cause() == session.SteppedOnMine {
		p := g.session.Exploded()
		view.Exploded = &p
	}
	g.renderer.Draw(screen, g.session.Board(), view)
	g.toast.Draw(screen)
}

func (g *GameState) Exit() {}
