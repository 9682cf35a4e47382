// internal/state/title_state.go
package state

import (
	"cosmic-mines/internal/config"
	"cosmic-mines/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleState shows the game name over a falling starfield.
type TitleState struct {
	sm    *StateMachine
	res   *Resources
	stars *ui.Starfield
}

func NewTitleState(sm *StateMachine, res *Resources) *TitleState {
	return &TitleState{sm: sm, res: res}
}

func (t *TitleState) Enter() {
	t.stars = ui.NewStarfield(config.TitleStarCount, config.ScreenWidth, config.ScreenHeight, t.res.Rng)
}

func (t *TitleState) Update(deltaTime float64) {
	t.stars.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		t.sm.Request(NewInstructionState(t.sm, t.res))
	}
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SpaceColor)
	t.stars.Draw(screen)
	ui.DrawCentered(screen, config.WindowTitle, t.res.Fonts.Title, config.ScreenWidth/2, config.ScreenHeight/2-40, config.TextLightColor)
	ui.DrawCentered(screen, "Press SPACE to start", t.res.Fonts.Body, config.ScreenWidth/2, config.ScreenHeight/2+40, config.TextDimColor)
}

func (t *TitleState) Exit() {}
